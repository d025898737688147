package planfix

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/platform/telemetry"
)

// uploadField is the multipart field Planfix reads the file from.
const uploadField = "file"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadFiles uploads files one at a time via POST file/.
//
// A file Planfix rejects (error envelope or unexpected body) is recorded in
// UploadResult.Failures and the batch continues. A transport failure stops
// the batch: the result so far is returned together with the error.
func (c *Client) UploadFiles(ctx context.Context, files []schema.Attachment) (*schema.UploadResult, error) {
	result := &schema.UploadResult{IDs: make([]int64, 0, len(files))}

	for i, f := range files {
		form, err := newFileForm(f)
		if err != nil {
			return result, fmt.Errorf("planfix %s: encoding %q: %w", opUploadFiles, f.Name, err)
		}

		raw, err := c.req.do(ctx, http.MethodPost, "file/", nil, form)
		if err != nil {
			return result, fmt.Errorf("planfix %s: %q: %w", opUploadFiles, f.Name, err)
		}

		resp, err := decodeEnvelope[schema.IDResponse](opUploadFiles, raw.status, raw.body)
		if err != nil {
			c.recordUploadFailure(ctx, i, f.Name, err)
			result.Failures = append(result.Failures, schema.UploadFailure{Index: i, Name: f.Name, Err: err})
			continue
		}
		result.IDs = append(result.IDs, resp.ID)
	}

	return result, nil
}

func (c *Client) recordUploadFailure(ctx context.Context, index int, name string, err error) {
	c.logger.WarnContext(ctx, "file upload rejected",
		slog.String("operation", opUploadFiles),
		slog.Int("index", index),
		slog.String("file", name),
		slog.Any("error", err),
	)
	if c.metrics != nil {
		c.metrics.UploadFailureTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrOperation.String(opUploadFiles),
		))
	}
}

// newFileForm encodes f as a single-part multipart form. The part's content
// type is detected from the file contents.
func newFileForm(f schema.Attachment) (*multipartBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadField, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", mimetype.Detect(f.Data).String())

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(f.Data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &multipartBody{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}
