package planfix

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// defaultContentType is reported when a download carries no Content-Type.
const defaultContentType = "application/octet-stream"

// Doer sends HTTP requests. *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// DownloadFile fetches the contents of a file via GET file/{id}/download.
// Any status other than 200 yields (nil, nil).
func (c *Client) DownloadFile(ctx context.Context, id int64) (*schema.Download, error) {
	raw, err := c.req.download(ctx, "file/"+strconv.FormatInt(id, 10)+"/download")
	if err != nil {
		return nil, fmt.Errorf("planfix %s: %w", opDownloadFile, err)
	}
	if raw.status != http.StatusOK {
		c.logger.InfoContext(ctx, "file download unavailable",
			slog.String("operation", opDownloadFile),
			slog.Int64("file_id", id),
			slog.Int("status", raw.status),
		)
		return nil, nil
	}
	return &schema.Download{Body: raw.body, ContentType: mediaType(raw.contentType)}, nil
}

// DownloadURL fetches an arbitrary URL without Planfix credentials, such as
// a File.DownloadURL. Any status other than 200 yields (nil, nil). Pass an
// httpclient.Client built with httpclient.WithoutPropagation so request and
// trace ids are not sent to the foreign host.
func DownloadURL(ctx context.Context, doer Doer, rawURL string) (*schema.Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", rawURL, err)
	}

	resp, err := doer.Do(ctx, req)
	if resp == nil {
		if err == nil {
			err = fmt.Errorf("no response from %s", req.URL.Host)
		}
		return nil, fmt.Errorf("GET %s: %w", req.URL.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", req.URL.Redacted(), err)
	}
	return &schema.Download{Body: body, ContentType: mediaType(resp.Header.Get("Content-Type"))}, nil
}

// mediaType strips parameters from a Content-Type header value.
func mediaType(header string) string {
	if header == "" {
		return defaultContentType
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mt
}
