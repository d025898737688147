package planfix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
)

// apiPrefix is appended to the configured base URL; every endpoint path is
// relative to it.
const apiPrefix = "rest/"

// requester centralizes the HTTP request lifecycle for Planfix calls: URL
// construction, the bearer token, JSON or multipart encoding, execution via
// httpclient.Client and reading the response body.
type requester struct {
	client *httpclient.Client
	apiURL string
	token  string
	logger *slog.Logger
}

// newRequester creates a requester for the API rooted at client.BaseURL().
func newRequester(client *httpclient.Client, token string, logger *slog.Logger) *requester {
	if logger == nil {
		logger = logging.Discard()
	}
	return &requester{
		client: client,
		apiURL: strings.TrimRight(client.BaseURL(), "/") + "/" + apiPrefix,
		token:  token,
		logger: logger,
	}
}

// rawResponse is a fully read response.
type rawResponse struct {
	status      int
	contentType string
	body        []byte
}

// multipartBody is a pre-encoded multipart/form-data request body.
type multipartBody struct {
	contentType string
	data        []byte
}

// do sends one request to path (relative to {base_url}/rest/). params become
// the query string. body is sent as-is when it is a *multipartBody, as JSON
// otherwise, and omitted when nil.
//
// A non-nil error means no usable response was received. Any status with a
// body is returned to the caller for envelope decoding.
func (r *requester) do(ctx context.Context, method, path string, params schema.Params, body any) (*rawResponse, error) {
	target, err := r.endpoint(path, params)
	if err != nil {
		return nil, err
	}

	var (
		reader      io.Reader = http.NoBody
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *multipartBody:
		reader = bytes.NewReader(b.data)
		contentType = b.contentType
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return r.execute(req)
}

// download fetches path with the bearer token and returns the raw response.
func (r *requester) download(ctx context.Context, path string) (*rawResponse, error) {
	target, err := r.endpoint(path, nil)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)

	return r.execute(req)
}

func (r *requester) endpoint(path string, params schema.Params) (string, error) {
	u, err := url.Parse(r.apiURL + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("building URL for %s: %w", path, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// execute sends req and reads the whole body. httpclient.Do returns both a
// response and an error for 5xx and 429 answers; the response still carries
// Planfix's envelope, so it wins.
func (r *requester) execute(req *http.Request) (*rawResponse, error) {
	ctx := req.Context()

	r.logger.DebugContext(ctx, "planfix request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		logging.RedactHeaders(req.Header),
	)

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		if err == nil {
			err = errors.New("no response")
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, readErr)
	}

	r.logger.DebugContext(ctx, "planfix response",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return &rawResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
