// Package planfix is a typed client for the Planfix REST API. Each method
// issues one HTTP call and decodes the response into a validated schema type.
//
// Errors come in three kinds:
//   - transport failures (network, timeout, open circuit breaker), wrapped
//     with %w so context errors stay matchable;
//   - *APIError when Planfix answered with its error envelope
//     (errors.Is(err, ErrAPI));
//   - *ShapeError when the body fits neither shape
//     (errors.Is(err, ErrShapeMismatch)).
package planfix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/platform/config"
	"github.com/jsamuelsen11/go-planfix/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
	"github.com/jsamuelsen11/go-planfix/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PlanfixClient = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// ServiceName identifies Planfix in traces, metrics and health reports.
const ServiceName = "planfix-api"

// Operation names used in errors, logs and metric attributes.
const (
	opCreateTask   = "CreateTask"
	opUpdateTask   = "UpdateTask"
	opGetTask      = "GetTask"
	opListTasks    = "ListTasks"
	opUploadFiles  = "UploadFiles"
	opSendComment  = "SendComment"
	opGetComment   = "GetComment"
	opGetUser      = "GetUser"
	opGetContact   = "GetContact"
	opGetFile      = "GetFile"
	opDownloadFile = "DownloadFile"
	opHealthCheck  = "HealthCheck"
)

// healthParams keeps the health check's task listing as small as possible.
var healthParams = schema.Params{"fields": "id", "pageSize": "1"}

// Client is the outbound adapter for Planfix. It implements
// [ports.PlanfixClient].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting and OpenTelemetry tracing for every call.
type Client struct {
	req        *requester
	commentTag string
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New creates a Client that sends requests through hc, authenticating with
// cfg.Token. cfg.CommentTag, when set, prefixes every comment body. metrics
// and logger may be nil.
func New(hc *httpclient.Client, cfg *config.PlanfixConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		req:        newRequester(hc, cfg.Token, logger),
		commentTag: cfg.CommentTag,
		metrics:    metrics,
		logger:     logger,
	}
}

// --- Tasks ---

// CreateTask sends POST task/ and returns the id of the new task.
func (c *Client) CreateTask(ctx context.Context, task *schema.TaskRequest) (*schema.IDResponse, error) {
	return call[schema.IDResponse](ctx, c, opCreateTask, http.MethodPost, "task/", nil, task)
}

// UpdateTask sends POST task/{id}. Planfix answers with a bare status
// envelope.
func (c *Client) UpdateTask(ctx context.Context, id int64, task *schema.TaskRequest) (*schema.StatusResponse, error) {
	path := "task/" + strconv.FormatInt(id, 10)
	return call[schema.StatusResponse](ctx, c, opUpdateTask, http.MethodPost, path, nil, task)
}

// GetTask fetches GET task/{id}.
func (c *Client) GetTask(ctx context.Context, id int64, params schema.Params) (*schema.TaskResponse, error) {
	path := "task/" + strconv.FormatInt(id, 10)
	return call[schema.TaskResponse](ctx, c, opGetTask, http.MethodGet, path, params, nil)
}

// ListTasks fetches GET task/ with params as the query string.
func (c *Client) ListTasks(ctx context.Context, params schema.Params) (*schema.TaskListResponse, error) {
	return call[schema.TaskListResponse](ctx, c, opListTasks, http.MethodGet, "task/", params, nil)
}

// --- Comments ---

// SendComment posts a comment to task/{TaskID}/comments/, or updates
// task/{TaskID}/comments/{CommentID} when CommentID is set.
func (c *Client) SendComment(ctx context.Context, in schema.CommentInput) (*schema.StatusResponse, error) {
	path := commentPath(in.TaskID, in.CommentID)
	return call[schema.StatusResponse](ctx, c, opSendComment, http.MethodPost, path, nil, c.commentRequest(in))
}

// GetComment fetches GET comment/{id}.
func (c *Client) GetComment(ctx context.Context, id int64, params schema.Params) (*schema.CommentResponse, error) {
	path := "comment/" + strconv.FormatInt(id, 10)
	return call[schema.CommentResponse](ctx, c, opGetComment, http.MethodGet, path, params, nil)
}

// --- Users and contacts ---

// GetUser fetches GET user/{ref}. ref is either a numeric id or a prefixed
// id such as "user:1".
func (c *Client) GetUser(ctx context.Context, ref string, params schema.Params) (*schema.UserResponse, error) {
	return call[schema.UserResponse](ctx, c, opGetUser, http.MethodGet, "user/"+url.PathEscape(ref), params, nil)
}

// GetContact fetches GET contact/{ref}. ref is either a numeric id or a
// prefixed id such as "contact:1".
func (c *Client) GetContact(ctx context.Context, ref string, params schema.Params) (*schema.ContactResponse, error) {
	return call[schema.ContactResponse](ctx, c, opGetContact, http.MethodGet, "contact/"+url.PathEscape(ref), params, nil)
}

// --- Files ---

// GetFile fetches the metadata of a file via GET file/{id}.
func (c *Client) GetFile(ctx context.Context, id int64, params schema.Params) (*schema.FileResponse, error) {
	path := "file/" + strconv.FormatInt(id, 10)
	return call[schema.FileResponse](ctx, c, opGetFile, http.MethodGet, path, params, nil)
}

// --- Health ---

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck lists at most one task id. Planfix is healthy when that call
// succeeds with the configured token; a transport failure, an open circuit,
// an API error or an unexpected body all make it unhealthy.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := call[schema.TaskListResponse](ctx, c, opHealthCheck, http.MethodGet, "task/", healthParams, nil); err != nil {
		return fmt.Errorf("%s: %w", ServiceName, err)
	}
	return nil
}

// call sends one request and decodes the response envelope as T.
func call[T any](ctx context.Context, c *Client, op, method, path string, params schema.Params, body any) (*T, error) {
	raw, err := c.req.do(ctx, method, path, params, body)
	if err != nil {
		return nil, fmt.Errorf("planfix %s: %w", op, err)
	}

	out, err := decodeEnvelope[T](op, raw.status, raw.body)
	if err != nil {
		c.observeFailure(ctx, op, err)
		return nil, err
	}
	return out, nil
}

// observeFailure logs and counts a decoded failure.
func (c *Client) observeFailure(ctx context.Context, op string, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.logger.WarnContext(ctx, "planfix returned an error",
			slog.String("operation", op),
			slog.Int("status", apiErr.Status),
			slog.Int("code", apiErr.Code),
			slog.String("message", apiErr.Message),
		)
		if c.metrics != nil {
			c.metrics.APIErrorTotal.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrOperation.String(op),
				telemetry.AttrAPIErrorCode.Int(apiErr.Code),
			))
		}
		return
	}

	c.logger.ErrorContext(ctx, "unexpected planfix response",
		slog.String("operation", op),
		slog.Any("error", err),
	)
}
