package ports

import (
	"context"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// PlanfixClient defines the client port for the Planfix REST API.
// Implemented by the planfix adapter; called by the application layer and
// the CLI. Methods map 1:1 to Planfix endpoints.
//
// Failures are returned as errors: a Planfix error envelope is a
// *planfix.APIError, a body of unexpected shape is a *planfix.ShapeError,
// anything else is a transport failure.
type PlanfixClient interface {
	// CreateTask creates a task and returns its id.
	CreateTask(ctx context.Context, task *schema.TaskRequest) (*schema.IDResponse, error)

	// UpdateTask updates the task with the given id.
	UpdateTask(ctx context.Context, id int64, task *schema.TaskRequest) (*schema.StatusResponse, error)

	// GetTask returns a single task. params selects the returned fields.
	GetTask(ctx context.Context, id int64, params schema.Params) (*schema.TaskResponse, error)

	// ListTasks returns tasks matching params.
	ListTasks(ctx context.Context, params schema.Params) (*schema.TaskListResponse, error)

	// UploadFiles uploads files sequentially. Rejected files are reported in
	// the result; a transport failure aborts the batch.
	UploadFiles(ctx context.Context, files []schema.Attachment) (*schema.UploadResult, error)

	// SendComment adds a comment to a task, or updates one when
	// in.CommentID is set.
	SendComment(ctx context.Context, in schema.CommentInput) (*schema.StatusResponse, error)

	// GetComment returns a single comment.
	GetComment(ctx context.Context, id int64, params schema.Params) (*schema.CommentResponse, error)

	// GetUser returns a user by "1" or "user:1" style reference.
	GetUser(ctx context.Context, ref string, params schema.Params) (*schema.UserResponse, error)

	// GetContact returns a contact by "1" or "contact:1" style reference.
	GetContact(ctx context.Context, ref string, params schema.Params) (*schema.ContactResponse, error)

	// GetFile returns file metadata.
	GetFile(ctx context.Context, id int64, params schema.Params) (*schema.FileResponse, error)

	// DownloadFile returns the file contents, or nil when Planfix does not
	// answer with 200.
	DownloadFile(ctx context.Context, id int64) (*schema.Download, error)
}
