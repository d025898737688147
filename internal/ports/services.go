package ports

import (
	"context"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// CommentService defines the service port for posting comments that carry
// attachments. Implemented by the application layer; called by the CLI.
type CommentService interface {
	// Post uploads attachments, then sends the comment referencing every
	// file Planfix accepted together with in.FileIDs. Files Planfix rejected
	// are reported in PostedComment.Upload and do not fail the call. On
	// error the partial PostedComment is returned alongside it.
	Post(ctx context.Context, in schema.CommentInput, attachments []schema.Attachment) (*PostedComment, error)
}

// PostedComment is the outcome of CommentService.Post.
type PostedComment struct {
	Comment *schema.StatusResponse `json:"comment"`
	Upload  *schema.UploadResult   `json:"upload,omitempty"`
}

// TaskService defines the service port for multi-task reads.
type TaskService interface {
	// GetTasks fetches several tasks concurrently, with at most workers
	// requests in flight. Results keep the order of ids; each entry carries
	// either the task or the error for that id.
	GetTasks(ctx context.Context, ids []int64, params schema.Params, workers int) []TaskResult
}

// TaskResult pairs a requested task id with its outcome.
type TaskResult struct {
	ID   int64        `json:"id"`
	Task *schema.Task `json:"task,omitempty"`
	Err  error        `json:"-"`
}
