// Package app provides application services that orchestrate multi-step use
// cases over the Planfix client port.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// Compile-time check that CommentService implements ports.CommentService.
var _ ports.CommentService = (*CommentService)(nil)

// CommentService implements ports.CommentService: it uploads attachments and
// then posts the comment that references them.
type CommentService struct {
	client ports.PlanfixClient
	logger *slog.Logger
}

// NewCommentService creates a CommentService. A nil logger discards output.
func NewCommentService(client ports.PlanfixClient, logger *slog.Logger) *CommentService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CommentService{client: client, logger: logger}
}

// Post uploads attachments and sends the comment. Files Planfix rejected are
// left out of the comment and reported in the result. A transport failure
// during upload aborts before the comment is sent. Errors come with the
// partial result, so the caller still learns the ids of uploaded files.
func (s *CommentService) Post(ctx context.Context, in schema.CommentInput, attachments []schema.Attachment) (*ports.PostedComment, error) {
	s.logger.InfoContext(ctx, "posting comment",
		slog.Int64("task_id", in.TaskID),
		slog.Int("attachments", len(attachments)),
	)

	out := &ports.PostedComment{}

	if len(attachments) > 0 {
		upload, err := s.client.UploadFiles(ctx, attachments)
		out.Upload = upload
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to upload attachments",
				slog.String("operation", "Post"),
				slog.Int64("task_id", in.TaskID),
				slog.Any("error", err),
			)
			return out, fmt.Errorf("uploading attachments: %w", err)
		}

		fileIDs := make([]int64, 0, len(in.FileIDs)+len(upload.IDs))
		fileIDs = append(fileIDs, in.FileIDs...)
		fileIDs = append(fileIDs, upload.IDs...)
		in.FileIDs = fileIDs
	}

	status, err := s.client.SendComment(ctx, in)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to send comment",
			slog.String("operation", "Post"),
			slog.Int64("task_id", in.TaskID),
			slog.Any("error", err),
		)
		return out, err
	}
	out.Comment = status

	return out, nil
}
