package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// DefaultWorkers bounds concurrent task fetches when the caller passes a
// non-positive worker count.
const DefaultWorkers = 4

// TaskService implements ports.TaskService.
type TaskService struct {
	client ports.PlanfixClient
	logger *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(client ports.PlanfixClient, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TaskService{client: client, logger: logger}
}

// GetTasks fetches each id with GET task/{id}. A failed fetch does not
// cancel the others; its error is stored in the matching result.
func (s *TaskService) GetTasks(ctx context.Context, ids []int64, params schema.Params, workers int) []ports.TaskResult {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]ports.TaskResult, len(ids))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, id := range ids {
		results[i].ID = id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			resp, err := s.client.GetTask(ctx, id, params)
			if err != nil {
				s.logger.WarnContext(ctx, "failed to fetch task",
					slog.String("operation", "GetTasks"),
					slog.Int64("task_id", id),
					slog.Any("error", err),
				)
				results[i].Err = err
				return nil
			}
			results[i].Task = &resp.Task
			return nil
		})
	}

	_ = g.Wait()
	return results
}
