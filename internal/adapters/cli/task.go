package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

func newTaskCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create, update and read tasks",
	}
	cmd.AddCommand(
		newTaskCreateCommand(rt),
		newTaskUpdateCommand(rt),
		newTaskGetCommand(rt),
		newTaskListCommand(rt),
	)
	return cmd
}

// taskFlags are the task fields settable from the command line. Only flags
// the user set are copied into the request.
type taskFlags struct {
	fromFile       string
	name           string
	description    string
	priority       int
	project        int64
	parent         int64
	template       int64
	assigner       string
	sourceObjectID string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.fromFile, "from-file", "f", "", "JSON task body to start from (- for stdin)")
	fl.StringVarP(&f.name, "name", "n", "", "task name")
	fl.StringVarP(&f.description, "description", "d", "", "task description (HTML)")
	fl.IntVar(&f.priority, "priority", 0, "task priority")
	fl.Int64Var(&f.project, "project", 0, "project id")
	fl.Int64Var(&f.parent, "parent", 0, "parent task id")
	fl.Int64Var(&f.template, "template", 0, "task template id")
	fl.StringVar(&f.assigner, "assigner", "", `assigner, e.g. "user:1"`)
	fl.StringVar(&f.sourceObjectID, "source-object-id", "", "external object UUID")
}

// request builds the TaskRequest from --from-file and the changed flags.
func (f *taskFlags) request(cmd *cobra.Command) (*schema.TaskRequest, error) {
	req := &schema.TaskRequest{}

	if f.fromFile != "" {
		var (
			raw []byte
			err error
		)
		if f.fromFile == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(f.fromFile)
		}
		if err != nil {
			return nil, fmt.Errorf("reading task body: %w", err)
		}
		if err := json.Unmarshal(raw, req); err != nil {
			return nil, fmt.Errorf("decoding task body: %w", err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		req.Name = &f.name
	}
	if changed("description") {
		req.Description = &f.description
	}
	if changed("priority") {
		req.Priority = &f.priority
	}
	if changed("project") {
		req.Project = &schema.EntityRef{ID: f.project}
	}
	if changed("parent") {
		req.Parent = &schema.EntityRef{ID: f.parent}
	}
	if changed("template") {
		req.Template = &schema.EntityRef{ID: f.template}
	}
	if changed("assigner") {
		req.Assigner = &schema.Person{ID: f.assigner}
	}
	if changed("source-object-id") {
		id, err := uuid.Parse(f.sourceObjectID)
		if err != nil {
			return nil, fmt.Errorf("invalid --source-object-id: %w", err)
		}
		req.SourceObjectID = &id
	}
	return req, nil
}

func newTaskCreateCommand(rt *runtime) *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			resp, err := rt.app.Client.CreateTask(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskUpdateCommand(rt *runtime) *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			resp, err := rt.app.Client.UpdateTask(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskGetCommand(rt *runtime) *cobra.Command {
	var (
		fields  []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "get <task-id>...",
		Short: "Get one or more tasks",
		Long: `Get one or more tasks. With several ids the tasks are fetched concurrently
and printed as a list; a failed id is reported in place without stopping the
others, and the exit code is chosen by the first failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := parseID(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			params := schema.Fields(fields...)

			if len(ids) == 1 {
				resp, err := rt.app.Client.GetTask(cmd.Context(), ids[0], params)
				if err != nil {
					return err
				}
				return writeJSON(rt.stdout, resp)
			}

			results := rt.app.Tasks.GetTasks(cmd.Context(), ids, params, workers)
			if err := writeJSON(rt.stdout, newTaskReports(results)); err != nil {
				return err
			}
			return firstTaskError(results)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent requests when fetching several tasks")
	return cmd
}

func newTaskListCommand(rt *runtime) *cobra.Command {
	var (
		fields []string
		params map[string]string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := schema.Fields(fields...)
			for k, v := range params {
				query[k] = v
			}
			resp, err := rt.app.Client.ListTasks(cmd.Context(), query)
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")
	cmd.Flags().StringToStringVar(&params, "param", nil, "extra query parameter key=value (repeatable)")
	return cmd
}

// taskReport is the printable form of ports.TaskResult.
type taskReport struct {
	ID    int64        `json:"id"`
	Task  *schema.Task `json:"task,omitempty"`
	Error string       `json:"error,omitempty"`
}

// firstTaskError returns the first failed fetch, counting the failures.
func firstTaskError(results []ports.TaskResult) error {
	var (
		first  error
		failed int
	)
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if first == nil {
			first = fmt.Errorf("task %d: %w", r.ID, r.Err)
		}
		failed++
	}
	if first == nil {
		return nil
	}
	return fmt.Errorf("%d of %d tasks failed: %w", failed, len(results), first)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
