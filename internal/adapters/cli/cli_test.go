package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix"
	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/planfixtest"
	"github.com/jsamuelsen11/go-planfix/internal/app"
	"github.com/jsamuelsen11/go-planfix/internal/platform/config"
	"github.com/jsamuelsen11/go-planfix/internal/platform/health"
	"github.com/jsamuelsen11/go-planfix/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-planfix/internal/platform/logging"
)

// unreachableURL is an account root nothing listens on.
const unreachableURL = "http://127.0.0.1:1/"

// testBuilder wires a real client stack against srv.
func testBuilder(srv *planfixtest.Server) Builder {
	return testBuilderFor(srv.BaseURL())
}

// testBuilderFor wires a real client stack against the account at baseURL.
func testBuilderFor(baseURL string) Builder {
	return func(_ context.Context, _ Options) (*App, error) {
		cfg := &config.PlanfixConfig{
			BaseURL:    baseURL,
			Token:      planfixtest.Token,
			CommentTag: "#cli#",
			Timeout:    5 * time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		}
		logger := logging.Discard()
		hc := httpclient.New(cfg, planfix.ServiceName, nil, logger)
		client := planfix.New(hc, cfg, nil, logger)

		registry := health.New()
		registry.Register(client)

		return &App{
			Client:   client,
			Comments: app.NewCommentService(client, logger),
			Tasks:    app.NewTaskService(client, logger),
			Health:   registry,
			Fetcher:  httpclient.New(cfg, "planfix-files", nil, logger, httpclient.WithoutPropagation()),
			Logger:   logger,
		}, nil
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, srv *planfixtest.Server, args ...string) result {
	t.Helper()
	return runWith(t, testBuilder(srv), args...)
}

func runWith(t *testing.T, build Builder, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, build, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// handleTaskList answers the task listing the health check relies on.
func handleTaskList(srv *planfixtest.Server) {
	srv.Handle(http.MethodGet, "/task/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"tasks": []any{map[string]any{"id": 1}}})))
}

func decodeOutput(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m), "stdout: %s", s)
	return m
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCommand(&runtime{})

	for _, path := range [][]string{
		{"task", "create"},
		{"task", "update"},
		{"task", "get"},
		{"task", "list"},
		{"comment", "send"},
		{"comment", "get"},
		{"user", "get"},
		{"contact", "get"},
		{"file", "get"},
		{"file", "upload"},
		{"file", "download"},
		{"file", "fetch"},
		{"health"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootCommand_Flags(t *testing.T) {
	t.Parallel()

	root := newRootCommand(&runtime{})

	profile := root.PersistentFlags().Lookup("profile")
	require.NotNil(t, profile)
	assert.Equal(t, "p", profile.Shorthand)
	assert.Equal(t, "local", profile.DefValue)

	configDir := root.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, configDir)
	assert.Equal(t, "configs", configDir.DefValue)

	send, _, err := root.Find([]string{"comment", "send"})
	require.NoError(t, err)
	for _, name := range []string{"text", "pinned", "owner", "comment-id", "notify-user", "notify-group", "file-id", "attach"} {
		assert.NotNil(t, send.Flags().Lookup(name), "comment send --%s", name)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitGeneralError},
		{name: "api error", err: &planfix.APIError{Operation: "get task", Code: 4}, want: ExitAPIError},
		{name: "wrapped api error", err: fmt.Errorf("uploading attachments: %w", &planfix.APIError{Code: 1}), want: ExitAPIError},
		{name: "shape mismatch", err: &planfix.ShapeError{Operation: "get task"}, want: ExitUnexpectedResponse},
		{name: "unavailable", err: fmt.Errorf("file 3: %w", errUnavailable), want: ExitUnavailable},
		{name: "unhealthy", err: errUnhealthy, want: ExitUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestRun_BuildError(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	build := func(context.Context, Options) (*App, error) {
		return nil, errors.New("loading config: missing token")
	}

	code := Run(context.Background(), []string{"-p", "prod", "health"}, build, &stdout, &stderr)

	assert.Equal(t, ExitGeneralError, code)
	assert.Contains(t, stderr.String(), "missing token")
	assert.Empty(t, stdout.String())
}

func TestRun_OptionsReachBuilder(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	handleTaskList(srv)
	var got Options
	build := func(ctx context.Context, opts Options) (*App, error) {
		got = opts
		return testBuilder(srv)(ctx, opts)
	}

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), []string{"--profile", "dev", "--config-dir", "/etc/planfix", "health"}, build, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, Options{Profile: "dev", ConfigDir: "/etc/planfix"}, got)
}

func TestRun_ShutdownCalled(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	handleTaskList(srv)
	called := false
	build := func(ctx context.Context, opts Options) (*App, error) {
		a, err := testBuilder(srv)(ctx, opts)
		if err != nil {
			return nil, err
		}
		a.Shutdown = func(context.Context) error {
			called = true
			return nil
		}
		return a, nil
	}

	var stdout, stderr bytes.Buffer
	Run(context.Background(), []string{"health"}, build, &stdout, &stderr)

	assert.True(t, called)
}

func TestRun_TaskCreate(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodPost, "/task/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"id": 7})))

	res := run(t, srv, "task", "create", "--name", "Deploy", "--priority", "2", "--project", "12")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	out := decodeOutput(t, res.stdout)
	assert.Equal(t, "success", out["result"])
	assert.InDelta(t, 7, out["id"], 0)

	req := srv.LastRequest()
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "Deploy", body["name"])
	assert.InDelta(t, 2, body["priority"], 0)
	assert.Equal(t, map[string]any{"id": float64(12)}, body["project"])
	assert.NotContains(t, body, "description")
}

func TestRun_TaskCreate_FromFile(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodPost, "/task/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"id": 8})))

	path := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"From file","description":"<p>x</p>"}`), 0o600))

	res := run(t, srv, "task", "create", "-f", path, "--name", "Override")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	var body map[string]any
	require.NoError(t, json.Unmarshal(srv.LastRequest().Body, &body))
	assert.Equal(t, "Override", body["name"])
	assert.Equal(t, "<p>x</p>", body["description"])
}

func TestRun_TaskUpdate_InvalidSourceObjectID(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)

	res := run(t, srv, "task", "update", "5", "--source-object-id", "not-a-uuid")

	assert.Equal(t, ExitGeneralError, res.code)
	assert.Contains(t, res.stderr, "invalid --source-object-id")
	assert.Empty(t, srv.Requests())
}

func TestRun_TaskGet_APIError(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/{id}", planfixtest.Reply(http.StatusBadRequest,
		planfixtest.Error(4, "Task not found")))

	res := run(t, srv, "task", "get", "404")

	assert.Equal(t, ExitAPIError, res.code)
	assert.Contains(t, res.stderr, "Task not found")
	assert.Empty(t, res.stdout)
}

func TestRun_TaskGet_ShapeMismatch(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/{id}", planfixtest.Reply(http.StatusOK,
		map[string]any{"unexpected": true}))

	res := run(t, srv, "task", "get", "1")

	assert.Equal(t, ExitUnexpectedResponse, res.code)
}

func TestRun_TaskGet_Many(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "2" {
			planfixtest.WriteJSON(w, http.StatusBadRequest, planfixtest.Error(4, "Task not found"))
			return
		}
		planfixtest.WriteJSON(w, http.StatusOK, planfixtest.Success(map[string]any{
			"task": map[string]any{"id": 1, "name": "First"},
		}))
	})

	res := run(t, srv, "task", "get", "1", "2", "--fields", "id,name", "-w", "2")

	assert.Equal(t, ExitAPIError, res.code, "exit code follows the failed id")
	assert.Contains(t, res.stderr, "1 of 2 tasks failed")
	assert.Contains(t, res.stderr, "task 2")

	var reports []taskReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, int64(1), reports[0].ID)
	require.NotNil(t, reports[0].Task)
	assert.Empty(t, reports[0].Error)
	assert.Equal(t, int64(2), reports[1].ID)
	assert.Nil(t, reports[1].Task)
	assert.Contains(t, reports[1].Error, "Task not found")

	for _, req := range srv.Requests() {
		assert.Equal(t, "id,name", req.Query.Get("fields"))
	}
}

func TestRun_TaskGet_ManySucceeded(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/{id}", func(w http.ResponseWriter, r *http.Request) {
		planfixtest.WriteJSON(w, http.StatusOK, planfixtest.Success(map[string]any{
			"task": map[string]any{"id": chi.URLParam(r, "id")},
		}))
	})

	res := run(t, srv, "task", "get", "3", "4")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	var reports []taskReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
	assert.Len(t, reports, 2)
}

func TestRun_TaskGet_ManyUnreachable(t *testing.T) {
	t.Parallel()

	res := runWith(t, testBuilderFor(unreachableURL), "task", "get", "1", "2")

	assert.Equal(t, ExitGeneralError, res.code)
	assert.Contains(t, res.stderr, "2 of 2 tasks failed")

	var reports []taskReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports), "per-id output is still printed")
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Nil(t, r.Task)
		assert.NotEmpty(t, r.Error)
	}
}

func TestRun_TaskList_Params(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"tasks": []any{}})))

	res := run(t, srv, "task", "list", "--fields", "id", "--param", "pageSize=10")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	req := srv.LastRequest()
	assert.Equal(t, "id", req.Query.Get("fields"))
	assert.Equal(t, "10", req.Query.Get("pageSize"))
}

func TestRun_InvalidID(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)

	for _, args := range [][]string{
		{"task", "get", "abc"},
		{"comment", "get", "0"},
		{"file", "download", "-3"},
	} {
		res := run(t, srv, args...)
		assert.Equal(t, ExitGeneralError, res.code, "%v", args)
	}
	assert.Empty(t, srv.Requests())
}

func TestRun_CommentSend_WithAttachment(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodPost, "/file/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"id": 55})))
	srv.Handle(http.MethodPost, "/task/{id}/comments/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"id": 900})))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	res := run(t, srv, "comment", "send", "42",
		"--text", "Build finished",
		"--pinned",
		"--owner", "3",
		"--notify-user", "user:1",
		"--file-id", "10",
		"--attach", path,
	)

	require.Equal(t, ExitSuccess, res.code, res.stderr)

	out := decodeOutput(t, res.stdout)
	assert.Equal(t, map[string]any{"ids": []any{float64(55)}}, out["upload"])

	req := srv.LastRequest()
	assert.Equal(t, "/rest/task/42/comments/", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "<span>#cli#</span><p>Build finished</p>", body["description"])
	assert.Equal(t, true, body["isPinned"])
	assert.Equal(t, map[string]any{"id": float64(3)}, body["owner"])
	assert.Equal(t, []any{
		map[string]any{"id": float64(10)},
		map[string]any{"id": float64(55)},
	}, body["files"])
}

func TestRun_CommentSend_CommentRejectedAfterUpload(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodPost, "/file/", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"id": 55})))
	srv.Handle(http.MethodPost, "/task/{id}/comments/", planfixtest.Reply(http.StatusBadRequest,
		planfixtest.Error(4, "Task not found")))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	res := run(t, srv, "comment", "send", "42", "--text", "Build finished", "--attach", path)

	assert.Equal(t, ExitAPIError, res.code)
	assert.Contains(t, res.stderr, "Task not found")

	out := decodeOutput(t, res.stdout)
	assert.Nil(t, out["comment"])
	assert.Equal(t, map[string]any{"ids": []any{float64(55)}}, out["upload"], "uploaded ids are still reported")
}

func TestRun_CommentSend_UpdateExisting(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodPost, "/task/{id}/comments/{commentID}", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(nil)))

	res := run(t, srv, "comment", "send", "42", "--text", "edited", "--comment-id", "77")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "/rest/task/42/comments/77", srv.LastRequest().Path)
	assert.NotContains(t, decodeOutput(t, res.stdout), "upload")
}

func TestRun_CommentSend_RequiresText(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)

	res := run(t, srv, "comment", "send", "42")

	assert.Equal(t, ExitGeneralError, res.code)
	assert.Empty(t, srv.Requests())
}

func TestRun_UserAndContactGet(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/user/{ref}", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"user": map[string]any{"id": 1, "name": "Ann"}})))
	srv.Handle(http.MethodGet, "/contact/{ref}", planfixtest.Reply(http.StatusOK,
		planfixtest.Success(map[string]any{"contact": map[string]any{"id": 9, "name": "Bob"}})))

	res := run(t, srv, "user", "get", "user:1", "--fields", "id,name")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "/rest/user/user:1", srv.LastRequest().Path)
	assert.Contains(t, res.stdout, `"Ann"`)

	res = run(t, srv, "contact", "get", "9")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "/rest/contact/9", srv.LastRequest().Path)
	assert.Contains(t, res.stdout, `"Bob"`)
}

func TestRun_FileUpload_PartialFailure(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	calls := 0
	srv.Handle(http.MethodPost, "/file/", func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 2 {
			planfixtest.WriteJSON(w, http.StatusOK, planfixtest.Error(12, "File too large"))
			return
		}
		planfixtest.WriteJSON(w, http.StatusOK, planfixtest.Success(map[string]any{"id": 200 + calls}))
	})

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0o600))
		paths = append(paths, p)
	}

	res := run(t, srv, append([]string{"file", "upload"}, paths...)...)

	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var report uploadReport
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, []int64{201, 203}, report.IDs)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].Index)
	assert.Equal(t, "b.txt", report.Failures[0].Name)
	assert.Contains(t, report.Failures[0].Error, "File too large")
}

func TestRun_FileUpload_MissingFile(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)

	res := run(t, srv, "file", "upload", filepath.Join(t.TempDir(), "missing.bin"))

	assert.Equal(t, ExitGeneralError, res.code)
	assert.Contains(t, res.stderr, "reading attachment")
}

func TestRun_FileDownload(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/file/{id}/download", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	})

	t.Run("stdout", func(t *testing.T) {
		res := run(t, srv, "file", "download", "5")
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.Equal(t, "a,b\n1,2\n", res.stdout)
	})

	t.Run("path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		res := run(t, srv, "file", "download", "5", "-o", path)

		require.Equal(t, ExitSuccess, res.code, res.stderr)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(data))

		out := decodeOutput(t, res.stdout)
		assert.Equal(t, path, out["path"])
		assert.InDelta(t, 8, out["bytes"], 0)
		assert.Equal(t, "text/csv", out["contentType"])
	})
}

func TestRun_FileDownload_Unavailable(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/file/{id}/download", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res := run(t, srv, "file", "download", "5")

	assert.Equal(t, ExitUnavailable, res.code)
	assert.Contains(t, res.stderr, "file 5")
	assert.Empty(t, res.stdout)
}

func TestRun_FileFetch(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.HandleRaw(http.MethodGet, "/public/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})

	res := run(t, srv, "file", "fetch", srv.URL+"/public/logo.png")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "png-bytes", res.stdout)

	res = run(t, srv, "file", "fetch", srv.URL+"/missing")
	assert.Equal(t, ExitUnavailable, res.code)
}

func TestRun_Health(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	handleTaskList(srv)

	res := run(t, srv, "health")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	var report health.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, health.StatusOK, report.Status)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, planfix.ServiceName, report.Checks[0].Name)
}

func TestRun_Health_Unhealthy(t *testing.T) {
	t.Parallel()

	srv := planfixtest.NewServer(t)
	srv.Handle(http.MethodGet, "/task/", planfixtest.Reply(http.StatusForbidden,
		planfixtest.Error(3, "Access denied")))

	tests := []struct {
		name  string
		build Builder
		cause string
	}{
		{name: "unreachable", build: testBuilderFor(unreachableURL)},
		{name: "api error", build: testBuilder(srv), cause: "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runWith(t, tt.build, "health")

			assert.Equal(t, ExitUnhealthy, res.code)

			var report health.Report
			require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
			assert.Equal(t, health.StatusUnhealthy, report.Status)
			require.Len(t, report.Checks, 1)
			assert.Equal(t, health.StatusUnhealthy, report.Checks[0].Status)
			assert.NotEmpty(t, report.Checks[0].Error)
			assert.Contains(t, report.Checks[0].Error, tt.cause)
		})
	}
}
