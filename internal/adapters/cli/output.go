package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// uploadReport is the printable form of schema.UploadResult.
type uploadReport struct {
	IDs      []int64         `json:"ids"`
	Failures []failureReport `json:"failures,omitempty"`
}

type failureReport struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

func newUploadReport(r *schema.UploadResult) *uploadReport {
	if r == nil {
		return nil
	}
	out := &uploadReport{IDs: r.IDs}
	for _, f := range r.Failures {
		fr := failureReport{Index: f.Index, Name: f.Name}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}
		out.Failures = append(out.Failures, fr)
	}
	return out
}

// readAttachments loads files from disk, naming each by its base name.
func readAttachments(paths []string) ([]schema.Attachment, error) {
	files := make([]schema.Attachment, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading attachment: %w", err)
		}
		files = append(files, schema.Attachment{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}

// writeDownload writes d to path, or to stdout when path is "-" or empty.
func writeDownload(stdout io.Writer, path string, d *schema.Download) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(d.Body)
		return err
	}
	if err := os.WriteFile(path, d.Body, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return writeJSON(stdout, map[string]any{
		"path":        path,
		"bytes":       len(d.Body),
		"contentType": d.ContentType,
	})
}

func newTaskReports(results []ports.TaskResult) []taskReport {
	out := make([]taskReport, 0, len(results))
	for _, r := range results {
		tr := taskReport{ID: r.ID, Task: r.Task}
		if r.Err != nil {
			tr.Error = r.Err.Error()
		}
		out = append(out, tr)
	}
	return out
}
