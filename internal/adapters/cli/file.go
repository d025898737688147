package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix"
	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

func newFileCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Upload, inspect and download files",
	}
	cmd.AddCommand(
		newFileGetCommand(rt),
		newFileUploadCommand(rt),
		newFileDownloadCommand(rt),
		newFileFetchCommand(rt),
	)
	return cmd
}

func newFileGetCommand(rt *runtime) *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "get <file-id>",
		Short: "Get file metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := rt.app.Client.GetFile(cmd.Context(), id, schema.Fields(fields...))
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")
	return cmd
}

func newFileUploadCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>...",
		Short: "Upload files and print the ids Planfix assigned",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readAttachments(args)
			if err != nil {
				return err
			}
			result, err := rt.app.Client.UploadFiles(cmd.Context(), files)
			if err != nil {
				if result != nil && len(result.IDs) > 0 {
					_ = writeJSON(rt.stdout, newUploadReport(result))
				}
				return err
			}
			return writeJSON(rt.stdout, newUploadReport(result))
		},
	}
}

func newFileDownloadCommand(rt *runtime) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a file's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := rt.app.Client.DownloadFile(cmd.Context(), id)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("file %d: %w", id, errUnavailable)
			}
			return writeDownload(rt.stdout, output, d)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "destination path (- for stdout)")
	return cmd
}

func newFileFetchCommand(rt *runtime) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download a URL without Planfix credentials, e.g. a file's downloadUrl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := planfix.DownloadURL(cmd.Context(), rt.app.Fetcher, args[0])
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("%s: %w", args[0], errUnavailable)
			}
			return writeDownload(rt.stdout, output, d)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "destination path (- for stdout)")
	return cmd
}
