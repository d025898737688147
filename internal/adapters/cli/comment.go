package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

func newCommentCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Post and read task comments",
	}
	cmd.AddCommand(newCommentSendCommand(rt), newCommentGetCommand(rt))
	return cmd
}

func newCommentSendCommand(rt *runtime) *cobra.Command {
	var (
		text      string
		pinned    bool
		owner     int64
		commentID int64
		users     []string
		groups    []int64
		fileIDs   []int64
		attach    []string
	)
	cmd := &cobra.Command{
		Use:   "send <task-id>",
		Short: "Add a comment to a task, or update one with --comment-id",
		Long: `Add a comment to a task. Files given with --attach are uploaded first and
attached to the comment; files Planfix rejects are reported in the output and
left out of the comment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			in := schema.CommentInput{
				TaskID:   taskID,
				Text:     text,
				IsPinned: pinned,
				FileIDs:  fileIDs,
			}
			if cmd.Flags().Changed("owner") {
				in.OwnerID = &owner
			}
			if cmd.Flags().Changed("comment-id") {
				in.CommentID = &commentID
			}
			for _, u := range users {
				in.Recipients.Users = append(in.Recipients.Users, schema.Person{ID: u})
			}
			for _, g := range groups {
				in.Recipients.Groups = append(in.Recipients.Groups, schema.Group{ID: g})
			}

			attachments, err := readAttachments(attach)
			if err != nil {
				return err
			}

			posted, err := rt.app.Comments.Post(cmd.Context(), in, attachments)
			if err != nil {
				if posted != nil && posted.Upload != nil && len(posted.Upload.IDs) > 0 {
					_ = writeJSON(rt.stdout, newCommentReport(posted))
				}
				return err
			}
			return writeJSON(rt.stdout, newCommentReport(posted))
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&text, "text", "t", "", "comment text")
	fl.BoolVar(&pinned, "pinned", false, "pin the comment")
	fl.Int64Var(&owner, "owner", 0, "author user id")
	fl.Int64Var(&commentID, "comment-id", 0, "update this comment instead of adding one")
	fl.StringSliceVar(&users, "notify-user", nil, `users to notify, e.g. "user:1" (repeatable)`)
	fl.Int64SliceVar(&groups, "notify-group", nil, "group ids to notify (repeatable)")
	fl.Int64SliceVar(&fileIDs, "file-id", nil, "ids of already uploaded files to attach (repeatable)")
	fl.StringSliceVarP(&attach, "attach", "a", nil, "local files to upload and attach (repeatable)")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newCommentGetCommand(rt *runtime) *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "get <comment-id>",
		Short: "Get a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := rt.app.Client.GetComment(cmd.Context(), id, schema.Fields(fields...))
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")
	return cmd
}

// commentReport is the printable form of ports.PostedComment.
type commentReport struct {
	Comment *schema.StatusResponse `json:"comment"`
	Upload  *uploadReport          `json:"upload,omitempty"`
}

func newCommentReport(p *ports.PostedComment) commentReport {
	return commentReport{Comment: p.Comment, Upload: newUploadReport(p.Upload)}
}
