package planfix

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

// commentPath returns task/{taskID}/comments/ or, for an update,
// task/{taskID}/comments/{commentID}.
func commentPath(taskID int64, commentID *int64) string {
	path := "task/" + strconv.FormatInt(taskID, 10) + "/comments/"
	if commentID != nil {
		path += strconv.FormatInt(*commentID, 10)
	}
	return path
}

// commentDescription renders the comment body. The tag marks comments that
// were posted by this client.
func commentDescription(tag, text string) string {
	var b strings.Builder
	if tag != "" {
		b.WriteString("<span>")
		b.WriteString(tag)
		b.WriteString("</span>")
	}
	b.WriteString("<p>")
	b.WriteString(text)
	b.WriteString("</p>")
	return b.String()
}

func (c *Client) commentRequest(in schema.CommentInput) *schema.CommentRequest {
	req := &schema.CommentRequest{
		Description: commentDescription(c.commentTag, in.Text),
		IsPinned:    in.IsPinned,
		Recipients:  in.Recipients,
		Files:       make([]schema.EntityRef, 0, len(in.FileIDs)),
	}
	for _, id := range in.FileIDs {
		req.Files = append(req.Files, schema.EntityRef{ID: id})
	}
	if in.OwnerID != nil {
		req.Owner = &schema.EntityRef{ID: *in.OwnerID}
	}
	return req
}
