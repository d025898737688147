package schema

import "strings"

// Params are query parameters for GET calls.
type Params map[string]string

// Fields returns Params selecting which fields Planfix should return. Names
// may be system field names or custom field ids.
func Fields(names ...string) Params {
	if len(names) == 0 {
		return Params{}
	}
	return Params{"fields": strings.Join(names, ",")}
}

// Attachment is a file to upload.
type Attachment struct {
	Name string
	Data []byte
}

// UploadFailure records a file Planfix did not accept.
type UploadFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Err   error  `json:"-"`
}

// UploadResult is the outcome of a batch upload. IDs holds the ids of the
// accepted files in upload order; rejected files are listed in Failures.
type UploadResult struct {
	IDs      []int64         `json:"ids"`
	Failures []UploadFailure `json:"failures,omitempty"`
}

// Download is a file body with its declared media type.
type Download struct {
	Body        []byte
	ContentType string
}

// CommentInput describes a comment to post on a task. When CommentID is set
// the existing comment is updated instead.
type CommentInput struct {
	TaskID     int64
	CommentID  *int64
	OwnerID    *int64
	Recipients Recipients
	FileIDs    []int64
	Text       string
	IsPinned   bool
}
