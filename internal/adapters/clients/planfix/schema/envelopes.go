package schema

// ResultSuccess is the result value of every successful Planfix response.
const ResultSuccess = "success"

// Envelope carries the status fields every success response shares. The code
// must be absent: a body with a code is an error, whatever its result says.
type Envelope struct {
	Result string `json:"result" validate:"required,eq=success"`
	Code   *int   `json:"code,omitempty"`
}

// IDResponse is returned by calls that create an object.
type IDResponse struct {
	Envelope

	ID int64 `json:"id" validate:"required"`
}

// StatusResponse is returned by calls that modify an object. Some endpoints
// echo the id back, others do not.
type StatusResponse struct {
	Envelope

	ID *int64 `json:"id,omitempty"`
}

// TaskListResponse is returned by task listing.
type TaskListResponse struct {
	Envelope

	Tasks []Task `json:"tasks" validate:"required,dive"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Envelope

	Task Task `json:"task" validate:"required"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Envelope

	Comment Comment `json:"comment" validate:"required"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Envelope

	User User `json:"user" validate:"required"`
}

// ContactResponse wraps a single contact.
type ContactResponse struct {
	Envelope

	Contact Contact `json:"contact" validate:"required"`
}

// FileResponse wraps file metadata.
type FileResponse struct {
	Envelope

	File File `json:"file" validate:"required"`
}

// ErrorResponse is the envelope Planfix returns when a call fails.
type ErrorResponse struct {
	Result string  `json:"result" validate:"required"`
	Code   *int    `json:"code" validate:"required"`
	Error  *string `json:"error,omitempty"`
}
