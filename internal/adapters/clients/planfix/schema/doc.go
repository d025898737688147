// Package schema defines the records exchanged with the Planfix REST API:
// entities (task, comment, user, contact, file), the envelopes that wrap them,
// and the error envelope Planfix returns instead of a payload.
//
// The types are passive. JSON names follow the remote API, and `validate`
// tags describe the shape a response must have to be accepted. A success
// envelope only validates when result is "success" and no error code is
// present; [ErrorResponse] only validates when a code is present. A single
// body can therefore satisfy at most one of them.
package schema
