package schema

import "github.com/google/uuid"

// EntityRef references another Planfix object by numeric id.
type EntityRef struct {
	ID int64 `json:"id" validate:"required"`
}

// TimePoint is a Planfix date/time value. Planfix fills whichever parts apply.
type TimePoint struct {
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	DateTime *string `json:"datetime,omitempty"`
}

// Person is a user or contact reference. Planfix ids are prefixed with the
// object kind, for example "user:1" or "contact:12".
type Person struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// Group is a user group reference.
type Group struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// People is a set of users and groups, used for assignees, participants,
// auditors and comment recipients.
type People struct {
	Users  []Person `json:"users" validate:"required,dive"`
	Groups []Group  `json:"groups" validate:"required,dive"`
}

// CustomField describes a custom field definition.
type CustomField struct {
	ID         int64  `json:"id" validate:"required"`
	Name       string `json:"name"`
	Type       int    `json:"type"`
	ObjectType int    `json:"objectType"`
}

// CustomFieldData is a custom field value as returned by Planfix.
type CustomFieldData struct {
	Field CustomField `json:"field" validate:"required"`
	Value any         `json:"value"`
}

// CustomFieldValue is a custom field value as sent to Planfix.
type CustomFieldValue struct {
	Field EntityRef `json:"field" validate:"required"`
	Value any       `json:"value"`
}

// File is file metadata.
type File struct {
	ID          int64   `json:"id" validate:"required"`
	Size        int64   `json:"size"`
	Name        string  `json:"name"`
	DownloadURL *string `json:"downloadUrl,omitempty"`
}

// Comment is a task comment.
type Comment struct {
	ID          int64      `json:"id" validate:"required"`
	Task        *EntityRef `json:"task,omitempty"`
	Project     *EntityRef `json:"project,omitempty"`
	Contact     *Person    `json:"contact,omitempty"`
	Owner       *Person    `json:"owner,omitempty"`
	Recipients  *People    `json:"recipients,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// UserBase holds the fields users and contacts share.
type UserBase struct {
	ID       int64   `json:"id" validate:"required"`
	Name     *string `json:"name,omitempty"`
	Midname  *string `json:"midname,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// User is a Planfix employee.
type User struct {
	UserBase

	CustomFieldData []CustomFieldData `json:"customFieldData,omitempty" validate:"omitempty,dive"`
}

// Contact is a Planfix contact (client, counterparty).
type Contact struct {
	UserBase

	CustomFieldData []CustomFieldData `json:"customFieldData,omitempty" validate:"omitempty,dive"`
}

// Task is a Planfix task as returned by the API. Every field except ID is
// optional; Planfix only returns the fields that were requested.
type Task struct {
	ID                int64             `json:"id" validate:"required"`
	SourceObjectID    *uuid.UUID        `json:"sourceObjectId,omitempty"`
	SourceDataVersion *string           `json:"sourceDataVersion,omitempty"`
	Name              *string           `json:"name,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Priority          *int              `json:"priority,omitempty"`
	Status            map[string]any    `json:"status,omitempty"`
	ProcessID         *int64            `json:"processId,omitempty"`
	ResultChecking    *bool             `json:"resultChecking,omitempty"`
	Type              *string           `json:"type,omitempty"`
	Assigner          *Person           `json:"assigner,omitempty"`
	Parent            *EntityRef        `json:"parent,omitempty"`
	Template          *EntityRef        `json:"template,omitempty"`
	Project           *EntityRef        `json:"project,omitempty"`
	Counterparty      *Person           `json:"counterparty,omitempty"`
	DateTime          *TimePoint        `json:"dateTime,omitempty"`
	StartDateTime     *TimePoint        `json:"startDateTime,omitempty"`
	EndDateTime       *TimePoint        `json:"endDateTime,omitempty"`
	HasStartDate      *bool             `json:"hasStartDate,omitempty"`
	HasEndDate        *bool             `json:"hasEndDate,omitempty"`
	HasStartTime      *bool             `json:"hasStartTime,omitempty"`
	HasEndTime        *bool             `json:"hasEndTime,omitempty"`
	DelayedTillDate   *TimePoint        `json:"delayedTillDate,omitempty"`
	DateOfLastUpdate  *TimePoint        `json:"dateOfLastUpdate,omitempty"`
	Duration          *int              `json:"duration,omitempty"`
	DurationUnit      *string           `json:"durationUnit,omitempty"`
	DurationType      *string           `json:"durationType,omitempty"`
	Overdue           *bool             `json:"overdue,omitempty"`
	CloseToDeadLine   *bool             `json:"closeToDeadLine,omitempty"`
	NotAcceptedInTime *bool             `json:"notAcceptedInTime,omitempty"`
	InFavorites       *bool             `json:"inFavorites,omitempty"`
	IsSummary         *bool             `json:"isSummary,omitempty"`
	IsSequential      *bool             `json:"isSequential,omitempty"`
	Assignees         *People           `json:"assignees,omitempty"`
	Participants      *People           `json:"participants,omitempty"`
	Auditors          *People           `json:"auditors,omitempty"`
	Recurrence        map[string]any    `json:"recurrence,omitempty"`
	IsDeleted         *bool             `json:"isDeleted,omitempty"`
	CustomFieldData   []CustomFieldData `json:"customFieldData,omitempty" validate:"omitempty,dive"`
	Files             []File            `json:"files,omitempty" validate:"omitempty,dive"`
}

// TaskRequest is the body of a task create or update call. All fields are
// optional; unset fields are omitted from the JSON body.
type TaskRequest struct {
	ID                *int64             `json:"id,omitempty"`
	SourceObjectID    *uuid.UUID         `json:"sourceObjectId,omitempty"`
	SourceDataVersion *string            `json:"sourceDataVersion,omitempty"`
	Name              *string            `json:"name,omitempty"`
	Description       *string            `json:"description,omitempty"`
	Priority          *int               `json:"priority,omitempty"`
	Status            map[string]any     `json:"status,omitempty"`
	ProcessID         *int64             `json:"processId,omitempty"`
	ResultChecking    *bool              `json:"resultChecking,omitempty"`
	Assigner          *Person            `json:"assigner,omitempty"`
	Parent            *EntityRef         `json:"parent,omitempty"`
	Template          *EntityRef         `json:"template,omitempty"`
	Project           *EntityRef         `json:"project,omitempty"`
	Counterparty      *Person            `json:"counterparty,omitempty"`
	DateTime          *TimePoint         `json:"dateTime,omitempty"`
	StartDateTime     *TimePoint         `json:"startDateTime,omitempty"`
	EndDateTime       *TimePoint         `json:"endDateTime,omitempty"`
	DelayedTillDate   *TimePoint         `json:"delayedTillDate,omitempty"`
	Duration          *int               `json:"duration,omitempty"`
	DurationUnit      *string            `json:"durationUnit,omitempty"`
	DurationType      *string            `json:"durationType,omitempty"`
	Overdue           *bool              `json:"overdue,omitempty"`
	CloseToDeadLine   *bool              `json:"closeToDeadLine,omitempty"`
	NotAcceptedInTime *bool              `json:"notAcceptedInTime,omitempty"`
	InFavorites       *bool              `json:"inFavorites,omitempty"`
	IsSummary         *bool              `json:"isSummary,omitempty"`
	IsSequential      *bool              `json:"isSequential,omitempty"`
	Assignees         *People            `json:"assignees,omitempty"`
	Participants      *People            `json:"participants,omitempty"`
	Auditors          *People            `json:"auditors,omitempty"`
	IsDeleted         *bool              `json:"isDeleted,omitempty"`
	CustomFieldData   []CustomFieldValue `json:"customFieldData,omitempty"`
	Files             []EntityRef        `json:"files,omitempty"`
}

// Recipients lists who is notified about a comment. The zero value encodes
// as an empty object.
type Recipients struct {
	Users  []Person `json:"users,omitempty"`
	Groups []Group  `json:"groups,omitempty"`
}

// CommentRequest is the body of a comment create or update call.
type CommentRequest struct {
	Description string      `json:"description"`
	IsPinned    bool        `json:"isPinned"`
	Recipients  Recipients  `json:"recipients"`
	Files       []EntityRef `json:"files"`
	Owner       *EntityRef  `json:"owner,omitempty"`
}
