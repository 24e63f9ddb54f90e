package api

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/todosum/todosum-api/internal/domain"
)

// dueDateLayout is the wire format for due dates.
const dueDateLayout = "2006-01-02"

// CreateTaskRequest defines the payload for the task creation endpoint.
// Description uses a pointer so that "key present but empty" is accepted
// while a missing key is rejected.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
	Priority    string  `json:"priority"    validate:"required,oneof=low medium high"`
	DueDate     *string `json:"dueDate"     validate:"omitnil,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

// UpdateTaskRequest defines the payload for the partial update endpoint.
// Every field is optional; a present field is checked against the same rules
// as creation. The tags use omitnil rather than omitempty so that an explicit
// empty string is still validated instead of being treated as absent.
type UpdateTaskRequest struct {
	Title       *string      `json:"title"       validate:"omitnil,min=1"`
	Description *string      `json:"description"`
	Priority    *string      `json:"priority"    validate:"omitnil,oneof=low medium high"`
	DueDate     OptionalDate `json:"dueDate"`
	Completed   *bool        `json:"completed"`
}

// OptionalDate distinguishes the three states a nullable date can take in a
// partial-update payload: absent (leave untouched), explicit null (clear),
// and a value. The raw string is kept so that a malformed date surfaces as a
// field validation error instead of a malformed-request error.
type OptionalDate struct {
	Set  bool
	Null bool
	Raw  string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Raw)
}

// SendSummaryRequest defines the payload for the dispatch-to-channel endpoint.
type SendSummaryRequest struct {
	Summary string `json:"summary"`
}

// SummaryResponse wraps a generated summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dueDateLayout)
		resp.DueDate = &due
	}
	return resp
}

// tasksToResponse converts a task slice, yielding an empty (not nil) slice so
// the list endpoint serializes to a JSON array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// newValidator builds the shared request validator, reporting field names by
// their JSON tag so validation errors match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrorsFrom converts validator output into the per-field error list
// carried by validation failures, enumerating every offending field.
func fieldErrorsFrom(errs validator.ValidationErrors) []domain.FieldError {
	fields := make([]domain.FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, domain.FieldError{
			Field:  fe.Field(),
			Reason: reasonForTag(fe),
		})
	}
	return fields
}

// reasonForTag maps validation tags to stable, human-readable reasons.
func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "min":
		return "cannot be empty"
	default:
		return "is invalid"
	}
}
