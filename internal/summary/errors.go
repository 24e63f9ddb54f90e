package summary

import "errors"

// Common errors returned by the summary package.
var (
	// ErrNoTasks is returned when Summarize is called with an empty task slice.
	ErrNoTasks = errors.New("no tasks to summarize")

	// ErrGenerationFailed is returned when summary generation fails for any
	// general reason, including transport failures talking to the model.
	ErrGenerationFailed = errors.New("failed to generate summary")

	// ErrInvalidResponse is returned when the model response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the summarizer configuration is
	// invalid, e.g. a missing API key or model name.
	ErrInvalidConfig = errors.New("invalid summarizer configuration")
)
