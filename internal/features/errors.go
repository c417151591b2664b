package features

import "fmt"

// ValidationError reports a request field that is malformed or outside the
// closed vocabulary the price model was trained on.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
