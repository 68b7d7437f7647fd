package errs

import "strings"

// FieldError describes a problem with one request field.
type FieldError struct {
	// Field is the JSON name of the offending field, e.g. "quantity".
	Field string `json:"field"`

	// Error is a short human readable reason, e.g. "is required".
	Error string `json:"error"`
}

type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional hint for the client on how to recover.
type Action struct {
	Type ActionType `json:"type"`

	Message string `json:"message"`

	Value string `json:"value"`
}

// HTTPError is the single error envelope the API writes. The message is
// serialized under "error" because that is the key clients read:
//
//	{"error": "Validation failed", "code": "UNPROCESSABLE_ENTITY", "status": 422,
//	 "errors": [{"field": "product", "error": "is required"}]}
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"status"`

	// Override tells clients the message is safe to show verbatim.
	Override bool `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`

	Action *Action `json:"action,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) reports whether
// err already carries an HTTP shape.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with a different message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// Field returns the error message recorded for field, if any.
func (e *HTTPError) Field(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Error, true
		}
	}
	return "", false
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
