package response

import (
	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Data    any        `json:"data,omitempty"`
}

// ErrorBody mirrors the error object of the envelope.
type ErrorBody struct {
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// OK writes a success envelope with the given status, message and data.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failure envelope from a tagged application error.
func Fail(c *gin.Context, err *apperror.Error) {
	c.JSON(err.Status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Message: err.Message,
			Code:    err.Status,
			Details: err.Details,
		},
	})
}

// Abort writes a failure envelope and stops the middleware chain.
func Abort(c *gin.Context, err *apperror.Error) {
	Fail(c, err)
	c.Abort()
}

// FromError translates any error into the envelope, collapsing unexpected
// ones into a generic internal failure.
func FromError(c *gin.Context, err error) {
	Fail(c, apperror.From(err))
}
