package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "scalehouse/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: "Resource created successfully",
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusCreated, response)
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	var statusCode int
	var errorInfo ErrorInfo

	var renderErr *apperrors.RenderError
	var commitErr *apperrors.CommitError

	switch {
	case errors.As(err, &renderErr):
		// The consumed number is reported so the gap can be explained later.
		statusCode = http.StatusInternalServerError
		errorInfo = ErrorInfo{
			Type:    string(apperrors.ErrorTypeRender),
			Message: "Ticket document failed to render",
			Details: renderErr.Error(),
		}
	case errors.As(err, &commitErr):
		statusCode = http.StatusInternalServerError
		errorInfo = ErrorInfo{
			Type:    string(apperrors.ErrorTypeCommit),
			Message: "Ticket failed to commit",
			Details: commitErr.Error(),
		}
	default:
		if appErr := apperrors.GetAppError(err); appErr != nil {
			statusCode = appErr.Code
			errorInfo = ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			}
		} else {
			// Do not expose internal error details.
			statusCode = http.StatusInternalServerError
			errorInfo = ErrorInfo{
				Type:    string(apperrors.ErrorTypeInternal),
				Message: "Internal server error occurred",
			}
		}
	}

	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &errorInfo,
	})
}
