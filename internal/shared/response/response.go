package response

import (
	"licitahub/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// JSON writes a success payload as-is. The API mirrors entity fields with
// snake_case keys, without an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message writes the `{"message": ...}` body used by delete endpoints.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error maps err through the apperror taxonomy and writes the
// `{"error": message}` body with the matching status code.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
}
