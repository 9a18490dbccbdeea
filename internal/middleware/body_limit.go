package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize caps the upload body at 16 MiB, matching the API contract.
const MaxUploadSize = 16 << 20

// BodyLimit rejects request bodies larger than limit bytes. The read error
// surfaces when the multipart form is parsed, so handlers see it as a
// malformed request.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
