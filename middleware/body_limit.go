package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akwaflow/website/utils"
)

// FileTooLargeMessage is the user-visible rejection for oversized bodies.
const FileTooLargeMessage = "File too large. Maximum size is 16MB."

// BodySizeLimit rejects request bodies above maxBytes before any handler
// logic runs. Declared lengths are checked up front; chunked or lying clients
// are caught by the MaxBytesReader wrapper when the handler reads the body.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > maxBytes {
			utils.Error(ctx, http.StatusRequestEntityTooLarge, 41300, FileTooLargeMessage)
			ctx.Abort()
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
