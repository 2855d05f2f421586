package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionAdminKey is the session key holding the authenticated-admin flag.
const SessionAdminKey = "admin"

// AdminRequired guards every admin-prefixed route: requests without an
// authenticated session are redirected to the login form and the requested
// action is never performed.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		if admin, ok := session.Get(SessionAdminKey).(bool); !ok || !admin {
			ctx.Redirect(http.StatusFound, "/admin/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
