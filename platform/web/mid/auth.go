package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/platform/token"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/sys"
)

const ownerKey = "owner"

// Auth rejects requests without a valid bearer token and stores the
// authenticated owner id in the request context
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "missing bearer token"})
			return
		}

		owner, err := token.Parse(strings.TrimPrefix(header, "Bearer "), []byte(sys.Configs.Auth.Secret))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "invalid token"})
			return
		}

		ctx.Set(ownerKey, owner)
		ctx.Next()
	}
}

// Owner returns the authenticated owner id stored by Auth
func Owner(ctx *gin.Context) string {
	return ctx.GetString(ownerKey)
}
