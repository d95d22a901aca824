package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/user"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
)

// Login godoc
// @Summary Login
// @Description Verifies credentials and returns a bearer token
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body user.Credentials true "Credentials"
// @Success 200 {object} user.Session
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/login [post]
func Login(ctx *gin.Context) handler.Result {
	var creds user.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	session, err := user.Login(ctx, creds)
	switch {
	case errors.Is(err, user.ErrUnauthenticated):
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   session,
		}
	}
}
