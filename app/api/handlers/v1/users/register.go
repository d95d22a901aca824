package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/user"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
)

// Register godoc
// @Summary Register a user
// @Description Creates a user account
// @Tags User
// @Accept json
// @Produce json
// @Param user body user.NewUser true "New user"
// @Success 201 {object} user.User
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/users [post]
func Register(ctx *gin.Context) handler.Result {
	var newU user.NewUser
	if err := ctx.ShouldBindJSON(&newU); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	created, err := user.Register(ctx, newU)
	switch {
	case errors.Is(err, user.ErrMissingFields):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, user.ErrUsernameTaken):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
