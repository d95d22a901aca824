package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// List godoc
// @Summary List notes
// @Description Lists every note belonging to the caller
// @Tags Note
// @Produce json
// @Security BearerAuth
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	notes, err := note.List(ctx, mid.Owner(ctx))
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
