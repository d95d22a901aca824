package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// Get godoc
// @Summary Find a note
// @Description Finds one of the caller's notes by id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Security BearerAuth
// @Success 200 {object} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	found, err := note.Find(ctx, mid.Owner(ctx), ctx.Param("id"))
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
