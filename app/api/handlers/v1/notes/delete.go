package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes one of the caller's notes and all of its audio attachments
// @Tags Note
// @Param id path string true "Note id"
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	if err := note.Delete(ctx, mid.Owner(ctx), ctx.Param("id")); err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusNoContent,
	}
}
