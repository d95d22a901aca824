package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// Update godoc
// @Summary Replace a note
// @Description Updates title and description; when audio files are supplied, replaces the entire attachment set
// @Tags Note
// @Accept mpfd
// @Produce json
// @Param id path string true "Note id"
// @Param title formData string true "Note title"
// @Param description formData string false "Note description"
// @Param audio formData file false "Audio files replacing the current set"
// @Security BearerAuth
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	title, description, uploads, err := bindNote(ctx)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	updated, err := note.Replace(ctx, mid.Owner(ctx), ctx.Param("id"), note.UpdateNote{
		Title:       title,
		Description: description,
		Uploads:     uploads,
	})
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
