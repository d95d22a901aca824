package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note with optional audio attachments
// @Tags Note
// @Accept mpfd
// @Produce json
// @Param title formData string true "Note title"
// @Param description formData string false "Note description"
// @Param audio formData file false "Audio files"
// @Security BearerAuth
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	title, description, uploads, err := bindNote(ctx)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	created, err := note.Create(ctx, mid.Owner(ctx), note.NewNote{
		Title:       title,
		Description: description,
		Uploads:     uploads,
	})
	if err != nil {
		return failure(err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
