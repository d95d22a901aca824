package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

// GetAudio godoc
// @Summary Download an attachment
// @Description Streams the audio bytes of one attachment
// @Tags Note
// @Produce octet-stream
// @Param id path string true "Note id"
// @Param audioId path string true "Attachment id"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/audio/{audioId} [get]
func GetAudio(ctx *gin.Context) {
	reader, att, err := note.Audio(ctx, mid.Owner(ctx), ctx.Param("id"), ctx.Param("audioId"))
	if err != nil {
		result := failure(err)
		ctx.JSON(result.Status, result.Body)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	ctx.DataFromReader(http.StatusOK, att.SizeBytes, att.ContentType, reader, nil)
}
