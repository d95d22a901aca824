package notes

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/business/v1/note"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
)

// audioField is the multipart field carrying the uploaded audio files
const audioField = "audio"

// bindNote parses a note payload from either multipart/form-data (with
// optional audio files) or plain JSON (title and description only)
func bindNote(ctx *gin.Context) (string, string, []note.Upload, error) {
	if ctx.ContentType() == "multipart/form-data" {
		form, err := ctx.MultipartForm()
		if err != nil {
			return "", "", nil, fmt.Errorf("invalid multipart form: %w", err)
		}

		uploads := make([]note.Upload, 0, len(form.File[audioField]))
		for _, fh := range form.File[audioField] {
			f, err := fh.Open()
			if err != nil {
				return "", "", nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return "", "", nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
			}
			uploads = append(uploads, note.Upload{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Data:        data,
			})
		}
		return ctx.PostForm("title"), ctx.PostForm("description"), uploads, nil
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return "", "", nil, fmt.Errorf("invalid body: %w", err)
	}
	return body.Title, body.Description, nil, nil
}

// failure translates a business error into an http result
func failure(err error) handler.Result {
	var vErr *note.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]handler.FieldError, 0, len(vErr.Failures))
		for _, f := range vErr.Failures {
			fields = append(fields, handler.FieldError{Field: f.Field, Message: f.Reason})
		}
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "validation failed", Fields: fields},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}
