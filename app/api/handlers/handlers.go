package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/audio-note-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/audio-note-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/audio-note-api/app/api/handlers/v1/users"
	"github.com/ribgsilva/audio-note-api/platform/web/handler"
	"github.com/ribgsilva/audio-note-api/platform/web/mid"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.POST("/v1/users", handler.Wrapper(users.Register))
	r.POST("/v1/login", handler.Wrapper(users.Login))

	authed := r.Group("/v1", mid.Auth())
	authed.GET("/notes", handler.Wrapper(notes.List))
	authed.POST("/notes", handler.Wrapper(notes.Create))
	authed.GET("/notes/:id", handler.Wrapper(notes.Get))
	authed.PUT("/notes/:id", handler.Wrapper(notes.Update))
	authed.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
	authed.GET("/notes/:id/audio/:audioId", notes.GetAudio)
}
