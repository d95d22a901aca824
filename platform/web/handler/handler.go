package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every handler produces: a status code and an optional body
type Result struct {
	Status int
	Body   any
}

// Error is the default error payload
type Error struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError reports a validation failure for one field or uploaded file
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Wrapper adapts a Result-returning handler into a gin handler
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
