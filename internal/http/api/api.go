package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON error envelope for API endpoints.
type APIError struct {
	Code    int
	Message string
}

// HandlerFunc is an API handler returning a JSON payload or an error.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc into a gin handler.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
