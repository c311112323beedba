package response

import (
	"net/http"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// Meta represents metadata in response
type Meta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Success sends a successful response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: Meta{
			RequestID: middleware.GetRequestID(c),
			Timestamp: time.Now(),
		},
	})
}

// RawList writes an already serialized JSON array as-is.
// List endpoints answer with a bare array so cached bodies are replayed
// byte for byte.
func RawList(c *gin.Context, body []byte, cached bool) {
	status := "MISS"
	if cached {
		status = "HIT"
	}
	c.Header(middleware.CacheStatusHeader, status)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
