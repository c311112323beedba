package handlers

import (
	"errors"

	"github.com/arnizwnd/redis-tugas/internal/api/response"
	"github.com/arnizwnd/redis-tugas/internal/domain/institution"
	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
	"github.com/gin-gonic/gin"
)

// Cache key prefixes, one per list endpoint
const (
	institutionCachePrefix      = "institution-trade"
	metadataCachePrefix         = "metadata-trade"
	reportsCachePrefix          = "reports-trade"
	reportsCompaniesCachePrefix = "reports-companies-trade"
)

// queryParam returns nil when the parameter was not sent at all,
// so "?name=" and no name produce different cache keys.
func queryParam(c *gin.Context, name string) *string {
	value, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &value
}

// writeListError maps filter and backend errors to the error envelope
func writeListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, institution.ErrInvalidDate):
		response.BadRequest(c, "Invalid date parameter", err.Error())
	case errors.Is(err, metadata.ErrInvalidSubSectorID):
		response.BadRequest(c, "Invalid id parameter", err.Error())
	default:
		response.DatabaseError(c, err)
	}
}
