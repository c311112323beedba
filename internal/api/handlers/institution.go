package handlers

import (
	"context"

	"github.com/arnizwnd/redis-tugas/internal/api/response"
	"github.com/arnizwnd/redis-tugas/internal/domain/institution"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/service/listing"
	"github.com/gin-gonic/gin"
)

// InstitutionHandler serves institution trade lists
type InstitutionHandler struct {
	repo    institution.Repository
	listing *listing.Service
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(repo institution.Repository, svc *listing.Service) *InstitutionHandler {
	return &InstitutionHandler{repo: repo, listing: svc}
}

// List returns institution trades filtered by name, symbol and date
// GET /get-institution-trade?name=Vanguard&symbol=BB&date=2024-05-02
func (h *InstitutionHandler) List(c *gin.Context) {
	params := institution.Params{
		Name:   queryParam(c, "name"),
		Symbol: queryParam(c, "symbol"),
		Date:   queryParam(c, "date"),
	}

	filter, err := institution.ResolveFilter(params)
	if err != nil {
		writeListError(c, err)
		return
	}

	key := cache.Key(institutionCachePrefix, params.KeyParts()...)
	result, err := listing.Fetch(c.Request.Context(), h.listing, key,
		func(ctx context.Context) ([]institution.Trade, error) {
			return h.repo.List(ctx, filter)
		})
	if err != nil {
		writeListError(c, err)
		return
	}

	response.RawList(c, result.Body, result.Cached)
}
