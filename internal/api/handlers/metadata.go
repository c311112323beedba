package handlers

import (
	"context"

	"github.com/arnizwnd/redis-tugas/internal/api/response"
	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/service/listing"
	"github.com/gin-gonic/gin"
)

// MetadataHandler serves company metadata lists
type MetadataHandler struct {
	repo    metadata.Repository
	listing *listing.Service
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(repo metadata.Repository, svc *listing.Service) *MetadataHandler {
	return &MetadataHandler{repo: repo, listing: svc}
}

// List returns companies whose slug, sector and sub_sector_id are in the
// given comma separated sets
// GET /get-metadata-trade?sector=Banks,Insurance&id=3
func (h *MetadataHandler) List(c *gin.Context) {
	params := metadata.Params{
		Slug:   queryParam(c, "slug"),
		Sector: queryParam(c, "sector"),
		ID:     queryParam(c, "id"),
	}

	filter, err := metadata.ResolveFilter(params)
	if err != nil {
		writeListError(c, err)
		return
	}

	key := cache.Key(metadataCachePrefix, params.KeyParts()...)
	result, err := listing.Fetch(c.Request.Context(), h.listing, key,
		func(ctx context.Context) ([]metadata.Company, error) {
			return h.repo.List(ctx, filter)
		})
	if err != nil {
		writeListError(c, err)
		return
	}

	response.RawList(c, result.Body, result.Cached)
}
