package handlers

import (
	"context"

	"github.com/arnizwnd/redis-tugas/internal/api/response"
	"github.com/arnizwnd/redis-tugas/internal/domain/report"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/service/listing"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves sub-sector report lists
type ReportHandler struct {
	repo    report.Repository
	listing *listing.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(repo report.Repository, svc *listing.Service) *ReportHandler {
	return &ReportHandler{repo: repo, listing: svc}
}

// List returns reports, optionally only those with positive or negative
// revenue growth
// GET /get-reports-trade?type=positive
func (h *ReportHandler) List(c *gin.Context) {
	params := report.Params{Type: queryParam(c, "type")}
	filter := report.ResolveFilter(params)

	key := cache.Key(reportsCachePrefix, params.KeyParts()...)
	result, err := listing.Fetch(c.Request.Context(), h.listing, key,
		func(ctx context.Context) ([]report.Report, error) {
			return h.repo.List(ctx, filter)
		})
	if err != nil {
		writeListError(c, err)
		return
	}

	response.RawList(c, result.Body, result.Cached)
}

// ListCompanies returns sub-sectors with 20 to 50 companies
// GET /get-reports-companies-trade
func (h *ReportHandler) ListCompanies(c *gin.Context) {
	filter := report.DefaultCompaniesFilter()

	key := cache.Key(reportsCompaniesCachePrefix)
	result, err := listing.Fetch(c.Request.Context(), h.listing, key,
		func(ctx context.Context) ([]report.CompanyCount, error) {
			return h.repo.ListCompanyCounts(ctx, filter)
		})
	if err != nil {
		writeListError(c, err)
		return
	}

	response.RawList(c, result.Body, result.Cached)
}
