package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/domain/auth"
	"github.com/arnizwnd/redis-tugas/internal/domain/institution"
	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
	"github.com/arnizwnd/redis-tugas/internal/domain/report"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/infra/database/postgres"
	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDatabase struct{}

func (stubDatabase) Health(context.Context) *postgres.HealthStatus {
	return &postgres.HealthStatus{Status: postgres.StatusHealthy}
}

type stubInstitutions struct{ calls int }

func (s *stubInstitutions) List(context.Context, institution.Filter) ([]institution.Trade, error) {
	s.calls++
	return nil, nil
}

type stubMetadata struct{}

func (stubMetadata) List(context.Context, metadata.Filter) ([]metadata.Company, error) {
	return []metadata.Company{{Slug: "bbca", Sector: "Banks"}}, nil
}

type stubReports struct{ companiesCalls int }

func (stubReports) List(context.Context, report.Filter) ([]report.Report, error) {
	return nil, nil
}

func (s *stubReports) ListCompanyCounts(context.Context, report.CompaniesFilter) ([]report.CompanyCount, error) {
	s.companiesCalls++
	return []report.CompanyCount{{SubSector: "Banks", TotalCompanies: 47}}, nil
}

func newTestRouter(t *testing.T) (*Router, *stubInstitutions, *stubReports) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test", AllowedOrigins: []string{"*"}},
		Cache:  config.CacheConfig{Driver: "memory", TTL: time.Minute},
	}
	institutions := &stubInstitutions{}
	reports := &stubReports{}

	router := NewRouter(cfg, Dependencies{
		Database:      stubDatabase{},
		Cache:         cache.NewMemory(),
		Authenticator: auth.NewStaticTokens([]string{"secret"}),
		Institutions:  institutions,
		Metadata:      stubMetadata{},
		Reports:       reports,
	}, "test")
	return router, institutions, reports
}

func do(r *Router, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func TestRouter_AuthAsymmetry(t *testing.T) {
	router, institutions, _ := newTestRouter(t)

	for _, path := range []string{"/get-institution-trade", "/get-metadata-trade", "/get-reports-trade"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Token", w.Header().Get("WWW-Authenticate"), path)

		w = do(router, http.MethodGet, path, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = do(router, http.MethodGet, path, "secret")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, 1, institutions.calls)

	w := do(router, http.MethodGet, "/get-reports-companies-trade", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"sub_sector":"Banks","total_companies":47}]`, w.Body.String())
}

func TestRouter_CompaniesCached(t *testing.T) {
	router, _, reports := newTestRouter(t)

	first := do(router, http.MethodGet, "/get-reports-companies-trade", "")
	second := do(router, http.MethodGet, "/get-reports-companies-trade", "")

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, reports.companiesCalls)
}

func TestRouter_HealthRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/health/ready", "/api/health/detailed"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_Preflight(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/get-metadata-trade", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
