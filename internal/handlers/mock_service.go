package handlers

import (
	"context"

	"profiledash/internal/models"
	"profiledash/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockProfiles struct {
	profile models.Profile
	err     error

	lastID       int
	fetchCalls   int
	chainedCalls int
}

func (m *mockProfiles) FetchProfile(ctx context.Context, id int) (models.Profile, error) {
	m.fetchCalls++
	m.lastID = id
	return m.profile, m.err
}

func (m *mockProfiles) FetchProfileChained(ctx context.Context, id int) (models.Profile, error) {
	m.chainedCalls++
	m.lastID = id
	return m.profile, m.err
}

func (m *mockProfiles) CountPosts(ctx context.Context, posts []models.Post) (int, error) {
	return len(posts), nil
}

type mockBatch struct {
	summaries []models.ProfileSummary
	err       error

	lastIDs []int
	calls   int
}

func (m *mockBatch) FetchSummaries(ctx context.Context, ids []int) ([]models.ProfileSummary, error) {
	m.calls++
	m.lastIDs = ids
	if m.err != nil {
		return nil, m.err
	}
	return m.summaries, nil
}

type mockRegion struct {
	snap     models.RegionSnapshot
	replaced []string
}

func (m *mockRegion) Replace(html string) {
	m.replaced = append(m.replaced, html)
	m.snap.HTML = html
}

func (m *mockRegion) Snapshot() models.RegionSnapshot { return m.snap }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterStatic(s, "")
}

func newTestRouterStatic(s *service.Service, staticDir string) *gin.Engine {
	h := NewHandler(s, nil, staticDir)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
