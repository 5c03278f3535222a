package service

import (
	"context"
	"time"

	"profiledash/internal/models"
)

// Fetcher is the remote API surface the orchestration layer depends on.
// Satisfied by jsonapi.Client; stubbed in tests.
type Fetcher interface {
	FetchUser(ctx context.Context, id int) (models.User, error)
	FetchUserPosts(ctx context.Context, userID int) ([]models.Post, error)
}

// Profiles fetches one user's combined profile. The two fetch methods
// demonstrate the same three-step dependency chain in the two sequential
// styles: ordered awaits and an explicitly composed then-chain.
type Profiles interface {
	FetchProfile(ctx context.Context, id int) (models.Profile, error)
	FetchProfileChained(ctx context.Context, id int) (models.Profile, error)
	CountPosts(ctx context.Context, posts []models.Post) (int, error)
}

// Batch runs one pipeline per id concurrently and joins them fail-fast.
type Batch interface {
	FetchSummaries(ctx context.Context, ids []int) ([]models.ProfileSummary, error)
}

// Region is the dashboard output region: replace-all semantics, latest wins.
type Region interface {
	Replace(html string)
	Snapshot() models.RegionSnapshot
}

// Controls exposes the per-user trigger-control state.
type Controls interface {
	Acquire(id int) bool
	Release(id int)
	Disabled(id int) bool
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Profiles
	Batch
	Region
	Controls
}

// NewService wires the remote client into the concrete services. countDelay
// is the simulated latency of the post-count step; <=0 uses the default.
func NewService(api Fetcher, countDelay time.Duration) *Service {
	controls := NewControlSet()
	profiles := NewProfileService(api, controls, countDelay)
	return &Service{
		Profiles: profiles,
		Batch:    NewBatchService(profiles),
		Region:   NewRegionService(),
		Controls: controls,
	}
}
