package service

import (
	"sync"
	"time"

	"profiledash/internal/models"
)

// RegionService holds the dashboard output region in memory. Replace swaps
// the entire content, matching the source page's innerHTML replacement;
// nothing is persisted.
type RegionService struct {
	mu   sync.RWMutex
	snap models.RegionSnapshot
}

func NewRegionService() *RegionService {
	return &RegionService{}
}

// Replace sets the region content and stamps the update time.
func (s *RegionService) Replace(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = models.RegionSnapshot{
		HTML:      html,
		UpdatedAt: time.Now().UTC(),
	}
}

// Snapshot returns the current region content. UpdatedAt is zero until the
// first Replace.
func (s *RegionService) Snapshot() models.RegionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
