package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"profiledash/internal/models"
)

// BatchService fans one pipeline out per requested id and joins the results
// fail-fast: the first pipeline error fails the whole batch and no partial
// results are returned. Siblings still in flight are cancelled through the
// group context, which goes slightly beyond the original page (it only
// stopped waiting).
type BatchService struct {
	profiles *ProfileService
}

func NewBatchService(profiles *ProfileService) *BatchService {
	return &BatchService{profiles: profiles}
}

// FetchSummaries returns one summary per id, in input order regardless of
// which pipeline finishes first. Each pipeline owns its slot in the result
// slice exclusively, so no locking is needed.
func (s *BatchService) FetchSummaries(ctx context.Context, ids []int) ([]models.ProfileSummary, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := make([]models.ProfileSummary, len(ids))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := s.profiles.runPipeline(gctx, id)
			if err != nil {
				return err
			}
			out[i] = models.ProfileSummary{
				Name:      p.User.Name,
				PostCount: p.PostCount,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
