package service

import (
	"context"
	"errors"
	"time"

	"profiledash/internal/models"
)

// defaultCountDelay simulates the latency of the post-count step so the
// sequential-vs-parallel timing difference stays observable.
const defaultCountDelay = 100 * time.Millisecond

// ErrControlBusy is returned when a fetch for the same user is still in
// flight and its trigger control is therefore disabled.
var ErrControlBusy = errors.New("fetch already in flight for this user")

type ProfileService struct {
	api        Fetcher
	controls   Controls
	countDelay time.Duration
}

func NewProfileService(api Fetcher, controls Controls, countDelay time.Duration) *ProfileService {
	if countDelay <= 0 {
		countDelay = defaultCountDelay
	}
	return &ProfileService{api: api, controls: controls, countDelay: countDelay}
}

// FetchProfile runs the three-step chain with ordered suspension points:
// user, then that user's posts, then the delayed count. The first failure
// aborts the remaining steps. The trigger control is disabled at start and
// re-enabled unconditionally, on the error path included.
func (s *ProfileService) FetchProfile(ctx context.Context, id int) (models.Profile, error) {
	if !s.controls.Acquire(id) {
		return models.Profile{}, ErrControlBusy
	}
	defer s.controls.Release(id)
	return s.runPipeline(ctx, id)
}

// FetchProfileChained is the same chain expressed as composed steps, the
// way the then-chain original reads: each step a function from the previous
// success value, short-circuiting on error, with a finally hook for the
// control release.
func (s *ProfileService) FetchProfileChained(ctx context.Context, id int) (models.Profile, error) {
	if !s.controls.Acquire(id) {
		return models.Profile{}, ErrControlBusy
	}

	fetchUser := Step[int, models.User](func(ctx context.Context, id int) (models.User, error) {
		return s.api.FetchUser(ctx, id)
	})
	fetchPosts := Step[models.User, userPosts](func(ctx context.Context, u models.User) (userPosts, error) {
		posts, err := s.api.FetchUserPosts(ctx, u.ID)
		if err != nil {
			return userPosts{}, err
		}
		return userPosts{user: u, posts: posts}, nil
	})
	count := Step[userPosts, models.Profile](func(ctx context.Context, up userPosts) (models.Profile, error) {
		n, err := s.CountPosts(ctx, up.posts)
		if err != nil {
			return models.Profile{}, err
		}
		return models.Profile{
			User:      up.user,
			Posts:     up.posts,
			PostCount: n,
			FetchedAt: time.Now().UTC(),
		}, nil
	})

	chain := Finally(Then(Then(fetchUser, fetchPosts), count), func() {
		s.controls.Release(id)
	})
	return chain(ctx, id)
}

// CountPosts is the pure count behind a simulated delay. Cancelling the
// context aborts the wait.
func (s *ProfileService) CountPosts(ctx context.Context, posts []models.Post) (int, error) {
	t := time.NewTimer(s.countDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-t.C:
	}
	return len(posts), nil
}

// userPosts carries the first two step results into the count step.
type userPosts struct {
	user  models.User
	posts []models.Post
}

// runPipeline is the unguarded chain shared with the batch service, whose
// fan-out manages no per-user control.
func (s *ProfileService) runPipeline(ctx context.Context, id int) (models.Profile, error) {
	user, err := s.api.FetchUser(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	posts, err := s.api.FetchUserPosts(ctx, user.ID)
	if err != nil {
		return models.Profile{}, err
	}
	n, err := s.CountPosts(ctx, posts)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		User:      user,
		Posts:     posts,
		PostCount: n,
		FetchedAt: time.Now().UTC(),
	}, nil
}
