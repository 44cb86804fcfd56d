package ports

import "context"

// SignInLimiter throttles repeated failed sign-ins per username. The
// implementation decides the window and threshold; the auth service only
// reports outcomes and asks whether a username is currently blocked.
type SignInLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
