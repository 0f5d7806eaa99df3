package domain

import "context"

// IdentityCache is a best-effort write-through cache of user records keyed by
// (role, userID). It is advisory only: the store remains the source of truth,
// staleness is bounded by the TTL, and entries are invalidated on logout and
// on profile update.
type IdentityCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, role Role, userID string) (*User, error)
	Set(ctx context.Context, user *User) error
	Invalidate(ctx context.Context, role Role, userID string) error
}
