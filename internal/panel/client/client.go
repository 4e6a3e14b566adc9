// Package client defines the transport collaborator the panel talks to, and
// a local in-process implementation that stands in for a real network
// backend.
package client

import (
	"context"

	"github.com/Mystogan321/useradmin/internal/users"
)

// Client is the full collaborator contract consumed by the panel. All calls
// may suspend (they model network latency) and honor ctx cancellation.
type Client interface {
	ListUsers(ctx context.Context) ([]users.PublicUser, error)
	GetUser(ctx context.Context, id string) (users.PublicUser, error)
	CreateUser(ctx context.Context, in users.Input) (users.PublicUser, error)
	UpdateUser(ctx context.Context, id string, in users.Input) (users.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteUsers(ctx context.Context, ids []string) error
	Login(ctx context.Context, email, password string) (users.PublicUser, string, error)
	Logout(ctx context.Context) error
	Close() error
}
