package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Mystogan321/useradmin/internal/backend/services"
	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/users"
)

// LocalClient implements Client against the in-process backend services and
// simulates transport latency with a fixed delay before every call. It is
// the stand-in for a real HTTP client; there is no server anywhere.
type LocalClient struct {
	users   *services.UserService
	auth    *services.AuthService
	latency time.Duration
}

func NewLocalClient(userSvc *services.UserService, authSvc *services.AuthService, latency time.Duration) *LocalClient {
	return &LocalClient{users: userSvc, auth: authSvc, latency: latency}
}

// delay blocks for the configured artificial latency. A cancelled context
// surfaces as a transport error, the same way an aborted request would.
func (c *LocalClient) delay(ctx context.Context) error {
	if c.latency <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", common.ErrTransport, err)
		}
		return nil
	}

	t := time.NewTimer(c.latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", common.ErrTransport, ctx.Err())
	}
}

func (c *LocalClient) ListUsers(ctx context.Context) ([]users.PublicUser, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.users.List(ctx)
}

func (c *LocalClient) GetUser(ctx context.Context, id string) (users.PublicUser, error) {
	if err := c.delay(ctx); err != nil {
		return users.PublicUser{}, err
	}
	return c.users.Get(ctx, id)
}

func (c *LocalClient) CreateUser(ctx context.Context, in users.Input) (users.PublicUser, error) {
	if err := c.delay(ctx); err != nil {
		return users.PublicUser{}, err
	}
	return c.users.Create(ctx, in)
}

func (c *LocalClient) UpdateUser(ctx context.Context, id string, in users.Input) (users.PublicUser, error) {
	if err := c.delay(ctx); err != nil {
		return users.PublicUser{}, err
	}
	return c.users.Update(ctx, id, in)
}

func (c *LocalClient) DeleteUser(ctx context.Context, id string) error {
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.users.Delete(ctx, id)
}

func (c *LocalClient) DeleteUsers(ctx context.Context, ids []string) error {
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.users.DeleteMany(ctx, ids)
}

func (c *LocalClient) Login(ctx context.Context, email, password string) (users.PublicUser, string, error) {
	if err := c.delay(ctx); err != nil {
		return users.PublicUser{}, "", err
	}
	return c.auth.Login(ctx, email, password)
}

func (c *LocalClient) Logout(ctx context.Context) error {
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.auth.Logout(ctx)
}

func (c *LocalClient) Close() error {
	return nil
}
