// Package coordinator drives mutations against the backend and folds
// confirmed results into the view. The panel never mutates the view
// optimistically: a record changes locally only after the client call
// succeeded.
package coordinator

import (
	"context"
	"fmt"
	"sync"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/panel/client"
	"github.com/Mystogan321/useradmin/internal/panel/view"
	"github.com/Mystogan321/useradmin/internal/users"
)

// OpState is the lifecycle of the most recent operation.
type OpState string

const (
	Idle      OpState = "idle"
	Pending   OpState = "pending"
	Fulfilled OpState = "fulfilled"
	Rejected  OpState = "rejected"
)

// Coordinator serializes record mutations. While an operation on a record is
// in flight, a second operation touching the same record is rejected rather
// than queued.
type Coordinator struct {
	client client.Client
	view   *view.Controller
	log    logging.Logger

	mu       sync.Mutex
	state    OpState
	lastErr  error
	inflight map[string]struct{}
}

func New(c client.Client, v *view.Controller, log logging.Logger) *Coordinator {
	return &Coordinator{
		client:   c,
		view:     v,
		log:      log,
		state:    Idle,
		inflight: make(map[string]struct{}),
	}
}

// begin marks ids as in flight and moves the coordinator to Pending. If any
// id already has an operation in flight the whole call is rejected.
func (c *Coordinator) begin(ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		if _, ok := c.inflight[id]; ok {
			return fmt.Errorf("%w: operation already in flight for record %s", common.ErrConflict, id)
		}
	}
	for _, id := range ids {
		c.inflight[id] = struct{}{}
	}
	c.state = Pending
	c.lastErr = nil
	return nil
}

// finish releases ids and records the outcome.
func (c *Coordinator) finish(err error, ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		delete(c.inflight, id)
	}
	c.lastErr = err
	if err != nil {
		c.state = Rejected
		return
	}
	c.state = Fulfilled
}

// State reports the lifecycle of the most recent operation.
func (c *Coordinator) State() OpState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error of the most recent operation, nil if it succeeded.
func (c *Coordinator) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Busy reports whether any operation is currently in flight.
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight) > 0
}

// Refresh replaces the view snapshot with the backend's current records.
func (c *Coordinator) Refresh(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	records, err := c.client.ListUsers(ctx)
	c.finish(err)
	if err != nil {
		c.log.Error(ctx, "refresh failed", "error", err)
		return err
	}
	c.view.SetRecords(records)
	return nil
}

// Create sends a new record to the backend and appends the confirmed result.
func (c *Coordinator) Create(ctx context.Context, in users.Input) (users.PublicUser, error) {
	if err := c.begin(); err != nil {
		return users.PublicUser{}, err
	}
	created, err := c.client.CreateUser(ctx, in)
	c.finish(err)
	if err != nil {
		c.log.Error(ctx, "create failed", "email", in.Email, "error", err)
		return users.PublicUser{}, err
	}
	c.view.ApplyCreate(created)
	c.log.Info(ctx, "user created", "id", created.ID)
	return created, nil
}

// Update sends changed fields to the backend and replaces the local record
// with the confirmed result.
func (c *Coordinator) Update(ctx context.Context, id string, in users.Input) (users.PublicUser, error) {
	if err := c.begin(id); err != nil {
		return users.PublicUser{}, err
	}
	updated, err := c.client.UpdateUser(ctx, id, in)
	c.finish(err, id)
	if err != nil {
		c.log.Error(ctx, "update failed", "id", id, "error", err)
		return users.PublicUser{}, err
	}
	c.view.ApplyUpdate(updated)
	c.log.Info(ctx, "user updated", "id", id)
	return updated, nil
}

// Delete removes a single record after backend confirmation.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	if err := c.begin(id); err != nil {
		return err
	}
	err := c.client.DeleteUser(ctx, id)
	c.finish(err, id)
	if err != nil {
		c.log.Error(ctx, "delete failed", "id", id, "error", err)
		return err
	}
	c.view.ApplyDelete(id)
	c.log.Info(ctx, "user deleted", "id", id)
	return nil
}

// DeleteMany removes a batch of records after backend confirmation. The
// whole batch is one operation: it succeeds or fails together.
func (c *Coordinator) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.begin(ids...); err != nil {
		return err
	}
	err := c.client.DeleteUsers(ctx, ids)
	c.finish(err, ids...)
	if err != nil {
		c.log.Error(ctx, "bulk delete failed", "count", len(ids), "error", err)
		return err
	}
	c.view.ApplyDeleteMany(ids)
	c.log.Info(ctx, "users deleted", "count", len(ids))
	return nil
}

// DeleteSelected removes every record currently selected in the view.
func (c *Coordinator) DeleteSelected(ctx context.Context) error {
	return c.DeleteMany(ctx, c.view.SelectedIDs())
}
