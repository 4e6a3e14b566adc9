package coordinator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/panel/view"
	"github.com/Mystogan321/useradmin/internal/users"
)

// fakeClient is a scriptable stand-in for the transport client.
type fakeClient struct {
	mu      sync.Mutex
	block   chan struct{} // when set, mutation calls wait on it
	failure error

	records []users.PublicUser
	deleted []string
}

func newFakeClient() *fakeClient {
	seed := users.Seed()
	records := make([]users.PublicUser, 0, len(seed))
	for _, u := range seed {
		records = append(records, u.Public())
	}
	return &fakeClient{records: records}
}

func (f *fakeClient) wait(ctx context.Context) error {
	f.mu.Lock()
	block := f.block
	failure := f.failure
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return failure
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]users.PublicUser, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]users.PublicUser, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (users.PublicUser, error) {
	if err := f.wait(ctx); err != nil {
		return users.PublicUser{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.records {
		if u.ID == id {
			return u, nil
		}
	}
	return users.PublicUser{}, common.ErrNotFound
}

func (f *fakeClient) CreateUser(ctx context.Context, in users.Input) (users.PublicUser, error) {
	if err := f.wait(ctx); err != nil {
		return users.PublicUser{}, err
	}
	u := users.PublicUser{ID: "fake-id", Name: in.Name, Email: in.Email, Role: in.Role, DOB: in.DOB, Gender: in.Gender, Status: in.Status}
	f.mu.Lock()
	f.records = append(f.records, u)
	f.mu.Unlock()
	return u, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, in users.Input) (users.PublicUser, error) {
	if err := f.wait(ctx); err != nil {
		return users.PublicUser{}, err
	}
	return users.PublicUser{ID: id, Name: in.Name, Email: in.Email, Role: in.Role, DOB: in.DOB, Gender: in.Gender, Status: in.Status}, nil
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeClient) DeleteUsers(ctx context.Context, ids []string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, ids...)
	f.mu.Unlock()
	return nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (users.PublicUser, string, error) {
	return users.PublicUser{}, "", common.ErrInvalidCredentials
}

func (f *fakeClient) Logout(ctx context.Context) error { return nil }
func (f *fakeClient) Close() error                     { return nil }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newCoordinator(fc *fakeClient) (*Coordinator, *view.Controller) {
	v := view.NewController(10)
	return New(fc, v, testLogger()), v
}

func TestRefreshPopulatesView(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, v.View(), 20)
	assert.Equal(t, Fulfilled, c.State())
	assert.NoError(t, c.Err())
}

func TestCreateAppliesConfirmedRecord(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)
	require.NoError(t, c.Refresh(context.Background()))

	created, err := c.Create(context.Background(), users.Input{
		Name: "Zed Newman", Email: "zed@gmail.com",
		Role: users.RoleCustomer, Status: users.StatusActive, Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "fake-id", created.ID)
	assert.Len(t, v.View(), 21)
	assert.Equal(t, Fulfilled, c.State())
}

func TestFailedMutationLeavesViewUntouched(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)
	require.NoError(t, c.Refresh(context.Background()))

	fc.mu.Lock()
	fc.failure = common.ErrDuplicateEmail
	fc.mu.Unlock()

	_, err := c.Create(context.Background(), users.Input{Name: "X", Email: "admin@gmail.com"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
	assert.Len(t, v.View(), 20, "rejected mutations must not touch the local records")
	assert.Equal(t, Rejected, c.State())
	assert.ErrorIs(t, c.Err(), common.ErrDuplicateEmail)
}

func TestDeleteRemovesRecordAndSelection(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)
	require.NoError(t, c.Refresh(context.Background()))
	v.ToggleSelect("4")

	require.NoError(t, c.Delete(context.Background(), "4"))
	assert.Len(t, v.View(), 19)
	assert.Empty(t, v.SelectedIDs())
	assert.Equal(t, []string{"4"}, fc.deleted)
}

func TestDeleteSelectedSendsOneBatch(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)
	require.NoError(t, c.Refresh(context.Background()))
	v.ToggleSelect("3")
	v.ToggleSelect("7")
	v.ToggleSelect("11")

	require.NoError(t, c.DeleteSelected(context.Background()))
	assert.Len(t, v.View(), 17)
	assert.Empty(t, v.SelectedIDs())
	assert.ElementsMatch(t, []string{"3", "7", "11"}, fc.deleted)
}

func TestDeleteManyEmptyIsNoop(t *testing.T) {
	fc := newFakeClient()
	c, _ := newCoordinator(fc)

	require.NoError(t, c.DeleteMany(context.Background(), nil))
	assert.Empty(t, fc.deleted)
	assert.Equal(t, Idle, c.State())
}

func TestOverlappingOperationRejected(t *testing.T) {
	fc := newFakeClient()
	c, v := newCoordinator(fc)
	require.NoError(t, c.Refresh(context.Background()))

	block := make(chan struct{})
	fc.mu.Lock()
	fc.block = block
	fc.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- c.Delete(context.Background(), "4")
	}()

	// wait until the first delete is in flight
	require.Eventually(t, c.Busy, time.Second, time.Millisecond)

	_, err := c.Update(context.Background(), "4", users.Input{Name: "Jane"})
	assert.ErrorIs(t, err, common.ErrConflict)

	// a different record is not blocked
	require.NoError(t, func() error {
		fc.mu.Lock()
		fc.block = nil
		fc.mu.Unlock()
		return nil
	}())
	require.NoError(t, c.Delete(context.Background(), "5"))

	close(block)
	require.NoError(t, <-done)
	assert.Len(t, v.View(), 18)
}

func TestStateTransitions(t *testing.T) {
	fc := newFakeClient()
	c, _ := newCoordinator(fc)
	assert.Equal(t, Idle, c.State())

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, Fulfilled, c.State())

	fc.mu.Lock()
	fc.failure = errors.New("boom")
	fc.mu.Unlock()
	require.Error(t, c.Refresh(context.Background()))
	assert.Equal(t, Rejected, c.State())

	fc.mu.Lock()
	fc.failure = nil
	fc.mu.Unlock()
	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, Fulfilled, c.State())
	assert.NoError(t, c.Err())
}
