package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/docstore"
	"github.com/Mystogan321/useradmin/internal/users"
)

func newRepo(t *testing.T) (*DocumentRepository, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	r, err := NewDocumentRepository(context.Background(), store)
	require.NoError(t, err)
	return r, store
}

func storedUsers(t *testing.T, store docstore.Store) []users.User {
	t.Helper()
	doc, err := store.Load(context.Background(), docstore.KeyUsers)
	require.NoError(t, err)
	var all []users.User
	require.NoError(t, json.Unmarshal(doc, &all))
	return all
}

func TestNewDocumentRepository_SeedsEmptyStore(t *testing.T) {
	r, store := newRepo(t)

	all, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 20)
	assert.Equal(t, "1", all[0].ID)
	assert.Len(t, storedUsers(t, store), 20)
}

func TestNewDocumentRepository_KeepsExistingDocument(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	doc, err := json.Marshal([]users.User{{ID: "x", Name: "Solo", Email: "solo@example.com", Role: users.RoleAdmin, Status: users.StatusActive, Password: "pw"}})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, docstore.KeyUsers, doc))

	r, err := NewDocumentRepository(ctx, store)
	require.NoError(t, err)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "x", all[0].ID)
}

func TestGet(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	u, err := r.Get(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", u.Name)

	_, err = r.Get(ctx, "999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFindByEmail_ExactMatch(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	u, err := r.FindByEmail(ctx, "admin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	// no case folding on the auth path
	_, err = r.FindByEmail(ctx, "Admin@gmail.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, users.User{ID: "n1", Name: "Dup", Email: "admin@gmail.com", Role: users.RoleCustomer, Status: users.StatusActive, Password: "pw"})
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20, "store length unchanged after rejected create")
}

func TestCreate_AppendsAndPersists(t *testing.T) {
	r, store := newRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, users.User{ID: "n1", Name: "New", Email: "new@example.com", Role: users.RoleCustomer, Status: users.StatusActive, Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)

	stored := storedUsers(t, store)
	require.Len(t, stored, 21)
	assert.Equal(t, "n1", stored[20].ID, "new record appended at the end")
}

func TestUpdate(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	u, err := r.Get(ctx, "4")
	require.NoError(t, err)
	u.Name = "Jane Renamed"

	updated, err := r.Update(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "Jane Renamed", updated.Name)

	// unknown id
	_, err = r.Update(ctx, users.User{ID: "999", Email: "ghost@example.com"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	// email of a different record
	u.Email = "admin@gmail.com"
	_, err = r.Update(ctx, u)
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	// keeping one's own email is fine
	u, err = r.Get(ctx, "4")
	require.NoError(t, err)
	_, err = r.Update(ctx, u)
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "4"))
	_, err := r.Get(ctx, "4")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, "4"), common.ErrNotFound)
}

func TestDeleteMany_IgnoresUnknownIDs(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	removed, err := r.DeleteMany(ctx, []string{"3", "7", "11", "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 17)
}

func TestDeleteMany_Empty(t *testing.T) {
	r, _ := newRepo(t)

	removed, err := r.DeleteMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
