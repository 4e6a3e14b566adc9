package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/docstore"
	"github.com/Mystogan321/useradmin/internal/users"
)

// DocumentRepository keeps the whole user collection as one JSON document in
// a docstore, reloading it on every operation and saving it back after every
// mutation. A mutex serializes operations so a save always reflects exactly
// one mutation.
type DocumentRepository struct {
	mu    sync.Mutex
	store docstore.Store
}

// NewDocumentRepository wraps the given store. If no users document exists
// yet, the store is seeded with the default dataset.
func NewDocumentRepository(ctx context.Context, store docstore.Store) (*DocumentRepository, error) {
	r := &DocumentRepository{store: store}

	_, err := store.Load(ctx, docstore.KeyUsers)
	if errors.Is(err, docstore.ErrNoDocument) {
		if err := r.save(ctx, users.Seed()); err != nil {
			return nil, fmt.Errorf("seeding users: %w", err)
		}
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return r, nil
}

func (r *DocumentRepository) load(ctx context.Context) ([]users.User, error) {
	doc, err := r.store.Load(ctx, docstore.KeyUsers)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading users: %w", err)
	}

	var all []users.User
	if err := json.Unmarshal(doc, &all); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return all, nil
}

func (r *DocumentRepository) save(ctx context.Context, all []users.User) error {
	doc, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}
	if err := r.store.Save(ctx, docstore.KeyUsers, doc); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range all {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, common.ErrNotFound
}

func (r *DocumentRepository) FindByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, common.ErrNotFound
}

func (r *DocumentRepository) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, existing := range all {
		if existing.Email == u.Email {
			return users.User{}, common.ErrDuplicateEmail
		}
		if existing.ID == u.ID {
			return users.User{}, fmt.Errorf("%w: id %s already present", common.ErrInternal, u.ID)
		}
	}

	all = append(all, u)
	if err := r.save(ctx, all); err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *DocumentRepository) Update(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return users.User{}, err
	}

	idx := -1
	for i, existing := range all {
		if existing.ID == u.ID {
			idx = i
			continue
		}
		// email must not be taken by a different record
		if existing.Email == u.Email {
			return users.User{}, common.ErrDuplicateEmail
		}
	}
	if idx == -1 {
		return users.User{}, common.ErrNotFound
	}

	all[idx] = u
	if err := r.save(ctx, all); err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, u := range all {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(all) {
		return common.ErrNotFound
	}
	return r.save(ctx, kept)
}

func (r *DocumentRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]users.User, 0, len(all))
	for _, u := range all {
		if _, ok := drop[u.ID]; !ok {
			kept = append(kept, u)
		}
	}

	removed := len(all) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.save(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
