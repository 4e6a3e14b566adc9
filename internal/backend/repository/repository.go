// Package repository defines the record store: the canonical set of user
// records and the operations that mutate it. Identifier and email uniqueness
// are enforced here so they hold no matter which service calls in.
package repository

import (
	"context"

	"github.com/Mystogan321/useradmin/internal/users"
)

// Repository is the single source of truth for user records. Implementations
// return full records including the credential; stripping it for public
// consumption is the service layer's job.
type Repository interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]users.User, error)

	// Get returns the record with the given id, or common.ErrNotFound.
	Get(ctx context.Context, id string) (users.User, error)

	// FindByEmail returns the record with the given email (exact match),
	// or common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (users.User, error)

	// Create appends a record. The caller supplies the id. Returns
	// common.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, u users.User) (users.User, error)

	// Update replaces the record with the same id. Returns
	// common.ErrNotFound for unknown ids and common.ErrDuplicateEmail when
	// the email belongs to a different record.
	Update(ctx context.Context, u users.User) (users.User, error)

	// Delete removes a record, or returns common.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes every record whose id is in ids. Unknown ids are
	// silently ignored. Returns the number of records removed.
	DeleteMany(ctx context.Context, ids []string) (int, error)
}
