// Package services contains the backend business logic: user CRUD with
// validation on top of the record store, and authentication.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mystogan321/useradmin/internal/backend/repository"
	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/users"
)

// UserService implements the record operations exposed to the panel. Every
// read path returns public records only; the credential never leaves this
// package.
type UserService struct {
	repo repository.Repository
	log  logging.Logger
}

func NewUserService(repo repository.Repository, log logging.Logger) *UserService {
	return &UserService{repo: repo, log: log.With("service", "users")}
}

// List returns all records in insertion order, credential stripped.
func (s *UserService) List(ctx context.Context) ([]users.PublicUser, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	public := make([]users.PublicUser, 0, len(all))
	for _, u := range all {
		public = append(public, u.Public())
	}
	return public, nil
}

// Get returns a single record by id.
func (s *UserService) Get(ctx context.Context, id string) (users.PublicUser, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return users.PublicUser{}, common.ErrNotFound
		}
		return users.PublicUser{}, fmt.Errorf("getting user %s: %w", id, err)
	}
	return u.Public(), nil
}

// Create validates the input, assigns a fresh identifier and appends the
// record. The email must not be taken.
func (s *UserService) Create(ctx context.Context, in users.Input) (users.PublicUser, error) {
	if err := users.ValidateInput(in, true); err != nil {
		return users.PublicUser{}, err
	}

	u := users.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Role:     in.Role,
		DOB:      in.DOB,
		Gender:   in.Gender,
		Status:   in.Status,
		Password: in.Password,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return users.PublicUser{}, err
	}

	s.log.Info(ctx, "user created", "id", created.ID)
	return created.Public(), nil
}

// Update replaces the caller-supplied fields of an existing record. The
// identifier is immutable; an empty password keeps the stored credential.
func (s *UserService) Update(ctx context.Context, id string, in users.Input) (users.PublicUser, error) {
	if err := users.ValidateInput(in, false); err != nil {
		return users.PublicUser{}, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return users.PublicUser{}, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Role = in.Role
	existing.DOB = in.DOB
	existing.Gender = in.Gender
	existing.Status = in.Status
	if in.Password != "" {
		existing.Password = in.Password
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return users.PublicUser{}, err
	}

	s.log.Info(ctx, "user updated", "id", id)
	return updated.Public(), nil
}

// Delete removes a single record.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

// DeleteMany removes every record whose id is listed. Ids that do not exist
// are ignored; the operation never fails on partial matches.
func (s *UserService) DeleteMany(ctx context.Context, ids []string) error {
	removed, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return err
	}
	s.log.Info(ctx, "users deleted", "requested", len(ids), "removed", removed)
	return nil
}
