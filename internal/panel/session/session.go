// Package session gates the panel behind authentication. A successful login
// persists a session marker and the auth token, so a restarted panel can
// restore the signed-in state without asking for credentials again.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/docstore"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/panel/client"
	"github.com/Mystogan321/useradmin/internal/users"
)

// State is the persisted session marker.
type State struct {
	User          users.PublicUser `json:"user"`
	Authenticated bool             `json:"isAuthenticated"`
}

// TokenVerifier checks a stored auth token and returns the user id it was
// issued for. A nil verifier disables the check.
type TokenVerifier func(token string) (string, error)

// Gate owns the authenticated-or-not state of the panel.
type Gate struct {
	client client.Client
	store  docstore.Store
	verify TokenVerifier
	log    logging.Logger

	state State
	token string
}

func NewGate(c client.Client, store docstore.Store, verify TokenVerifier, log logging.Logger) *Gate {
	return &Gate{client: c, store: store, verify: verify, log: log}
}

// Authenticated reports whether a user is currently signed in.
func (g *Gate) Authenticated() bool {
	return g.state.Authenticated
}

// User returns the signed-in user. Zero value when signed out.
func (g *Gate) User() users.PublicUser {
	return g.state.User
}

// Token returns the opaque auth token of the current session.
func (g *Gate) Token() string {
	return g.token
}

// Login authenticates against the backend and persists the session. Both
// documents are written before Login returns; a failure to persist fails the
// login so the in-memory and stored states never diverge.
func (g *Gate) Login(ctx context.Context, email, password string) (users.PublicUser, error) {
	u, token, err := g.client.Login(ctx, email, password)
	if err != nil {
		return users.PublicUser{}, err
	}

	state := State{User: u, Authenticated: true}
	doc, err := json.Marshal(state)
	if err != nil {
		return users.PublicUser{}, fmt.Errorf("%w: marshal session: %v", common.ErrInternal, err)
	}
	if err := g.store.Save(ctx, docstore.KeySession, doc); err != nil {
		return users.PublicUser{}, fmt.Errorf("persist session: %w", err)
	}
	if err := g.store.Save(ctx, docstore.KeyToken, []byte(token)); err != nil {
		return users.PublicUser{}, fmt.Errorf("persist token: %w", err)
	}

	g.state = state
	g.token = token
	g.log.Info(ctx, "signed in", "email", u.Email)
	return u, nil
}

// Logout signs out. The backend call is best effort: even when it fails the
// local session is cleared, so the panel never stays signed in against the
// user's wish.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.client.Logout(ctx); err != nil {
		g.log.Warn(ctx, "backend logout failed, clearing local session anyway", "error", err)
	}

	var firstErr error
	if err := g.store.Delete(ctx, docstore.KeySession); err != nil {
		firstErr = err
	}
	if err := g.store.Delete(ctx, docstore.KeyToken); err != nil && firstErr == nil {
		firstErr = err
	}

	g.state = State{}
	g.token = ""
	g.log.Info(ctx, "signed out")
	return firstErr
}

// Restore loads a previously persisted session. It returns false when no
// session is stored; a corrupt session document, an expired or tampered
// token, and a token issued for a different user are all discarded and
// treated the same way.
func (g *Gate) Restore(ctx context.Context) (bool, error) {
	doc, err := g.store.Load(ctx, docstore.KeySession)
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) {
			return false, nil
		}
		return false, fmt.Errorf("load session: %w", err)
	}

	var state State
	if err := json.Unmarshal(doc, &state); err != nil || !state.Authenticated {
		g.log.Warn(ctx, "discarding unusable stored session")
		g.discard(ctx)
		return false, nil
	}

	token, err := g.store.Load(ctx, docstore.KeyToken)
	if err != nil && !errors.Is(err, docstore.ErrNoDocument) {
		return false, fmt.Errorf("load token: %w", err)
	}

	if g.verify != nil {
		userID, err := g.verify(string(token))
		if err != nil || userID != state.User.ID {
			g.log.Warn(ctx, "discarding stored session with unverifiable token", "error", err)
			g.discard(ctx)
			return false, nil
		}
	}

	g.state = state
	g.token = string(token)
	g.log.Info(ctx, "session restored", "email", state.User.Email)
	return true, nil
}

func (g *Gate) discard(ctx context.Context) {
	_ = g.store.Delete(ctx, docstore.KeySession)
	_ = g.store.Delete(ctx, docstore.KeyToken)
}
