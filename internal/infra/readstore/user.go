package readstore

import (
	"context"

	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// CredentialsByEmail is for the login path only; the hash never reaches a
// query view.
func (r *UserReadStore) CredentialsByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, name, role, is_active
		FROM users
		WHERE email = $1`

	var s shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, email).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.Name, &s.Role, &s.IsActive)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &s, nil
}
