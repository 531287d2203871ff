package repository

import (
	"context"

	"agora-server/internal/domain/user"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Name(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users SET last_login_at = now(), updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
