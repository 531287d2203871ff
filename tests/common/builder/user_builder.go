//go:build unit || e2e

package builder

import (
	"agora-server/internal/domain/user"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Name     string
	Role     user.Role
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "taro@example.com",
		Password: "password123",
		Name:     "Taro Yamada",
		Role:     user.RoleUser,
		IsActive: true,
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) BuildSignUpRequestDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Email:    b.Email,
		Password: b.Password,
		Name:     b.Name,
		Role:     b.Role.String(),
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildViewQuery() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Name:     b.Name,
		Role:     b.Role.String(),
		IsActive: b.IsActive,
	}
}
