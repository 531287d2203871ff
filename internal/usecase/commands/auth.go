package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"agora-server/internal/domain/user"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/pkg/jwt"
	"agora-server/internal/pkg/password"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyUsed     = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	SignUp(ctx context.Context, req reqdto.SignUpRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	jwtService  *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userQueries queries.UserQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		userQueries: userQueries,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, req reqdto.SignUpRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Admin accounts are provisioned out of band, never via signup.
	role := user.RoleUser
	if req.Role != "" {
		role, err = user.NewRole(req.Role)
		if err != nil || role == user.RoleAdmin {
			return nil, ErrDomainValidation
		}
	}

	hashed, err := password.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(credentials.Email(), hashed, req.Name, role)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tokenPair, err := a.issueTokens(newUser.ID(), role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: newUser.ID(), TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snapshot, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(snapshot.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snapshot.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snapshot.ID, "error", updateErr.Error())
			// Not critical, login already succeeded
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", snapshot.ID, "error", err.Error())
	}

	return &LoginResult{UserID: snapshot.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	view, err := a.userQueries.GetAuthorizedUser(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*shared.UserSnapshot, error) {
	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(snapshot.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return snapshot, nil
}
