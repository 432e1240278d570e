package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/domain/user"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/pkg/password"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("login account not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("login account inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrEmailTaken           = errs.Sentinel("email is already registered", errs.ErrConflict)
)

type LoginResult struct {
	UserID     uuid.UUID
	TokenPair  *TokenPair
	IsReplayed bool
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.issueTokens(userReadModel.ID, userReadModel.Role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:     userReadModel.ID,
		TokenPair:  tokenPair,
		IsReplayed: false,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateTokenOfType(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The account may have been deactivated since the token was issued.
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(userReadModel.ID, userReadModel.Role)
}

// Register creates an active account and returns its id.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	credentials, role, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(credentials.Email(), hash, role, req.FullName)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Users().Create(ctx, tx.DB(), u)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, roleName string) (*TokenPair, error) {
	role, err := user.NewRole(roleName)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch so emails cannot be enumerated.
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
