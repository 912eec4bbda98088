package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store"
	"github.com/ougirez/equipviz/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) SignupUser(ctx context.Context, request *domain.SignupUserRequest) (*domain.AuthResponse, error) {
	if _, err := svc.store.GetUserByUsername(ctx, request.Username); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	user := &domain.User{
		Username: request.Username,
		Email:    request.Email,
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("store.CreateUser: %w", err)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) LoginUser(ctx context.Context, request *domain.LoginUserRequest) (*domain.AuthResponse, error) {
	user, err := svc.store.GetUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return svc.store.GetUserByID(ctx, userID)
}
