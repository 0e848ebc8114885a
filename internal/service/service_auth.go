// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/store"
	"github.com/mkarev/go-dataset-hub/internal/utils"
	"github.com/mkarev/go-dataset-hub/models"
)

type authService struct {
	logger         *logger.Logger
	userRepository store.UserRepository
	appConfig      config.App
}

// NewAuthService wires credential verification and token management on top
// of the user repository.
func NewAuthService(userRepository store.UserRepository, appConfig config.App, log *logger.Logger) AuthService {
	return &authService{
		logger:         log,
		userRepository: userRepository,
		appConfig:      appConfig,
	}
}

func (s *authService) AuthenticateUser(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		// Same error as a wrong password: the response must not reveal
		// whether the username exists.
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		return models.User{}, fmt.Errorf("authenticate user: %w", err)
	}

	if !utils.VerifyPassword(password, user.HashedPassword) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *authService) FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error) {
	user, err := s.userRepository.GetUserByAPIKey(ctx, apiKey)
	if err != nil {
		return models.User{}, fmt.Errorf("find user by api key: %w", err)
	}
	return user, nil
}

func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(
		s.appConfig.TokenIssuer,
		user.Username,
		s.appConfig.TokenDuration,
		s.appConfig.TokenSignKey,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("signing session token")
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.appConfig.TokenSignKey, s.appConfig.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
