// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-adv-board/internal/logger"
	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/internal/utils"
	"github.com/MKhiriev/go-adv-board/models"
)

const basicScheme = "Basic"

// authService is the concrete implementation of AuthService.
// It stores and compares MD5 password digests through a UserRepository.
type authService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
// The returned service holds no mutable state and is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser hashes the password and delegates persistence to the
// UserRepository. req is expected to be validated already.
//
// A taken email is reported as a wrapped store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.CreateUserRequest) (int64, error) {
	log := logger.FromContext(ctx)

	id, err := a.userRepository.CreateUser(ctx, models.User{
		Email:   req.Email,
		PwdHash: utils.HashPassword(req.Password),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return 0, fmt.Errorf("user creation ended with error: %w", err)
	}

	return id, nil
}

// Authenticate parses a Basic "Authorization" header, looks the login up
// as an email and compares password digests.
//
// Malformed headers, unknown logins and wrong passwords all yield an error
// wrapping ErrUnauthenticated. Any other error comes from the store.
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (models.User, error) {
	log := logger.FromContext(ctx)

	login, password, err := parseBasicCredentials(authorizationHeader)
	if err != nil {
		log.Debug().Err(err).Msg("rejected `Authorization` header")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("login", login).Msg(errUnknownLogin.Error())
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, errUnknownLogin)
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.PasswordMatches(password, user.PwdHash) {
		log.Debug().Int64("id", user.ID).Msg(errWrongPassword.Error())
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, errWrongPassword)
	}

	return user, nil
}

// parseBasicCredentials extracts login and password from a header of the
// form "Basic base64(login:password)". The password may contain colons.
func parseBasicCredentials(header string) (login, password string, err error) {
	if header == "" {
		return "", "", errNoAuthorizationHeader
	}

	parts := strings.Fields(header)
	if len(parts) < 2 || parts[0] != basicScheme {
		return "", "", errNotBasicScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", errInvalidBase64, err)
	}
	if !utf8.Valid(decoded) {
		return "", "", errInvalidUTF8
	}

	login, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", errNoCredentialSeparator
	}
	if login == "" {
		return "", "", errEmptyLogin
	}

	return login, password, nil
}
