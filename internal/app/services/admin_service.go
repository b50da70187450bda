package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
	"github.com/networknexus/nexushub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AdminCredentials are the configured admin username and bcrypt password hash
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AdminService authenticates the platform administrator
type AdminService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
}

type adminServiceImpl struct {
	credentials AdminCredentials
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(credentials AdminCredentials, jwtService *auth.JWTService, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login checks the credentials and issues an admin access token
func (s *adminServiceImpl) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	if s.credentials.PasswordHash == "" {
		s.logger.Warn().Msg("Admin login attempted but no admin password hash is configured")
		return nil, apperrors.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1
	passOK := auth.CheckPassword(s.credentials.PasswordHash, password)
	if !userOK || !passOK {
		s.logger.Warn().Str("username", username).Msg("Failed admin login")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(s.credentials.Username, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error generating admin token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
