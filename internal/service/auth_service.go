package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mergington-high/activities-api/internal/dto"
)

// ErrInvalidRole indicates a login request for an unrecognised role.
var ErrInvalidRole = errors.New("invalid role")

// AuthService resolves opaque bearer tokens to roles using a fixed table and
// serves the demo login endpoint. It is a stand-in for a real identity
// system: no expiry, no per-user tokens, no revocation.
type AuthService interface {
	ResolveRole(token string) string
	Login(role string) (dto.LoginResponse, error)
}

type authService struct {
	tokens map[string]string
	logger zerolog.Logger
}

// NewAuthService builds the resolver from an immutable token -> role table.
// The table is copied so later mutation of the input cannot change behaviour.
func NewAuthService(tokens map[string]string, logger zerolog.Logger) AuthService {
	table := make(map[string]string, len(tokens))
	for token, role := range tokens {
		token = strings.TrimSpace(token)
		role = strings.ToLower(strings.TrimSpace(role))
		if token != "" && role != "" {
			table[token] = role
		}
	}

	return &authService{
		tokens: table,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

// ResolveRole returns the role bound to the token, or "" when the token is
// absent or unknown. An unknown token is not an error.
func (s *authService) ResolveRole(token string) string {
	return s.tokens[strings.TrimSpace(token)]
}

// Login returns a static token mapping to the requested role. With several
// tokens per role the lexicographically first one is returned so responses
// stay deterministic.
func (s *authService) Login(role string) (dto.LoginResponse, error) {
	role = strings.ToLower(strings.TrimSpace(role))

	var matches []string
	for token, mapped := range s.tokens {
		if mapped == role {
			matches = append(matches, token)
		}
	}
	if len(matches) == 0 {
		return dto.LoginResponse{}, ErrInvalidRole
	}

	sort.Strings(matches)
	return dto.LoginResponse{Token: matches[0], Role: role}, nil
}
