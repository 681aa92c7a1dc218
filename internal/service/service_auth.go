package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/silabos-admin/internal/config"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies HS256 session tokens and looks their subject up in the
// read-only user directory.
type authService struct {
	// userRepository is the user directory.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// CreateToken issues a signed session token for principal.
func (a *authService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, principal.ExternalID, principal.TenantID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.ID).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer and expiry of tokenString.
//
// Returns:
//   - ErrTokenIsExpired when the token is otherwise valid but expired.
//   - ErrTokenIsExpiredOrInvalid on any other verification failure.
//   - ErrMissingIdentityClaims when "oid" or "tid" is empty.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	if claims.ExternalID == "" || claims.TenantID == "" {
		return models.Claims{}, ErrMissingIdentityClaims
	}

	return claims, nil
}

// ResolvePrincipal looks the token identity up in the user directory.
//
// Returns ErrPrincipalNotFound when the directory has no such user and
// ErrDirectoryLookup (wrapping the storage error) when the lookup failed.
func (a *authService) ResolvePrincipal(ctx context.Context, claims models.Claims) (models.Principal, error) {
	log := logger.FromContext(ctx)

	principal, err := a.userRepository.FindByExternalIDAndTenant(ctx, claims.ExternalID, claims.TenantID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().
			Str("external_id", claims.ExternalID).
			Str("tenant_id", claims.TenantID).
			Msg("token identity is not in the user directory")
		return models.Principal{}, ErrPrincipalNotFound
	}
	if err != nil {
		log.Err(err).Str("tenant_id", claims.TenantID).Msg("user directory lookup failed")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrDirectoryLookup, err)
	}

	return principal, nil
}
