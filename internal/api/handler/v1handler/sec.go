package v1handler

import (
	"context"
	"fmt"
	"marketplace/internal/api/specs/v1specs"
	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserIDKey is the context key of the authenticated domain.UserID.
	UserIDKey CtxKey = "UserID"
	// RolesKey is the context key of the authenticated user's []domain.Role.
	RolesKey CtxKey = "Roles"
)

// Claims are the JWT claims accepted by the API. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims

	Roles []domain.Role `json:"roles"`
}

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates RS256 bearer tokens and authorizes roles.
type SecHandler struct {
	parser *jwt.Parser
	key    any
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()),
		key:    key,
	}, nil
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// HandleBearerAuth verifies the token and stores the user id and roles in
// the returned context. When the operation lists roles the user must hold
// one of them.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	if len(t.Roles) > 0 && !slices.ContainsFunc(claims.Roles, func(role domain.Role) bool {
		return slices.Contains(t.Roles, string(role))
	}) {
		return ctx, serrors.With(serrors.ErrForbidden, "%s requires one of roles %v", operationName, t.Roles)
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(id))
	ctx = context.WithValue(ctx, RolesKey, claims.Roles)
	ctx = logger.WithFields(ctx, zap.String("userID", id.String()))

	return ctx, nil
}

// GetUserIDFromContext returns the authenticated user id, or the zero id.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// GetRolesFromContext returns the authenticated user's roles.
func GetRolesFromContext(ctx context.Context) []domain.Role {
	roles, _ := ctx.Value(RolesKey).([]domain.Role)

	return roles
}
