package main

import (
	"context"
	"fmt"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject (user ID), roles and TTL using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID and roles",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			rawRoles, _ := cmd.Flags().GetStringSlice("roles")
			TTL, _ := cmd.Flags().GetDuration("ttl")
			if TTL <= 0 {
				TTL = cfg.JWT.TTL
			}

			if _, err := uuid.Parse(subject); err != nil {
				logger.Fatal(ctx, "subject must be a user id", zap.Error(err))
			}

			roles := make([]domain.Role, 0, len(rawRoles))
			for _, r := range rawRoles {
				role := domain.Role(strings.ToUpper(strings.TrimSpace(r)))
				switch role {
				case domain.RoleBuyer, domain.RoleSeller, domain.RoleModerator, domain.RoleAdmin:
					roles = append(roles, role)
				default:
					logger.Fatal(ctx, "unknown role", zap.String("role", r))
				}
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
				Roles: roles,
			}
			token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
			signed, err := token.SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().StringSlice("roles", nil, "Comma separated roles (BUYER, SELLER, MODERATOR, ADMIN)")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h), defaults to jwt.ttl from config")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
