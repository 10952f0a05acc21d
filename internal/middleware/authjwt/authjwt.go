// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package authjwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The claim key where the UserContext is stored.
	ClaimKey string
	// The context key to store the UserContext.
	UserCtxName string
}

// New creates a new middleware handler.
func New(cfg Config) fiber.Handler {
	// Parse the key once on startup.
	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		panic(fmt.Sprintf("failed to parse EC public key: %v", err))
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" && strings.HasPrefix(authHeader, types.BearerPrefix) {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return unauthorized(c, "Missing or invalid bearer token")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Enforce the expected signing algorithm.
			if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return ecPublicKey, nil
		})

		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return unauthorized(c, "Invalid token")
		}

		if exp, ok := claims["exp"].(float64); ok {
			if int64(exp) < time.Now().Unix() {
				return unauthorized(c, "Token has expired")
			}
		}

		claimData, claimOk := claims[cfg.ClaimKey].(map[string]interface{})
		if !claimOk {
			return unauthorized(c, "Invalid token claim format")
		}

		userCtx, err := mapToUserContext(claimData)
		if err != nil {
			return unauthorized(c, "Invalid user context in token")
		}

		c.Locals(cfg.UserCtxName, userCtx)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// mapToUserContext converts claim data to UserContext
func mapToUserContext(claimData map[string]interface{}) (types.UserContext, error) {
	var userCtx types.UserContext

	if userIDStr, ok := claimData[types.HeaderUID].(string); ok {
		userID, err := uuid.FromString(userIDStr)
		if err != nil {
			return userCtx, fmt.Errorf("invalid user ID: %v", err)
		}
		userCtx.UserID = userID
	} else {
		return userCtx, errors.New("missing or invalid uid in claim")
	}

	if email, ok := claimData["email"].(string); ok {
		userCtx.Email = email
	}

	if displayName, ok := claimData["displayName"].(string); ok {
		userCtx.DisplayName = displayName
	}

	if avatar, ok := claimData["avatar"].(string); ok {
		userCtx.Avatar = avatar
	}

	if role, ok := claimData["role"].(string); ok {
		userCtx.Role = role
	}

	return userCtx, nil
}

// ValidateToken validates a JWT token and returns the UserContext if valid.
// This is a pure validation function that does NOT write to the response.
func ValidateToken(tokenString string, publicKey string, claimKey string) (types.UserContext, error) {
	var userCtx types.UserContext

	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKey))
	if err != nil {
		return userCtx, fmt.Errorf("failed to parse EC public key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ecPublicKey, nil
	})

	if err != nil {
		return userCtx, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return userCtx, fmt.Errorf("invalid token")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < time.Now().Unix() {
			return userCtx, fmt.Errorf("token has expired")
		}
	}

	claimData, claimOk := claims[claimKey].(map[string]interface{})
	if !claimOk {
		return userCtx, fmt.Errorf("invalid token claim format")
	}

	userCtx, err = mapToUserContext(claimData)
	if err != nil {
		return userCtx, fmt.Errorf("invalid user context in token: %w", err)
	}

	return userCtx, nil
}
