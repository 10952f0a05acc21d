// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/subosito/gotenv"
	platformconfig "github.com/tahia-tahi/bright-tech-server/internal/platform/config"
	"github.com/tahia-tahi/bright-tech-server/internal/types"
	"github.com/tahia-tahi/bright-tech-server/internal/utils"
)

// LoadTestEnv loads .env.test into the process environment when present.
// Explicit environment variables always win.
func LoadTestEnv() {
	if _, err := os.Stat(".env.test"); err == nil {
		_ = gotenv.Load(".env.test")
	}
}

// GenerateECDSAKeyPairPEM generates an ECDSA key pair for signing test
// tokens. Returns (publicKeyPEM, privateKeyPEM).
func GenerateECDSAKeyPairPEM(t *testing.T) (string, string) {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "Failed to generate ECDSA private key")

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err, "Failed to marshal ECDSA private key")
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})

	pubBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err, "Failed to marshal ECDSA public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return string(pubPEM), string(privPEM)
}

// GenerateTestJWT creates a signed test token carrying the given user
// context under the default claim key, valid for one hour.
func GenerateTestJWT(privateKeyPEM string, userCtx types.UserContext) (string, error) {
	claims := utils.TokenClaims{
		Claim: map[string]interface{}{
			types.HeaderUID: userCtx.UserID.String(),
			"email":         userCtx.Email,
			"displayName":   userCtx.DisplayName,
			"avatar":        userCtx.Avatar,
			"role":          userCtx.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := utils.GenerateJWTToken([]byte(privateKeyPEM), claims)
	if err != nil {
		return "", fmt.Errorf("failed to generate test JWT: %w", err)
	}

	return token, nil
}

// NewTestConfig builds a platform config with a freshly generated key pair,
// suitable for wiring handlers under test.
func NewTestConfig(t *testing.T) (*platformconfig.Config, string) {
	t.Helper()

	pubPEM, privPEM := GenerateECDSAKeyPairPEM(t)

	cfg := &platformconfig.Config{
		Server: platformconfig.ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Database: platformconfig.DatabaseConfig{
			MongoDB: platformconfig.MongoDBConfig{
				Host:     "127.0.0.1",
				Port:     27017,
				Database: "brighttech_test",
			},
		},
		JWT: platformconfig.JWTConfig{
			PublicKey:  pubPEM,
			PrivateKey: privPEM,
			ClaimKey:   "claim",
		},
		App: platformconfig.AppConfig{
			Name:       "bright-tech-server-test",
			WebDomain:  "http://localhost:3000",
			CORSOrigin: "*",
		},
	}

	return cfg, privPEM
}
