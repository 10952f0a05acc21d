// Copyright (c) 2025 Bright Tech
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	// Meta data
	Claim interface{} `json:"claim"`

	// Inherit from registered claims
	jwt.RegisteredClaims
}

// GenerateJWTToken signs the claims with an ES256 private key.
func GenerateJWTToken(privateKeydata []byte, claim TokenClaims) (string, error) {
	privateKey, keyErr := jwt.ParseECPrivateKeyFromPEM(privateKeydata)
	if keyErr != nil {
		return "", fmt.Errorf("unable to parse private key: %w", keyErr)
	}

	method := jwt.GetSigningMethod(jwt.SigningMethodES256.Name)

	session, err := jwt.NewWithClaims(method, claim).SignedString(privateKey)
	return session, err
}

// ValidateToken parses the token and returns its claims.
func ValidateToken(keydata []byte, token string) (jwt.MapClaims, error) {
	publicKey, keyErr := jwt.ParseECPublicKeyFromPEM(keydata)
	if keyErr != nil {
		return nil, keyErr
	}

	parsed, parseErr := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if claims, ok := parsed.Claims.(jwt.MapClaims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("token claim is not valid")
}
