package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The upstream shop API signs and verifies its own tokens; the gateway
// never holds the secret. What it can do is inspect the claims without
// verification, so an obviously expired token is rejected locally
// instead of burning an upstream round trip.

// TokenExpired reports whether the bearer token carries an exp claim in
// the past. Tokens that are not JWTs, or carry no exp claim, are left
// for the upstream to judge.
func TokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// ExtractTokenFromHeader extracts a bearer token from an Authorization
// header. Format: "Bearer <token>".
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", errors.New("token is empty")
	}
	return token, nil
}
