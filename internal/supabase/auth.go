package supabase

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthenticator verifies a Supabase access token locally. Supabase signs
// user tokens with HS256 using the project JWT secret; the user id is carried
// in the "sub" claim.
type JWTAuthenticator struct {
	secret string
}

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret}
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid user token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing user id in token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return userID, nil
}

// RemoteAuthenticator resolves a token against Supabase Auth itself. Used when
// no JWT secret is configured; one extra round-trip per request.
type RemoteAuthenticator struct {
	client *Client
}

func NewRemoteAuthenticator(client *Client) *RemoteAuthenticator {
	return &RemoteAuthenticator{client: client}
}

func (a *RemoteAuthenticator) Authenticate(_ context.Context, tokenString string) (uuid.UUID, error) {
	user, err := a.client.Supabase.Auth.WithToken(tokenString).GetUser()
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user token: %w", err)
	}
	return user.ID, nil
}
