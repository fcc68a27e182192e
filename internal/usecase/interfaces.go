package usecase

import (
	"context"
)

// AuthClient abstracts the identity provider. The application never stores
// credentials itself.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (uid string, email string, err error)
}
