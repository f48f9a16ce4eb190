package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ServiceAPI performs authentication business logic.
type ServiceAPI interface {
	Register(dto RegisterDTO) (*model.UserAccount, error)
	Authenticate(dto LoginDTO) (*LoginResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// RepositoryAPI is the credential store.
type RepositoryAPI interface {
	GetByUsername(username string) (*model.UserAccount, error)
	Create(user *model.UserAccount) error
	UpdateLastLogin(userID int64, at time.Time) error
}

// TokenGeneratorAPI creates and verifies session tokens.
type TokenGeneratorAPI interface {
	Generate(user *model.UserAccount) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ctxKey string

const claimsKey ctxKey = "authClaims"

// ContextWithClaims threads verified token claims to downstream handlers.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}
