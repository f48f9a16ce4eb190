package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// Service is the main auth service with dependencies.
type Service struct {
	repo       RepositoryAPI
	tokens     TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a credential record. The password hash never leaves this
// layer; callers receive the account with the hash field unserialized.
func (s *Service) Register(dto RegisterDTO) (*model.UserAccount, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up username", err)
	}
	if existing != nil {
		return nil, internal.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = model.RoleEmployee
	}

	user := &model.UserAccount{
		Username:     dto.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "username", user.Username, "role", user.Role)
	return user, nil
}

// Authenticate verifies credentials and issues a session token. Failures
// never reveal whether the username or the password was wrong.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up username", err)
	}
	if user == nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, internal.NewInternalError("failed to sign token", err)
	}

	// Best effort; a login must not fail because the timestamp write did.
	if err := s.repo.UpdateLastLogin(user.UserID, time.Now()); err != nil {
		s.logger.Warn("failed to update last login", "userId", user.UserID, "error", err)
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString)
}

// JWTTokenGenerator signs session tokens with HMAC-SHA256.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

func (j *JWTTokenGenerator) Generate(user *model.UserAccount) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Validate distinguishes expiry (401) from every other verification
// failure (403), per the access-control contract.
func (j *JWTTokenGenerator) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}
