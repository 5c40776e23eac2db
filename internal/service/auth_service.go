package service

import (
	"context"
	"errors"
	"time"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const revokedKeyPrefix = "revoked:"

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Redis: rdb, Cfg: cfg}
}

// Login verifies credentials and issues a signed session token carrying
// the user's role and department code.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	departmentCode := ""
	if user.Department != nil {
		departmentCode = user.Department.Code
	}

	token, err := util.GenerateJWT(user, departmentCode, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout marks the token revoked for its remaining lifetime. Verification
// stays stateless; only the revocation check touches redis.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := util.ParseJWT(tokenString, s.Cfg.JWT.Secret)
	if err != nil {
		// Already invalid; nothing to revoke.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, revokedKeyPrefix+tokenString, 1, ttl).Err()
}

// IsRevoked reports whether the token was logged out. A nil redis client
// (tests, minimal deployments) disables revocation checks.
func IsRevoked(ctx context.Context, rdb *redis.Client, tokenString string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, revokedKeyPrefix+tokenString).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false
	}
	return n > 0
}
