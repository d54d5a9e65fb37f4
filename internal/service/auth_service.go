package service

import (
	"crypto/subtle"
	"errors"
	"time"

	config "github.com/Rakifeller/idea-approval/configs"
	"github.com/Rakifeller/idea-approval/pkg/utils"
)

var ErrBadCredentials = errors.New("invalid admin password")

type AuthService interface {
	Login(password string) (string, error)
}

type authService struct {
	cfg config.Config
}

func NewAuthService(cfg config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login exchanges the shared admin password for a short-lived session token.
func (s *authService) Login(password string) (string, error) {
	if s.cfg.AdminPassword == "" {
		return "", errors.New("admin password is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrBadCredentials
	}

	return utils.GenerateToken(s.cfg.SecretKey, 24*time.Hour)
}
