package usecase

import (
	"context"
	"errors"
	"strings"

	"medicare-booking/config"
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("อีเมลหรือรหัสผ่านไม่ถูกต้อง")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authUsecase checks credentials against the single configured demo
// account. The password is bcrypt-hashed once at construction so the
// plaintext never sits in the comparison path.
type authUsecase struct {
	log          *logrus.Logger
	tokenService *jwt.TokenService
	email        string
	passwordHash []byte
}

func NewAuthUsecase(log *logrus.Logger, tokenService *jwt.TokenService, cfg config.AuthConfig) (AuthUsecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &authUsecase{
		log:          log,
		tokenService: tokenService,
		email:        cfg.Email,
		passwordHash: hash,
	}, nil
}

// Login verifies the credentials and returns a signed session token plus
// the display name derived from the email local-part. Unknown email and
// wrong password produce the same error.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email != u.email {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokenService.Generate(req.Email)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	name := strings.SplitN(req.Email, "@", 2)[0]

	u.log.WithField("email", req.Email).Info("Patient logged in")

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			Email: req.Email,
			Name:  name,
		},
	}, nil
}
