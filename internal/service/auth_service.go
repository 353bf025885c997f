package service

import (
	"context"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepository contract.UserRepository
	secret         string
	tokenTTL       time.Duration
}

func NewAuthService(userRepository contract.UserRepository, secret string, tokenTTL time.Duration) IAuthService {
	return &authService{
		userRepository: userRepository,
		secret:         secret,
		tokenTTL:       tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":       user.Id.String(),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    signedToken,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
