package service

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]*dto.UserResponse, error)
}

type userService struct {
	userRepository contract.UserRepository
}

func NewUserService(userRepository contract.UserRepository) IUserService {
	return &userService{
		userRepository: userRepository,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := s.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
		Notes:        []uuid.UUID{},
	}
	if err := s.userRepository.Create(ctx, &user); err != nil {
		return nil, err
	}

	return toUserResponse(&user), nil
}

func (s *userService) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	notes := u.Notes
	if notes == nil {
		notes = []uuid.UUID{}
	}
	return &dto.UserResponse{
		Id:       u.Id,
		Username: u.Username,
		Name:     u.Name,
		Notes:    notes,
	}
}
