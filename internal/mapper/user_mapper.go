package mapper

import (
	"notes-be/internal/entity"
	"notes-be/internal/model"

	"github.com/google/uuid"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	notes := make([]uuid.UUID, len(u.Notes))
	copy(notes, u.Notes)

	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Notes:        notes,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	notes := make([]uuid.UUID, len(u.Notes))
	copy(notes, u.Notes)

	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Notes:        notes,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
