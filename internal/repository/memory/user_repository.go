package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type UserRepository struct {
	cache *cache.Cache
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Notes = append([]uuid.UUID(nil), u.Notes...)
	return &c
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.cache.Set(user.Id.String(), cloneUser(user), cache.NoExpiration)
	return nil
}

func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	r.cache.Set(user.Id.String(), cloneUser(user), cache.NoExpiration)
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	items := r.cache.Items()
	users := make([]*entity.User, 0, len(items))
	for _, item := range items {
		users = append(users, cloneUser(item.Object.(*entity.User)))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Id.String() < users[j].Id.String()
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if x, found := r.cache.Get(id.String()); found {
		return cloneUser(x.(*entity.User)), nil
	}
	return nil, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, item := range r.cache.Items() {
		u := item.Object.(*entity.User)
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) AppendNote(ctx context.Context, userId, noteId uuid.UUID) error {
	x, found := r.cache.Get(userId.String())
	if !found {
		return fmt.Errorf("append note %s: user %s not found", noteId, userId)
	}
	user := cloneUser(x.(*entity.User))
	for _, id := range user.Notes {
		if id == noteId {
			return nil
		}
	}
	user.Notes = append(user.Notes, noteId)
	user.UpdatedAt = time.Now()
	r.cache.Set(user.Id.String(), user, cache.NoExpiration)
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.cache.ItemCount()), nil
}
