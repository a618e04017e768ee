package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// ErrUserNotFound means no staff account matches the username.
var ErrUserNotFound = errors.New("user not found")

// UserStore looks up staff accounts for login.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore { return &GormUserStore{db: db} }

func (s *GormUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "username = ?", strings.TrimSpace(username)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// MemoryUserStore backs tests and dev mode.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
}

func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.TrimSpace(username)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}
