package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// ErrNoProfile means the hostel profile has not been set up yet.
var ErrNoProfile = errors.New("hostel profile not configured")

// HostelStore holds the single-row institution profile that feeds the
// card header.
type HostelStore interface {
	GetProfile(ctx context.Context) (models.Hostel, error)
	SaveProfile(ctx context.Context, h models.Hostel) (models.Hostel, error)
}

type GormHostelStore struct {
	db *gorm.DB
}

func NewGormHostelStore(db *gorm.DB) *GormHostelStore { return &GormHostelStore{db: db} }

func (s *GormHostelStore) GetProfile(ctx context.Context) (models.Hostel, error) {
	var h models.Hostel
	if err := s.db.WithContext(ctx).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hostel{}, ErrNoProfile
		}
		return models.Hostel{}, fmt.Errorf("get hostel profile: %w", err)
	}
	return h, nil
}

// SaveProfile creates the profile row or updates the existing one.
func (s *GormHostelStore) SaveProfile(ctx context.Context, h models.Hostel) (models.Hostel, error) {
	var existing models.Hostel
	err := s.db.WithContext(ctx).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.WithContext(ctx).Create(&h).Error; err != nil {
			return models.Hostel{}, fmt.Errorf("create hostel profile: %w", err)
		}
		return h, nil
	case err != nil:
		return models.Hostel{}, fmt.Errorf("get hostel profile: %w", err)
	}

	existing.HostelName = h.HostelName
	existing.Address = h.Address
	existing.Phone = h.Phone
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return models.Hostel{}, fmt.Errorf("update hostel profile: %w", err)
	}
	return existing, nil
}

// MemoryHostelStore backs tests and dev mode.
type MemoryHostelStore struct {
	mu      sync.RWMutex
	profile *models.Hostel
}

func NewMemoryHostelStore() *MemoryHostelStore { return &MemoryHostelStore{} }

func (s *MemoryHostelStore) GetProfile(ctx context.Context) (models.Hostel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.Hostel{}, ErrNoProfile
	}
	return *s.profile, nil
}

func (s *MemoryHostelStore) SaveProfile(ctx context.Context, h models.Hostel) (models.Hostel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		h.ID = s.profile.ID
	} else {
		h.ID = 1
	}
	s.profile = &h
	return h, nil
}
