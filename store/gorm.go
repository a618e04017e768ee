package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// GormStore backs ResidentStore with GORM. The database must be opened
// with TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Insert(ctx context.Context, r models.Resident) error {
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert resident: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, regNo string) (models.Resident, error) {
	var r models.Resident
	err := s.db.WithContext(ctx).
		First(&r, "registration_no = ?", strings.ToUpper(strings.TrimSpace(regNo))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Resident{}, ErrNotFound
		}
		return models.Resident{}, fmt.Errorf("get resident: %w", err)
	}
	return r, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.ResidentSummary, error) {
	var items []models.ResidentSummary
	err := s.db.WithContext(ctx).
		Model(&models.Resident{}).
		Select("registration_no, first_name, last_name, department, room_no").
		Order("last_name, first_name").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	return items, nil
}
