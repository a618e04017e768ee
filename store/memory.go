package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/models"
)

// MemoryStore is a mutex-guarded in-memory ResidentStore. It backs
// unit tests and dev mode; the lock makes the check-and-insert atomic.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  uint
	byRegNo map[string]models.Resident
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byRegNo: make(map[string]models.Resident)}
}

func (s *MemoryStore) Insert(ctx context.Context, r models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(r.RegistrationNo)
	if _, ok := s.byRegNo[key]; ok {
		return ErrDuplicate
	}
	s.nextID++
	r.ID = s.nextID
	s.byRegNo[key] = r
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, regNo string) (models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byRegNo[strings.ToUpper(strings.TrimSpace(regNo))]
	if !ok {
		return models.Resident{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.ResidentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ResidentSummary, 0, len(s.byRegNo))
	for _, r := range s.byRegNo {
		items = append(items, models.ResidentSummary{
			RegistrationNo: r.RegistrationNo,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Department:     r.Department,
			RoomNo:         r.RoomNo,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].LastName != items[j].LastName {
			return items[i].LastName < items[j].LastName
		}
		return items[i].FirstName < items[j].FirstName
	})
	return items, nil
}
