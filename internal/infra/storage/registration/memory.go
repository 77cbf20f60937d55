package registration

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// MemoryRepository журнал в памяти процесса, используется без БД
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.Registration
}

// NewMemoryRepository создает пустой журнал в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]domain.Registration)}
}

// Exists проверяет, зарегистрировано ли бронирование
func (r *MemoryRepository) Exists(_ context.Context, reservationID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[reservationID]
	return ok, nil
}

// Create добавляет запись; повтор -> ErrAlreadyRegistered
func (r *MemoryRepository) Create(_ context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[reg.ReservationID]; ok {
		return ErrAlreadyRegistered
	}
	r.entries[reg.ReservationID] = *reg
	return nil
}

// List возвращает все записи, новые первыми
func (r *MemoryRepository) List(_ context.Context) ([]domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registrations := make([]domain.Registration, 0, len(r.entries))
	for _, reg := range r.entries {
		registrations = append(registrations, reg)
	}

	sort.Slice(registrations, func(i, j int) bool {
		if registrations[i].RegisteredAt.Equal(registrations[j].RegisteredAt) {
			return registrations[i].ReservationID < registrations[j].ReservationID
		}
		return registrations[i].RegisteredAt.After(registrations[j].RegisteredAt)
	})
	return registrations, nil
}
