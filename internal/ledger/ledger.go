// Package ledger ведет учет вместимости и занятости убежищ.
//
// Все изменения занятости выполняются под одной блокировкой. Прогон распределения
// целиком выполняется внутри Run: резервирования транзакции сразу видны
// последующим решениям того же прогона и применяются к счетчикам только после
// успешной записи в хранилище.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// Persister сохраняет изменения занятости одной транзакцией
type Persister interface {
	ApplyOccupancyDeltas(ctx context.Context, deltas map[int64]int) error
}

type entry struct {
	capacity  int
	occupancy int
}

type Ledger struct {
	mu        sync.Mutex
	shelters  map[int64]*entry
	persister Persister
}

// New создает пустой учет; persister может быть nil
func New(persister Persister) *Ledger {
	return &Ledger{
		shelters:  make(map[int64]*entry),
		persister: persister,
	}
}

// Load заменяет сведения об убежищах актуальными данными хранилища
func (l *Ledger) Load(shelters []*models.Shelter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range shelters {
		if s == nil {
			continue
		}
		l.shelters[s.ID] = &entry{capacity: s.Capacity, occupancy: s.Occupancy}
	}
}

// Ensure добавляет только убежища, которых еще нет в учете; известные счетчики не меняются
func (l *Ledger) Ensure(shelters []*models.Shelter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range shelters {
		if s == nil {
			continue
		}
		if _, ok := l.shelters[s.ID]; ok {
			continue
		}
		l.shelters[s.ID] = &entry{capacity: s.Capacity, occupancy: s.Occupancy}
	}
}

// StatusFor классифицирует заполненность по занятости и вместимости
func StatusFor(occupancy, capacity int) models.ShelterStatus {
	occ, cp := float64(occupancy), float64(capacity)
	switch {
	case occupancy >= capacity:
		return models.ShelterFull
	case occ >= 0.8*cp:
		return models.ShelterAlmostFull
	case occ >= 0.5*cp:
		return models.ShelterModerate
	default:
		return models.ShelterAvailable
	}
}

// Status возвращает классификацию заполненности убежища
func (l *Ledger) Status(shelterID int64) (models.ShelterStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.shelters[shelterID]
	if !ok {
		return "", apperr.NotFound(fmt.Sprintf("shelter %d is not tracked by ledger", shelterID))
	}
	return StatusFor(e.occupancy, e.capacity), nil
}

// Occupancy возвращает текущую занятость и вместимость
func (l *Ledger) Occupancy(shelterID int64) (occupancy, capacity int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.shelters[shelterID]
	if !ok {
		return 0, 0, false
	}
	return e.occupancy, e.capacity, true
}

// Remaining возвращает число свободных мест
func (l *Ledger) Remaining(shelterID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remainingLocked(shelterID)
}

func (l *Ledger) remainingLocked(shelterID int64) int {
	e, ok := l.shelters[shelterID]
	if !ok || e.occupancy >= e.capacity {
		return 0
	}
	return e.capacity - e.occupancy
}

// Reserve занимает n мест; при нехватке мест возвращает ошибку Conflict
func (l *Ledger) Reserve(ctx context.Context, shelterID int64, n int) error {
	return l.Run(ctx, func(tx *Tx) error {
		return tx.Reserve(shelterID, n)
	})
}

// Release освобождает n мест, занятость не опускается ниже нуля
func (l *Ledger) Release(ctx context.Context, shelterID int64, n int) error {
	if n <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.shelters[shelterID]
	if !ok {
		return apperr.NotFound(fmt.Sprintf("shelter %d is not tracked by ledger", shelterID))
	}
	if n > e.occupancy {
		n = e.occupancy
	}
	if n == 0 {
		return nil
	}
	if l.persister != nil {
		if err := l.persister.ApplyOccupancyDeltas(ctx, map[int64]int{shelterID: -n}); err != nil {
			return apperr.Persistence(err, "failed to persist occupancy release")
		}
	}
	e.occupancy -= n
	return nil
}

// Run выполняет fn под блокировкой учета. Резервирования применяются,
// только если fn и запись в хранилище завершились без ошибок.
func (l *Ledger) Run(ctx context.Context, fn func(tx *Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &Tx{ledger: l, pending: make(map[int64]int)}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.pending) == 0 {
		return nil
	}
	if l.persister != nil {
		if err := l.persister.ApplyOccupancyDeltas(ctx, tx.pending); err != nil {
			return apperr.Persistence(err, "failed to persist occupancy reservations")
		}
	}
	for id, n := range tx.pending {
		l.shelters[id].occupancy += n
	}
	return nil
}

// Tx - набор резервирований одного прогона
type Tx struct {
	ledger  *Ledger
	pending map[int64]int
}

// Remaining учитывает уже сделанные в транзакции резервирования
func (tx *Tx) Remaining(shelterID int64) int {
	r := tx.ledger.remainingLocked(shelterID) - tx.pending[shelterID]
	if r < 0 {
		return 0
	}
	return r
}

// Reserve резервирует n мест в рамках транзакции
func (tx *Tx) Reserve(shelterID int64, n int) error {
	if n <= 0 {
		return apperr.Validation("reservation size must be positive")
	}
	if _, ok := tx.ledger.shelters[shelterID]; !ok {
		return apperr.NotFound(fmt.Sprintf("shelter %d is not tracked by ledger", shelterID))
	}
	if tx.Remaining(shelterID) < n {
		return apperr.Conflict(fmt.Sprintf("shelter %d has no capacity for %d people", shelterID, n))
	}
	tx.pending[shelterID] += n
	return nil
}

// Reserved возвращает идентификаторы убежищ с резервированиями в порядке возрастания
func (tx *Tx) Reserved() []int64 {
	ids := make([]int64, 0, len(tx.pending))
	for id := range tx.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
