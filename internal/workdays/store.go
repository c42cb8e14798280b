package workdays

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// CustomHoliday is a caller-defined holiday. A recurring holiday matches
// its month and day in every year; otherwise only the exact date matches.
type CustomHoliday struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Recurring bool   `json:"recurring"`
}

// Store holds custom holidays for the process lifetime. Holidays are
// append-only: they are never mutated or removed once added.
type Store interface {
	// Add validates and records a holiday, returning it with an assigned ID.
	Add(name, date string, recurring bool) (CustomHoliday, error)
	// List returns all holidays in insertion order.
	List() []CustomHoliday
	// Matching returns the holidays that apply on the given date.
	Matching(t time.Time) []CustomHoliday
}

// MemoryStore is an in-memory Store, safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	holidays []CustomHoliday
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(name, date string, recurring bool) (CustomHoliday, error) {
	if name == "" {
		return CustomHoliday{}, clock.InvalidArgument("name", "holiday name must not be empty")
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return CustomHoliday{}, clock.InvalidArgument("date", "expected YYYY-MM-DD, got %q", date)
	}

	h := CustomHoliday{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      parsed.Format("2006-01-02"),
		Recurring: recurring,
	}

	s.mu.Lock()
	s.holidays = append(s.holidays, h)
	s.mu.Unlock()
	return h, nil
}

func (s *MemoryStore) List() []CustomHoliday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CustomHoliday, len(s.holidays))
	copy(out, s.holidays)
	return out
}

func (s *MemoryStore) Matching(t time.Time) []CustomHoliday {
	day := t.Format("2006-01-02")
	monthDay := t.Format("01-02")

	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []CustomHoliday
	for _, h := range s.holidays {
		if h.Date == day || (h.Recurring && h.Date[5:] == monthDay) {
			matches = append(matches, h)
		}
	}
	return matches
}
