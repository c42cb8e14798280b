package workdays

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

func TestMemoryStoreAddAndList(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.Add("Company Day", "2025-04-01", false)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := store.Add("Anniversary", "2020-09-12", true)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Company Day", list[0].Name)
	assert.Equal(t, "Anniversary", list[1].Name)
	assert.True(t, list[1].Recurring)
}

func TestMemoryStoreValidation(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Add("", "2025-04-01", false)
	require.Error(t, err)
	verr, ok := clock.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "name", verr.Field)

	_, err = store.Add("Bad Date", "04/01/2025", false)
	require.Error(t, err)
	verr, ok = clock.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "date", verr.Field)

	assert.Empty(t, store.List())
}

func TestMemoryStoreMatching(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Add("One Off", "2025-04-01", false)
	require.NoError(t, err)
	_, err = store.Add("Every Year", "2020-04-01", true)
	require.NoError(t, err)

	exact := store.Matching(day(2025, time.April, 1))
	require.Len(t, exact, 2)

	recurringOnly := store.Matching(day(2030, time.April, 1))
	require.Len(t, recurringOnly, 1)
	assert.Equal(t, "Every Year", recurringOnly[0].Name)

	assert.Empty(t, store.Matching(day(2025, time.April, 2)))
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Add("Original", "2025-04-01", false)
	require.NoError(t, err)

	list := store.List()
	list[0].Name = "Mutated"
	assert.Equal(t, "Original", store.List()[0].Name)
}

func TestMemoryStoreConcurrentAdds(t *testing.T) {
	store := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(fmt.Sprintf("holiday-%d", i), "2025-01-02", false)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, store.List(), 20)
}
