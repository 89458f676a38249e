package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRepository_Next(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	t.Run("starts at one and increments", func(t *testing.T) {
		for want := 1; want <= 5; want++ {
			got, err := repo.Next(ctx, 2025)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("years are independent", func(t *testing.T) {
		got, err := repo.Next(ctx, 2026)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = repo.Next(ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("rejects non positive year", func(t *testing.T) {
		_, err := repo.Next(ctx, 0)
		assert.Error(t, err)
	})
}

func TestSequenceRepository_NextConcurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	const workers = 20
	results := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(slot int) {
			defer wg.Done()
			got, err := repo.Next(ctx, 2025)
			require.NoError(t, err)
			results[slot] = got
		}(i)
	}
	wg.Wait()

	// Every worker must get a distinct value and together they must
	// cover 1..workers with no gaps.
	sort.Ints(results)
	for i, got := range results {
		assert.Equal(t, i+1, got)
	}
}
