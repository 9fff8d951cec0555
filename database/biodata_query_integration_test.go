package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

func seedBiodatas(t *testing.T, store *Store, biodatas []models.Biodata) {
	t.Helper()

	ctx := context.Background()
	for _, b := range biodatas {
		_, err := store.Biodatas.InsertOne(ctx, b)
		require.NoError(t, err)
	}
}

func TestQueryBiodatasFilters(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	seedBiodatas(t, store, []models.Biodata{
		{BiodataID: 1, BiodataType: "Female", Name: "Asha", Age: 27, Occupation: "Teacher", PermanentDivision: "Dhaka"},
		{BiodataID: 2, BiodataType: "male", Name: "Rahim", Age: 30, Occupation: "Engineer", PermanentDivision: "Sylhet"},
		{BiodataID: 3, BiodataType: "FEMALE", Name: "Mina", Age: 25, Occupation: "Doctor from Dhaka", PermanentDivision: "Khulna"},
	})

	t.Run("gender matches case-insensitively", func(t *testing.T) {
		items, total, err := store.QueryBiodatas(ctx, BiodataQuery{Gender: "female"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, items, 2)
		for _, b := range items {
			assert.NotEqual(t, "male", b.BiodataType)
		}
	})

	t.Run("age range is inclusive", func(t *testing.T) {
		minAge, maxAge := 25, 27
		items, total, err := store.QueryBiodatas(ctx, BiodataQuery{MinAge: &minAge, MaxAge: &maxAge})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, b := range items {
			assert.GreaterOrEqual(t, b.Age, 25)
			assert.LessOrEqual(t, b.Age, 27)
		}
	})

	t.Run("free text unions name, occupation and permanent division", func(t *testing.T) {
		items, total, err := store.QueryBiodatas(ctx, BiodataQuery{Search: "dhaka"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		ids := make([]int64, 0, len(items))
		for _, b := range items {
			ids = append(ids, b.BiodataID)
		}
		assert.ElementsMatch(t, []int64{1, 3}, ids)
	})

	t.Run("empty result is a slice, not an error", func(t *testing.T) {
		items, total, err := store.QueryBiodatas(ctx, BiodataQuery{Gender: "other"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestQueryBiodatasPagination(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	biodatas := make([]models.Biodata, 25)
	for i := range biodatas {
		biodatas[i] = models.Biodata{
			BiodataID:   int64(i + 1),
			BiodataType: "Female",
			Name:        fmt.Sprintf("Profile %d", i+1),
			Age:         20 + i%5,
		}
	}
	seedBiodatas(t, store, biodatas)

	t.Run("total reflects the full match set on every page", func(t *testing.T) {
		for page := int64(1); page <= 3; page++ {
			items, total, err := store.QueryBiodatas(ctx, BiodataQuery{Page: page, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, int64(25), total)
			if page < 3 {
				assert.Len(t, items, 10)
			} else {
				assert.Len(t, items, 5)
			}
		}
	})

	t.Run("pages do not overlap", func(t *testing.T) {
		seen := make(map[int64]bool)
		for page := int64(1); page <= 3; page++ {
			items, _, err := store.QueryBiodatas(ctx, BiodataQuery{Page: page, Limit: 10})
			require.NoError(t, err)
			for _, b := range items {
				assert.False(t, seen[b.BiodataID], "biodata %d returned twice", b.BiodataID)
				seen[b.BiodataID] = true
			}
		}
		assert.Len(t, seen, 25)
	})

	t.Run("no limit returns everything", func(t *testing.T) {
		items, total, err := store.QueryBiodatas(ctx, BiodataQuery{Page: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, items, 25)
	})

	t.Run("equal ages keep creation order in both directions", func(t *testing.T) {
		asc, _, err := store.QueryBiodatas(ctx, BiodataQuery{})
		require.NoError(t, err)
		desc, _, err := store.QueryBiodatas(ctx, BiodataQuery{SortDesc: true})
		require.NoError(t, err)

		assertCreationOrderWithinAge := func(items []models.Biodata) {
			lastByAge := make(map[int]int64)
			for _, b := range items {
				if last, ok := lastByAge[b.Age]; ok {
					assert.Greater(t, b.BiodataID, last)
				}
				lastByAge[b.Age] = b.BiodataID
			}
		}
		assertCreationOrderWithinAge(asc)
		assertCreationOrderWithinAge(desc)
	})
}
