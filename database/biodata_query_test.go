package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestBiodataQueryFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    BiodataQuery
		expected bson.M
	}{
		{
			name:     "empty query imposes no constraint",
			query:    BiodataQuery{},
			expected: bson.M{},
		},
		{
			name:  "gender is a case-insensitive full match",
			query: BiodataQuery{Gender: "Female"},
			expected: bson.M{
				"biodataType": primitive.Regex{Pattern: "^Female$", Options: "i"},
			},
		},
		{
			name:  "divisions and marital status are exact matches",
			query: BiodataQuery{PermanentDivision: "Dhaka", PresentDivision: "Sylhet", MaritalStatus: "single"},
			expected: bson.M{
				"permanentDivision": "Dhaka",
				"presentDivision":   "Sylhet",
				"maritalStatus":     "single",
			},
		},
		{
			name:  "closed age range",
			query: BiodataQuery{MinAge: intPtr(25), MaxAge: intPtr(30)},
			expected: bson.M{
				"age": bson.M{"$gte": 25, "$lte": 30},
			},
		},
		{
			name:  "open-ended minimum age",
			query: BiodataQuery{MinAge: intPtr(25)},
			expected: bson.M{
				"age": bson.M{"$gte": 25},
			},
		},
		{
			name:  "open-ended maximum age",
			query: BiodataQuery{MaxAge: intPtr(40)},
			expected: bson.M{
				"age": bson.M{"$lte": 40},
			},
		},
		{
			name:  "free text ORs over name, occupation and permanent division",
			query: BiodataQuery{Search: "Dhaka"},
			expected: bson.M{
				"$or": bson.A{
					bson.M{"name": primitive.Regex{Pattern: "Dhaka", Options: "i"}},
					bson.M{"occupation": primitive.Regex{Pattern: "Dhaka", Options: "i"}},
					bson.M{"permanentDivision": primitive.Regex{Pattern: "Dhaka", Options: "i"}},
				},
			},
		},
		{
			name:  "free text is ANDed with the other filters",
			query: BiodataQuery{Gender: "male", Search: "teacher"},
			expected: bson.M{
				"biodataType": primitive.Regex{Pattern: "^male$", Options: "i"},
				"$or": bson.A{
					bson.M{"name": primitive.Regex{Pattern: "teacher", Options: "i"}},
					bson.M{"occupation": primitive.Regex{Pattern: "teacher", Options: "i"}},
					bson.M{"permanentDivision": primitive.Regex{Pattern: "teacher", Options: "i"}},
				},
			},
		},
		{
			name:  "regex metacharacters in input are escaped",
			query: BiodataQuery{Search: "a.b*"},
			expected: bson.M{
				"$or": bson.A{
					bson.M{"name": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
					bson.M{"occupation": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
					bson.M{"permanentDivision": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Filter())
		})
	}
}

func TestBiodataQueryFindOptions(t *testing.T) {
	t.Run("default sorts by age ascending with biodataId tiebreak", func(t *testing.T) {
		opts := BiodataQuery{}.FindOptions()
		require.NotNil(t, opts.Sort)
		assert.Equal(t, bson.D{
			{Key: "age", Value: 1},
			{Key: "biodataId", Value: 1},
		}, opts.Sort)
		assert.Nil(t, opts.Skip)
		assert.Nil(t, opts.Limit)
	})

	t.Run("descending sort keeps the ascending tiebreak", func(t *testing.T) {
		opts := BiodataQuery{SortDesc: true}.FindOptions()
		assert.Equal(t, bson.D{
			{Key: "age", Value: -1},
			{Key: "biodataId", Value: 1},
		}, opts.Sort)
	})

	t.Run("pagination skips past earlier pages", func(t *testing.T) {
		opts := BiodataQuery{Page: 3, Limit: 10}.FindOptions()
		require.NotNil(t, opts.Skip)
		require.NotNil(t, opts.Limit)
		assert.Equal(t, int64(20), *opts.Skip)
		assert.Equal(t, int64(10), *opts.Limit)
	})

	t.Run("first page starts at zero", func(t *testing.T) {
		opts := BiodataQuery{Page: 1, Limit: 5}.FindOptions()
		require.NotNil(t, opts.Skip)
		assert.Equal(t, int64(0), *opts.Skip)
	})

	t.Run("missing page defaults to the first", func(t *testing.T) {
		opts := BiodataQuery{Limit: 5}.FindOptions()
		require.NotNil(t, opts.Skip)
		assert.Equal(t, int64(0), *opts.Skip)
	})

	t.Run("non-positive limit disables pagination", func(t *testing.T) {
		opts := BiodataQuery{Page: 4, Limit: 0}.FindOptions()
		assert.Nil(t, opts.Skip)
		assert.Nil(t, opts.Limit)
	})
}
