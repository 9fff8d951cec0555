package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonirMohammed1995/matrimony-management-server/config"
	"github.com/MonirMohammed1995/matrimony-management-server/database"
	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/biodatas?"+rawQuery, nil)
	return c
}

func TestParseBiodataQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		check    func(*testing.T, database.BiodataQuery)
	}{
		{
			name:     "defaults",
			rawQuery: "",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Equal(t, database.BiodataQuery{Page: 1}, q)
			},
		},
		{
			name:     "all filters",
			rawQuery: "gender=Female&permanentDivision=Dhaka&presentDivision=Sylhet&maritalStatus=single&minAge=25&maxAge=30&q=teacher&sort=desc&page=2&limit=10",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Equal(t, "Female", q.Gender)
				assert.Equal(t, "Dhaka", q.PermanentDivision)
				assert.Equal(t, "Sylhet", q.PresentDivision)
				assert.Equal(t, "single", q.MaritalStatus)
				require.NotNil(t, q.MinAge)
				require.NotNil(t, q.MaxAge)
				assert.Equal(t, 25, *q.MinAge)
				assert.Equal(t, 30, *q.MaxAge)
				assert.Equal(t, "teacher", q.Search)
				assert.True(t, q.SortDesc)
				assert.Equal(t, int64(2), q.Page)
				assert.Equal(t, int64(10), q.Limit)
			},
		},
		{
			name:     "non-numeric ages are treated as absent",
			rawQuery: "minAge=abc&maxAge=",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Nil(t, q.MinAge)
				assert.Nil(t, q.MaxAge)
			},
		},
		{
			name:     "non-numeric page and limit fall back to defaults",
			rawQuery: "page=first&limit=lots",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Equal(t, int64(1), q.Page)
				assert.Equal(t, int64(0), q.Limit)
			},
		},
		{
			name:     "non-positive page and limit fall back to defaults",
			rawQuery: "page=0&limit=-5",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Equal(t, int64(1), q.Page)
				assert.Equal(t, int64(0), q.Limit)
			},
		},
		{
			name:     "sort values other than desc stay ascending",
			rawQuery: "sort=ascending",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.False(t, q.SortDesc)
			},
		},
		{
			name:     "unknown parameters are ignored",
			rawQuery: "favouriteColour=blue",
			check: func(t *testing.T, q database.BiodataQuery) {
				assert.Equal(t, database.BiodataQuery{Page: 1}, q)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := queryContext(t, tt.rawQuery)
			tt.check(t, parseBiodataQuery(c))
		})
	}
}

type failingAllocator struct{}

func (failingAllocator) NextID(ctx context.Context, sequence string) (int64, error) {
	return 0, errors.New("storage unavailable")
}

// When allocation fails the handler must abort before any insert; a
// biodata never exists without its id.
func TestCreateBiodataAbortsOnAllocationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &Handler{
		Store: &database.Store{},
		Cfg:   &config.Config{},
		Alloc: failingAllocator{},
	}

	router := gin.New()
	router.POST("/biodatas", func(c *gin.Context) {
		c.Set(middleware.ContextEmail, "a@x.com")
		h.CreateBiodata(c)
	})

	body := []byte(`{"biodataType":"Female","name":"Asha","age":27}`)
	req := httptest.NewRequest(http.MethodPost, "/biodatas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create biodata")
}

func TestCreateBiodataRejectsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &Handler{
		Store: &database.Store{},
		Cfg:   &config.Config{},
		Alloc: failingAllocator{},
	}

	router := gin.New()
	router.POST("/biodatas", func(c *gin.Context) {
		c.Set(middleware.ContextEmail, "a@x.com")
		h.CreateBiodata(c)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing required fields", body: `{"name":"Asha"}`},
		{name: "non-positive age", body: `{"biodataType":"Female","name":"Asha","age":0}`},
		{name: "not json", body: `age=27`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/biodatas", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
