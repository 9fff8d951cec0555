package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonirMohammed1995/matrimony-management-server/config"
	"github.com/MonirMohammed1995/matrimony-management-server/middleware"
)

func TestIssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := &Handler{
		Cfg: &config.Config{
			JWT: config.JWTConfig{Secret: "test-secret", Expiry: time.Hour},
		},
	}

	router := gin.New()
	router.POST("/jwt", h.IssueToken)

	t.Run("issues a verifiable token carrying the email", func(t *testing.T) {
		body := []byte(`{"email":"a@x.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		claims, err := middleware.ParseToken(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Greater(t, claims.ExpiresAt.Unix(), time.Now().Unix())
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
