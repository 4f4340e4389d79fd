package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	r := gin.New()
	r.GET("/me", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "email": c.GetString(ContextEmail)})
	})
	return r
}

func testJWT(ttl time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-secret",
		AccessTokenExp:  ttl,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "registrar-test",
	})
}

func TestJWTAuth(t *testing.T) {
	jwtService := testJWT(time.Hour)
	pair, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "admin@example.com"})
	require.NoError(t, err)
	router := newTestRouter(jwtService)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"bearer", "Bearer " + pair.AccessToken, http.StatusOK},
		{"raw token", pair.AccessToken, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"email":"admin@example.com"}`, w.Body.String())
			}
		})
	}
}

func TestJWTAuthExpired(t *testing.T) {
	jwtService := testJWT(-time.Minute)
	pair, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "admin@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	newTestRouter(jwtService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_006")
}
