package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/integration/adapters"
)

func newAuthTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID.String()})
	})
	return engine
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenService := adapters.NewTokenService("test-secret", time.Hour)
	engine := newAuthTestRouter(NewAuthMiddleware(tokenService))

	userID := uuid.New()
	validToken, err := tokenService.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	expiredService := adapters.NewTokenService("test-secret", -time.Minute)
	expiredToken, err := expiredService.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("failed to issue expired token: %v", err)
	}

	foreignService := adapters.NewTokenService("other-secret", time.Hour)
	foreignToken, err := foreignService.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("failed to issue foreign token: %v", err)
	}

	t.Run("valid token passes and exposes the user ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["userId"] != userID.String() {
			t.Errorf("expected user ID %s, got %s", userID, body["userId"])
		}
	})

	rejections := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{"missing header", func(*http.Request) {}},
		{"not a bearer token", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic abc123")
		}},
		{"empty bearer token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer ")
		}},
		{"garbage token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not-a-jwt")
		}},
		{"expired token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+expiredToken)
		}},
		{"wrong signing secret", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+foreignToken)
		}},
	}

	var firstBody string
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			// Every rejection must produce the identical body.
			if firstBody == "" {
				firstBody = rec.Body.String()
			} else if rec.Body.String() != firstBody {
				t.Errorf("rejection bodies differ: %q vs %q", firstBody, rec.Body.String())
			}
		})
	}
}
