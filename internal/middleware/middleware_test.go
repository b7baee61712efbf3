package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "gulfacorns/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestMigrationToken(t *testing.T) {
	tests := []struct {
		name            string
		configuredToken string
		requestToken    string
		wantStatus      int
		wantErrorCode   string
	}{
		{
			name:            "valid_token",
			configuredToken: "secret-migrate-token",
			requestToken:    "secret-migrate-token",
			wantStatus:      http.StatusOK,
		},
		{
			name:            "invalid_token",
			configuredToken: "secret-migrate-token",
			requestToken:    "wrong-token",
			wantStatus:      http.StatusUnauthorized,
			wantErrorCode:   "INVALID_MIGRATION_TOKEN",
		},
		{
			name:            "missing_token",
			configuredToken: "secret-migrate-token",
			wantStatus:      http.StatusUnauthorized,
			wantErrorCode:   "INVALID_MIGRATION_TOKEN",
		},
		{
			name:          "not_configured",
			requestToken:  "any-token",
			wantStatus:    http.StatusServiceUnavailable,
			wantErrorCode: "MIGRATIONS_NOT_CONFIGURED",
		},
		{
			name:            "partial_match_rejected",
			configuredToken: "secret-migrate-token",
			requestToken:    "secret-migrate",
			wantStatus:      http.StatusUnauthorized,
			wantErrorCode:   "INVALID_MIGRATION_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(MigrationToken(tt.configuredToken))
			r.POST("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodPost, "/test", http.NoBody)
			if tt.requestToken != "" {
				req.Header.Set(MigrationTokenHeader, tt.requestToken)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantErrorCode != "" {
				if code := errorCode(t, rec); code != tt.wantErrorCode {
					t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
				}
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app_error",
			err:        apperrors.ErrNoRuleConfigured,
			wantStatus: http.StatusBadRequest,
			wantCode:   "NO_RULE_CONFIGURED",
		},
		{
			name:       "wrapped_persistence_failure",
			err:        apperrors.Wrap(apperrors.ErrPersistenceFailure, errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PERSISTENCE_FAILURE",
		},
		{
			name:       "unexpected_error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/test", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("error code = %q, want %q", code, tt.wantCode)
			}
		})
	}

	t.Run("no_error_passes_through", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

		id := rec.Header().Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected generated UUID, got %q", id)
		}
		if rec.Body.String() != id {
			t.Errorf("expected context request ID %q, got %q", id, rec.Body.String())
		}
	})

	t.Run("reuses_incoming_id", func(t *testing.T) {
		incoming := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(requestIDHeader, incoming)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != incoming {
			t.Errorf("expected %q, got %q", incoming, got)
		}
	})

	t.Run("normalizes_incoming_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(requestIDHeader, "0190A6E4-3B1C-7D2E-8F00-0123456789AB")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "0190a6e4-3b1c-7d2e-8f00-0123456789ab" {
			t.Errorf("expected canonical request ID, got %q", got)
		}
	})

	t.Run("replaces_malformed_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(requestIDHeader, "<script>")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got == "<script>" {
			t.Error("expected malformed request ID to be replaced")
		}
	})
}

func TestDemoUser(t *testing.T) {
	r := gin.New()
	r.Use(DemoUser("user-123"))
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	if rec.Body.String() != "user-123" {
		t.Errorf("expected user-123, got %q", rec.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if code := errorCode(t, rec); code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", code)
	}
}
