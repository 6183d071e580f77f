package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKey(t *testing.T) {
	mw := APIKey(APIKeyConfig{
		Key:       "secret-key",
		SkipPaths: []string{"/health"},
	})
	h := mw(okHandler())

	tests := []struct {
		name   string
		path   string
		header map[string]string
		want   int
	}{
		{"缺少密钥", "/api/v1/schedule/generate", nil, http.StatusUnauthorized},
		{"错误密钥", "/api/v1/schedule/generate", map[string]string{"X-API-Key": "wrong"}, http.StatusUnauthorized},
		{"X-API-Key正确", "/api/v1/schedule/generate", map[string]string{"X-API-Key": "secret-key"}, http.StatusOK},
		{"Bearer正确", "/api/v1/schedule/generate", map[string]string{"Authorization": "Bearer secret-key"}, http.StatusOK},
		{"跳过路径", "/health", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tt.want {
				t.Errorf("状态码 = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAPIKeyDisabledWhenEmpty(t *testing.T) {
	h := APIKey(APIKeyConfig{})(okHandler())
	r := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/generate", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("未配置密钥时应放行, 状态码 = %d", w.Code)
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("状态码 = %d, want 500", w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(okHandler())
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}
