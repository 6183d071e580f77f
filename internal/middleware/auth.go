// Package middleware 提供HTTP中间件
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/zhipai/zhipai/pkg/logger"
)

// APIKeyConfig API密钥认证配置
type APIKeyConfig struct {
	Key       string   // 为空时关闭认证
	SkipPaths []string // 跳过认证的路径前缀
}

// APIKey API密钥认证中间件
// 密钥从 X-API-Key 请求头或 Authorization: Bearer 中提取
func APIKey(cfg APIKeyConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Key == "" {
				next.ServeHTTP(w, r)
				return
			}

			for _, path := range cfg.SkipPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			apiKey := extractAPIKey(r)
			if apiKey == "" {
				writeAuthError(w, http.StatusUnauthorized, "missing_api_key", "API密钥未提供")
				return
			}
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(cfg.Key)) != 1 {
				logger.Warn().Str("path", r.URL.Path).Msg("API密钥验证失败")
				writeAuthError(w, http.StatusUnauthorized, "invalid_api_key", "无效的API密钥")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractAPIKey 从请求中提取API密钥
func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":true,"code":"` + code + `","message":"` + message + `"}`))
}

// SecurityHeaders 安全头中间件
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")

		next.ServeHTTP(w, r)
	})
}

// Recovery 恢复中间件（捕获panic）
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error().
					Interface("panic", err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("请求处理panic")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":true,"code":"INTERNAL","message":"服务器内部错误"}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
