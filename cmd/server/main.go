// ZhiPai 智能排班服务
// 主程序入口
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/zhipai/zhipai/internal/config"
	"github.com/zhipai/zhipai/internal/database"
	"github.com/zhipai/zhipai/internal/handler"
	"github.com/zhipai/zhipai/internal/metrics"
	"github.com/zhipai/zhipai/internal/middleware"
	"github.com/zhipai/zhipai/internal/repository"
	"github.com/zhipai/zhipai/internal/service"
	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/solver"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 加载 .env（不存在则忽略）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logFormat := "console"
	if cfg.IsProduction() {
		logFormat = "json"
	}
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: logFormat,
	})

	fmt.Printf("ZhiPai 智能排班 v%s\n", Version)
	fmt.Printf("Build: %s (%s)\n", BuildTime, GitCommit)
	fmt.Println()

	// 数据库
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error().Err(err).Msg("数据库连接失败")
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureSchema(ctx); err != nil {
		cancel()
		logger.Error().Err(err).Msg("初始化数据库结构失败")
		os.Exit(1)
	}
	cancel()

	// 组装依赖
	store := repository.NewStore(db)
	optimizer := solver.New(solver.Config{
		TimeBudget:            cfg.Solver.TimeBudget,
		Workers:               cfg.Solver.Workers,
		MinRestHours:          cfg.Solver.MinRestHours,
		PreferenceWeight:      cfg.Solver.PreferenceWeight,
		WeekendFairnessWeight: cfg.Solver.WeekendFairnessWeight,
		BalanceWeight:         cfg.Solver.BalanceWeight,
	})
	m := metrics.New()
	svc := service.NewScheduleService(store, optimizer, m)

	scheduleHandler := handler.NewScheduleHandler(svc)
	statsHandler := handler.NewStatsHandler(svc)

	port := strconv.Itoa(cfg.App.Port)
	globalRateLimiter = NewRateLimiter(float64(cfg.API.RateLimit))

	// 创建 HTTP 服务器
	mux := http.NewServeMux()

	// ========================================
	// 系统端点
	// ========================================

	// 健康检查端点
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Health(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded","service":"zhipai","database":"down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"zhipai"}`))
	})

	// 版本信息端点
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","build_time":"%s","git_commit":"%s"}`, Version, BuildTime, GitCommit)
	})

	// ========================================
	// API v1 端点
	// ========================================

	// API 根路由
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "ZhiPai 智能排班 API v1",
			"endpoints": {
				"schedule": {
					"generate": "POST /api/v1/schedule/generate",
					"conflicts": "GET /api/v1/schedule/conflicts",
					"optimize": "POST /api/v1/schedule/optimize"
				},
				"stats": {
					"coverage": "GET /api/v1/stats/coverage",
					"fairness": "GET /api/v1/stats/fairness"
				}
			}
		}`))
	})

	// 排班生成 API
	mux.HandleFunc("/api/v1/schedule/generate", scheduleHandler.Generate)

	// 冲突检查 API
	mux.HandleFunc("/api/v1/schedule/conflicts", scheduleHandler.Conflicts)

	// 重排优化 API
	mux.HandleFunc("/api/v1/schedule/optimize", scheduleHandler.Optimize)

	// ========================================
	// 统计分析 API
	// ========================================

	// 覆盖率分析 API
	mux.HandleFunc("/api/v1/stats/coverage", statsHandler.Coverage)

	// 公平性分析 API
	mux.HandleFunc("/api/v1/stats/fairness", statsHandler.Fairness)

	// ========================================
	// 监控端点
	// ========================================

	// Prometheus 指标端点
	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, m.Handler())
	}

	// ========================================
	// 中间件
	// ========================================

	// 中间件执行顺序：recovery -> requestID -> rateLimit -> cors -> apiKey -> logging -> handler
	authMiddleware := middleware.APIKey(middleware.APIKeyConfig{
		Key:       cfg.API.Key,
		SkipPaths: []string{"/health", "/version", cfg.Metrics.Path},
	})
	root := middleware.Recovery(
		requestIDMiddleware(
			rateLimitMiddleware(
				corsMiddleware(
					middleware.SecurityHeaders(
						authMiddleware(
							loggingMiddleware(m, mux)))))))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      root,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.API.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info().
			Str("port", port).
			Str("version", Version).
			Str("env", cfg.App.Env).
			Str("url", fmt.Sprintf("http://localhost:%s", port)).
			Str("api_docs", fmt.Sprintf("http://localhost:%s/api/v1/", port)).
			Msg("服务器启动")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("服务器启动失败")
			os.Exit(1)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("正在关闭服务器...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
		os.Exit(1)
	}

	logger.Info().Msg("服务器已关闭")
}

// requestIDMiddleware 请求ID追踪中间件
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 尝试从请求头获取 Request ID，没有则生成新的
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware 日志中间件
func loggingMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := logger.RequestIDFrom(r.Context())

		// 包装ResponseWriter以捕获状态码
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Msg("请求处理")

		m.ObserveHTTPRequest(r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

// responseWriter 包装ResponseWriter以捕获状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RateLimiter 简单的令牌桶限流器
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // 每秒添加的令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter 创建限流器
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     requestsPerSecond,
		maxTokens:  requestsPerSecond * 2, // 允许突发流量
		refillRate: requestsPerSecond,
		lastRefill: time.Now(),
	}
}

// Allow 检查是否允许请求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

var globalRateLimiter = NewRateLimiter(100) // 默认 100 QPS

// rateLimitMiddleware 限流中间件
func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !globalRateLimiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":   true,
				"code":    "RATE_LIMITED",
				"message": "请求过于频繁，请稍后重试",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware CORS中间件
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
