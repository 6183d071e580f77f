// Package logger 提供统一的日志框架
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config 日志配置
type Config struct {
	Level      string `json:"level"`
	Format     string `json:"format"` // json/console
	Output     string `json:"output"` // stdout/stderr
	TimeFormat string `json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(parseLevel(cfg.Level))

		var output io.Writer = os.Stdout
		if cfg.Output == "stderr" {
			output = os.Stderr
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// ctxKeyRequestID 请求ID的上下文键
type ctxKeyRequestID struct{}

// WithRequestID 将请求ID写入上下文
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, requestID)
}

// RequestIDFrom 从上下文取出请求ID，没有则返回空串
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

// WithContext 从上下文创建日志器（带请求ID）
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Get().With().Logger()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With().Str("request_id", reqID).Logger()
	}
	return &l
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal 记录致命错误日志
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// SolverLogger 求解器专用日志器
type SolverLogger struct {
	base *zerolog.Logger
}

// NewSolverLogger 创建求解器日志器
func NewSolverLogger() *SolverLogger {
	l := Get().With().Str("component", "solver").Logger()
	return &SolverLogger{base: &l}
}

// StartSolve 记录求解开始
func (l *SolverLogger) StartSolve(employees, shifts, constraints int) {
	l.base.Info().
		Int("employees", employees).
		Int("shifts", shifts).
		Int("constraints", constraints).
		Msg("开始构建排班模型")
}

// ModelBuilt 记录模型构建完成
func (l *SolverLogger) ModelBuilt(boolVars, hourVars int) {
	l.base.Debug().
		Int("assignment_vars", boolVars).
		Int("hour_vars", hourVars).
		Msg("排班模型构建完成")
}

// SolveFinished 记录求解结束
func (l *SolverLogger) SolveFinished(status string, objective float64, elapsed time.Duration) {
	l.base.Info().
		Str("status", status).
		Float64("objective", objective).
		Dur("elapsed", elapsed).
		Msg("CP-SAT 求解结束")
}

// FallbackTriggered 记录降级为启发式分配
func (l *SolverLogger) FallbackTriggered(reason string) {
	l.base.Warn().
		Str("reason", reason).
		Msg("求解失败，降级为轮转启发式分配")
}

// SolveComplete 记录本次优化完成
func (l *SolverLogger) SolveComplete(status string, assignments int, coverage float64, elapsed time.Duration) {
	l.base.Info().
		Str("status", status).
		Int("assignments", assignments).
		Float64("coverage", coverage).
		Dur("elapsed", elapsed).
		Msg("排班优化完成")
}
