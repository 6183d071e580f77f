package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFrom(ctx); got != "req-123" {
		t.Errorf("RequestIDFrom() = %q, want req-123", got)
	}
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("空上下文应返回空串, got %q", got)
	}
}

func TestWithContextCarriesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-456")

	var buf bytes.Buffer
	l := WithContext(ctx).Output(&buf)
	l.Info().Msg("测试")

	if !strings.Contains(buf.String(), "req-456") {
		t.Errorf("日志行未携带请求ID: %s", buf.String())
	}
}

func TestWithContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := WithContext(context.Background()).Output(&buf)
	l.Info().Msg("测试")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("无请求ID时不应出现 request_id 字段: %s", buf.String())
	}
}
