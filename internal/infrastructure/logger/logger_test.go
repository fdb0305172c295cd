package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"WARN", zapcore.WarnLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewProducesWorkingLogger(t *testing.T) {
	l := New(Config{Level: "debug", Format: "json", Output: "stdout"})
	require.NotNil(t, l)
	l.Debug("hello")
}

func TestContextRoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := context.Background()

	ctx, enriched := WithRequestID(ctx, base, "req-1")
	require.NotNil(t, enriched)
	assert.Equal(t, "req-1", GetRequestID(ctx))

	ctx, _ = WithRestaurantID(ctx, enriched, "rest-1")
	assert.Equal(t, "rest-1", GetRestaurantID(ctx))

	ctx, _ = WithUserID(ctx, enriched, "user-1")
	assert.Equal(t, "user-1", GetUserID(ctx))

	assert.NotNil(t, FromContext(ctx))
}

func TestFromContextEmpty(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	// No-op logger must be safe to use
	l.Info("ignored")
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	r := gin.New()
	r.Use(GinMiddleware(l))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestGinMiddlewareWarnsOnClientError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	r := gin.New()
	r.Use(GinMiddleware(l))
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	l := zap.New(core)

	r := gin.New()
	r.Use(Recovery(l))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "Panic recovered", logs.All()[0].Message)
}

func TestGetGinLoggerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	l := GetGinLogger(c)
	require.NotNil(t, l)
}

func TestGormLoggerLogMode(t *testing.T) {
	base := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	changed := base.LogMode(gormlogger.Silent)
	require.NotSame(t, base, changed)
}

func TestGormLoggerTraceSlowQuery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Warn)

	begin := timeNowMinus(500)
	gl.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "SLOW SQL")
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Error)

	gl.Trace(context.Background(), timeNowMinus(1), func() (string, int64) {
		return "SELECT * FROM orders", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Empty(t, logs.All())
}

func timeNowMinus(ms int) time.Time {
	return time.Now().Add(-time.Duration(ms) * time.Millisecond)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("bogus"))
}
