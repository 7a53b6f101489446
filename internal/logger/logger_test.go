package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	Setup("debug")
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		Setup("info")
	})

	ctx := ContextWithRequestID(context.Background(), "req-123")
	WithContext(ctx).WithField("tab", "TASKS").Debug("cache miss")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "TASKS", line["tab"])
	assert.Equal(t, "cache miss", line["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	l := WithContext(context.Background())
	_, ok := l.Data["request_id"]
	assert.False(t, ok)
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	Setup("loud")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
