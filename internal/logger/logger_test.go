package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("dropped")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("ctx check")
	assert.Contains(t, buf.String(), "ctx check")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)

	got.Info().Msg("req check")
	assert.Contains(t, buf.String(), "req check")
}
