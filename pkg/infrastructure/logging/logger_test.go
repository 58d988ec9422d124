package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("debug")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be enabled")
	}

	logger, err = New("warn")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info level to be disabled at warn")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Error("Expected error for unknown level, got none")
	}
}
