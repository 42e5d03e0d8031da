package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()
	for _, c := range []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
	} {
		path := filepath.Join(dir, "level_"+c.level+".log")
		if err := InitWithFileConfig(c.level, DefaultFileConfig(path), false); err != nil {
			t.Fatal(err)
		}
		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")
		Sync()

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range c.expected {
			if !strings.Contains(string(b), s) {
				t.Errorf("%s: expected %s in log", c.level, s)
			}
		}
		for _, s := range c.excluded {
			if strings.Contains(string(b), s) {
				t.Errorf("%s: unexpected %s in log", c.level, s)
			}
		}
	}
	Set(zap.NewNop())
}

func TestInvalidLevel(t *testing.T) {
	l := zap.NewExample()
	Set(l)
	defer Set(zap.NewNop())

	if err := InitWithFileConfig("loud", FileConfig{}, false); err == nil {
		t.Error("invalid level should fail")
	}
	if Log != l {
		t.Error("logger should be kept on error")
	}
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	Info("ignored")
	Warn("missing file", zap.String("name", "Cube"))

	if logs.Len() != 1 {
		t.Fatal("expected 1 entry, got", logs.Len())
	}
	e := logs.All()[0]
	if e.Message != "missing file" || e.ContextMap()["name"] != "Cube" {
		t.Error("unexpected entry", e)
	}
}
