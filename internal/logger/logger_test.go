package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRotatesFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "ridgeline.log")

	// 1 MB is the smallest size lumberjack rotates at.
	l, err := New(Options{
		Level: "debug",
		File:  FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	session := l.Named("session")
	pad := strings.Repeat("x", 200)
	for i := 0; i < 6000; i++ {
		session.Debug("tick", zap.Int("frame", i), zap.String("pad", pad))
	}
	_ = l.Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("active log file missing: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if name := e.Name(); name != "ridgeline.log" && strings.HasPrefix(name, "ridgeline-") {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) == 0 {
		t.Fatalf("no rotated files in %v", entries)
	}
	for _, name := range rotated {
		// Backups carry a local timestamp: ridgeline-2006-01-02T15-04-05.000.log
		if !strings.HasSuffix(name, ".log") || !strings.Contains(name, "T") {
			t.Errorf("unexpected backup name %s", name)
		}
	}
}

func TestInitWithOptionsFiltersLevels(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = InitWithOptions(Options{}) })

	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warning", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"WARNING", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"Debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			err := InitWithOptions(Options{Level: tt.level, File: FileConfig{Path: logFile, MaxSizeMB: 10}})
			if err != nil {
				t.Fatalf("InitWithOptions() error = %v", err)
			}

			game := Named("game")
			game.Debug("spawned")
			game.Info("terrain built")
			game.Warn("unseeded noise")
			game.Error("upload failed")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)
			if !strings.Contains(out, "game") {
				t.Errorf("component name missing from output:\n%s", out)
			}
			for _, lvl := range tt.visible {
				if !strings.Contains(out, lvl) {
					t.Errorf("expected %s entries at level %s", lvl, tt.level)
				}
			}
			for _, lvl := range tt.hidden {
				if strings.Contains(out, lvl) {
					t.Errorf("unexpected %s entries at level %s", lvl, tt.level)
				}
			}
		})
	}
}

func TestInitUsesDefaultRotation(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "default.log")
	want := FileConfig{Path: logFile, MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got := DefaultFileConfig(logFile); got != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", got, want)
	}

	if err := Init("warn", logFile); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = InitWithOptions(Options{}) })

	Named("config").Warn("collision falls back to analytic")
	Named("config").Info("loaded")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if out := string(content); !strings.Contains(out, "collision falls back") || strings.Contains(out, "loaded") {
		t.Errorf("unexpected default log output:\n%s", out)
	}
}

func TestNewLeavesGlobalAlone(t *testing.T) {
	before := Log
	logFile := filepath.Join(t.TempDir(), "session.log")

	l, err := New(Options{Level: "info", File: FileConfig{Path: logFile, MaxSizeMB: 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if Log != before {
		t.Error("New() replaced the global logger")
	}

	l.Named("terrain").Info("mesh built", zap.Int("vertices", 10201))
	_ = l.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"terrain", "mesh built", "vertices", "10201"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log output missing %q:\n%s", want, content)
		}
	}
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Error("logger without outputs should discard everything")
	}
	if Nop().Core().Enabled(zap.ErrorLevel) {
		t.Error("Nop() should discard everything")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
