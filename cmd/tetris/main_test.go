package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestWithGameLogClosesOnError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	boom := errors.New("terminal lost")
	err := withGameLog(func(l *log.Logger) error {
		if l == nil {
			t.Fatal("expected a file logger")
		}
		l.Error("run failed", "error", boom)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, expected %v", err, boom)
	}

	data, readErr := os.ReadFile(filepath.Join(home, ".tetris", "tetris.log"))
	if readErr != nil {
		t.Fatalf("read log: %v", readErr)
	}
	if !strings.Contains(string(data), "terminal lost") {
		t.Errorf("log = %q, expected the run error", data)
	}
}
