package utils

import (
	"os"
	"path/filepath"
)

// TryWriteFile writes files the player asked for, where a failure is
// reported to the player instead of crashing the game. Missing folders are
// created.
func TryWriteFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}
