package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// WriteDefaultConfig writes the default config.yaml to path. An existing
// file is left alone unless force is set, in which case it is renamed to a
// timestamped backup first.
func WriteDefaultConfig(path string, force bool) error {
	exists := false

	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case err == nil && pathInfo.Mode().IsRegular():
			exists = true
		case pathInfo.IsDir():
			return fmt.Errorf("%s: path is a directory", path)
		default:
			return fmt.Errorf("%s: unknown file state", path)
		}
	}

	if exists && !force {
		slog.Debug("configuration file already exists, skipping write",
			slog.String("path", path),
		)

		return nil
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if exists {
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)
		slog.Info("backing up existing config file",
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return fmt.Errorf("rename existing config file to backup: %w", err)
		}
	}

	slog.Info("write default configuration",
		slog.String("path", path),
	)

	err = os.WriteFile(path, defaultConfigYAML, 0o600)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func readFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if pathInfo.IsDir() {
		return nil, fmt.Errorf("%s: path is a directory", path)
	}
	if !pathInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: unknown file state", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
