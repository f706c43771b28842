package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	Clipboard     bool
	Seed          uint64
	CellWidth     float64
	CellHeight    float64
	LogFile       string
	LogLevel      Level
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		Clipboard:     true,
		CellWidth:     10,
		CellHeight:    18,
		LogLevel:      LevelInfo,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".railtyperc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir", "save_dir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "clipboard", "copy":
			config.Clipboard = strings.ToLower(value) == "true"
		case "seed":
			if seed, err := strconv.ParseUint(value, 10, 64); err == nil {
				config.Seed = seed
			}
		case "cellwidth", "cell_width":
			if w, err := strconv.ParseFloat(value, 64); err == nil && w > 0 {
				config.CellWidth = w
			}
		case "cellheight", "cell_height":
			if h, err := strconv.ParseFloat(value, 64); err == nil && h > 0 {
				config.CellHeight = h
			}
		case "logfile", "log_file", "log":
			config.LogFile = expandPath(value, homeDir)
		case "loglevel", "log_level":
			config.LogLevel = LevelFromString(value)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath places filename in the save directory, creating it if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
