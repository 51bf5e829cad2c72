package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envLogLevel  = "ROOTFIND_LOG_LEVEL"
	envLogFormat = "ROOTFIND_LOG_FORMAT"
	envParallel  = "ROOTFIND_PARALLEL"
	envScenario  = "ROOTFIND_SCENARIO"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
// Variables already set in the process environment are kept.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// envInt parses an integer environment variable; unset means def.
func envInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
