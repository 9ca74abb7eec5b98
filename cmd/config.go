package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-rt/engine/config"
)

// loadConfig reads the file given with --config, or returns the defaults when the flag is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		logger.Info("no configuration file given; using defaults")
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded configuration from %s", path)
	return cfg, nil
}

// assetDir is the directory model paths in the configuration file are relative to.
func assetDir(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected x,y,z; got %q", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
