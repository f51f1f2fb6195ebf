package config

import (
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir, keeping any file
// that already exists, and returns the loaded result.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(dir, ConfigurationName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Printf("Creating %s", configPath)
		if err := os.WriteFile(configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		logger.Printf("Found existing %s", configPath)
	}

	return Load(dir)
}
