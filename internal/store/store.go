// Package store provides loading of the static classification configuration:
// the category map and the customer tier thresholds.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store manages loading of category and tier configuration files.
// Both artifacts are loaded once at startup and never mutated afterwards.
type Store struct {
	CategoriesFile string
	TiersFile      string
}

// NewStore creates a new store for classification configuration.
func NewStore(categoriesFile, tiersFile string) *Store {
	return &Store{
		CategoriesFile: categoriesFile,
		TiersFile:      tiersFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Fall back to the user config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "challan-analytics", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the category map from the YAML file.
// When the file does not exist the built-in default map is returned, so a
// bare checkout still classifies the standard product range.
func (s *Store) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Categories file not found, using built-in defaults: %s", filename)
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(config.Categories) == 0 {
		log.Warnf("Categories file %s contains no categories, using built-in defaults", filePath)
		return DefaultCategories(), nil
	}

	log.Debugf("Loaded %d categories from %s", len(config.Categories), filePath)
	return config.Categories, nil
}

// LoadTiers loads the customer tier thresholds from the YAML file.
// When the file does not exist the built-in thresholds are returned.
func (s *Store) LoadTiers() ([]models.TierConfig, error) {
	filename := s.TiersFile
	if filename == "" {
		filename = "tiers.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Tiers file not found, using built-in defaults: %s", filename)
			return DefaultTiers(), nil
		}
		return nil, fmt.Errorf("error resolving tiers file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading tiers file: %w", err)
	}

	var config models.TiersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing tiers file: %w", err)
	}

	if len(config.Tiers) == 0 {
		log.Warnf("Tiers file %s contains no tiers, using built-in defaults", filePath)
		return DefaultTiers(), nil
	}

	log.Debugf("Loaded %d tiers from %s", len(config.Tiers), filePath)
	return config.Tiers, nil
}

// SaveCategories writes the category map to the configured YAML file.
// Used by `validate --write-defaults` to materialize the built-in map for editing.
func (s *Store) SaveCategories(categories []models.CategoryConfig) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshalling categories: %w", err)
	}

	if err := os.WriteFile(filename, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.Infof("Wrote %d categories to %s", len(categories), filename)
	return nil
}
