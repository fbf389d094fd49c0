package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultCategoriesFile is the file name searched for category overrides.
const DefaultCategoriesFile = "categories.yaml"

// CategoryStore loads the category reference data from YAML.
type CategoryStore struct {
	CategoriesFile string
	// SearchDirs are tried in order for relative file names, after the
	// working directory.
	SearchDirs []string
	logger     logging.Logger
}

// NewCategoryStore creates a store for the category file.
func NewCategoryStore(categoriesFile string, logger logging.Logger, searchDirs ...string) *CategoryStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		SearchDirs:     searchDirs,
		logger:         logger,
	}
}

// FindConfigFile looks for filename in the standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, dir := range s.SearchDirs {
		if dir != "" {
			locations = append(locations, filepath.Join(dir, filename))
		}
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".pocket-ledger", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadCategories reads the category sets. A missing file yields the
// defaults; a kind absent from the file keeps its default list.
func (s *CategoryStore) LoadCategories() (models.CategorySet, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = DefaultCategoriesFile
	}

	defaults := models.DefaultCategories()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Categories file not found, using defaults", logging.F(logging.FieldFile, filename))
		return defaults, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return models.CategorySet{}, fmt.Errorf("error reading categories file: %w", err)
	}

	var set models.CategorySet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return models.CategorySet{}, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}

	if len(set.Income) == 0 {
		set.Income = defaults.Income
	}
	if len(set.Expense) == 0 {
		set.Expense = defaults.Expense
	}

	s.logger.Debug("Loaded categories",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(set.Income)+len(set.Expense)))
	return set, nil
}
