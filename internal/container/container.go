// Package container provides dependency injection for the pocket-ledger
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fjacquet/pocket-ledger/internal/config"
	"fjacquet/pocket-ledger/internal/export"
	"fjacquet/pocket-ledger/internal/ledger"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
	"fjacquet/pocket-ledger/internal/store"
)

// Options overrides parts of the wiring, mainly for tests.
type Options struct {
	// Logger replaces the logger built from config.
	Logger logging.Logger
	// Store replaces the backend selected by storage.driver.
	Store store.Store
	// Now replaces the wall clock used for ids and export dates.
	Now func() time.Time
}

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      store.Store
	categories models.CategorySet
	ledger     *ledger.Ledger
	restored   ledger.RestoreResult
	exporters  map[string]export.Exporter
	now        func() time.Time
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions is NewContainer with overrides. The ledger is
// hydrated from the store before it is returned; a store that cannot be read
// is an error, so that a later save cannot overwrite data that is still on
// disk.
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := opts.Logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	categoryStore := store.NewCategoryStore(cfg.Ledger.CategoriesFile, logger, cfg.Storage.Directory)
	categories, err := categoryStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	st := opts.Store
	if st == nil {
		st, err = store.Open(cfg.Storage.Driver, cfg.Storage.Directory, cfg.Storage.Key, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
	}

	records, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	l := ledger.New(st, logger, ledger.Options{
		Categories:     categories,
		CategoryPolicy: cfg.Ledger.CategoryPolicy,
		Now:            now,
	})
	restored := l.Restore(records)

	exporters := map[string]export.Exporter{
		export.FormatCSV: export.NewCSVExporter(export.CSVOptions{
			Delimiter:      cfg.Delimiter(),
			IncludeHeaders: cfg.CSV.IncludeHeaders,
			Currency:       cfg.Currency.Code,
			DateFormat:     cfg.Display.DateFormat,
		}, logger),
		export.FormatPDF: export.NewPDFExporter(export.PDFOptions{
			Title:       cfg.PDF.Title,
			Orientation: cfg.PDF.Orientation,
			Currency:    cfg.Currency.Code,
			DateFormat:  cfg.Display.DateFormat,
		}, logger),
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDriver, cfg.Storage.Driver),
		logging.F(logging.FieldStorageKey, st.Key()),
		logging.F(logging.FieldCount, restored.Loaded),
		logging.F(logging.FieldDropped, restored.Dropped))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      st,
		categories: categories,
		ledger:     l,
		restored:   restored,
		exporters:  exporters,
		now:        now,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the persistence backend.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetLedger returns the hydrated ledger.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetCategories returns the category reference data.
func (c *Container) GetCategories() models.CategorySet {
	return c.categories
}

// RestoreResult reports how the stored snapshot was applied at startup.
func (c *Container) RestoreResult() ledger.RestoreResult {
	return c.restored
}

// GetExporter returns the exporter for format ("csv" or "pdf").
func (c *Container) GetExporter(format string) (export.Exporter, error) {
	exp, ok := c.exporters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
	return exp, nil
}

// ExportFormats lists the supported export formats.
func (c *Container) ExportFormats() []string {
	formats := make([]string, 0, len(c.exporters))
	for f := range c.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Now returns the container's clock reading.
func (c *Container) Now() time.Time {
	return c.now()
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
