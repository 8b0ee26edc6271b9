package cli

import (
	"fmt"

	"github.com/ppiankov/calsigns/internal/host"
	"github.com/ppiankov/calsigns/internal/model"
	"github.com/ppiankov/calsigns/internal/signs"
	"go.uber.org/zap"
)

// resolveTables returns the enabled tables, applying overrides from the tables file
func resolveTables(cfg *model.Config) ([]*model.SignTable, error) {
	var overrides map[string]*model.SignTable
	if cfg.TablesFile != "" {
		loaded, err := signs.LoadTables(cfg.TablesFile)
		if err != nil {
			return nil, fmt.Errorf("load tables: %w", err)
		}
		overrides = loaded
		logger.Debug("Loaded table overrides",
			zap.String("path", cfg.TablesFile),
			zap.Int("tables", len(loaded)))
	}

	tables, err := signs.Resolve(cfg.Systems, overrides)
	if err != nil {
		return nil, fmt.Errorf("resolve systems: %w", err)
	}
	return tables, nil
}

// buildRegistry creates the host registry for the effective configuration
func buildRegistry(cfg *model.Config) (*host.Registry, error) {
	tables, err := resolveTables(cfg)
	if err != nil {
		return nil, err
	}

	reg, err := host.NewRegistry(cfg.Host.EntryID, cfg.Host.DeviceName, tables, logger)
	if err != nil {
		return nil, fmt.Errorf("create registry: %w", err)
	}
	return reg, nil
}
