package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ghalymotors/showroom/internal/utils"
	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/storage"
)

// loadCatalog performs the one-shot catalog fetch.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	url, err := catalogURL()
	if err != nil {
		return nil, err
	}
	return catalog.NewFetcher(url).Fetch(ctx)
}

// openStateDB opens the state database at the configured path, creating it
// (and its schema) if needed.
func openStateDB() (*storage.DB, error) {
	path, err := utils.GetAbsDBPath(viper.GetString("storage.path"))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// lockStateDB takes the cross-process write lock for mutating commands.
func lockStateDB() (*utils.DBLock, error) {
	lock, err := utils.NewDBLock(viper.GetString("storage.path"))
	if err != nil {
		return nil, err
	}
	if err := lock.Lock(); err != nil {
		return nil, err
	}
	return lock, nil
}
