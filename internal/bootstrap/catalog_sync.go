package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/SpaceBot_Go/internal/catalog"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/server"
)

// SyncCatalog seeds shop items, jobs and stocks from the catalog file.
// A missing file is not an error: a fresh deployment may be populated through the admin API instead.
func SyncCatalog(ctx context.Context, path string, svc server.Services) error {
	log := logger.FromContext(ctx)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn(LogMsgCatalogMissing, "path", path)
		return nil
	}

	f, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadCatalog, err)
	}

	res, err := catalog.Seed(ctx, f, catalog.Targets{Items: svc.Shop, Jobs: svc.Jobs, Stocks: svc.Stocks})
	if err != nil {
		return fmt.Errorf(ErrMsgSeedCatalog, err)
	}

	log.Info(LogMsgCatalogSeeded, "path", path, "inserted", res.Inserted, "skipped", res.Skipped)
	return nil
}
