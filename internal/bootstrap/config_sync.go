package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/CateringPlanner_Go/internal/catalog"
)

// SyncCatalog upserts the catalog seed file before the server starts serving.
// A missing seed file is not an error; the stored catalog is used as is.
// Unchanged files are skipped through the loader's hash check.
func SyncCatalog(ctx context.Context, loader *catalog.Loader, path string) (*catalog.SyncResult, error) {
	if path == "" {
		return &catalog.SyncResult{Unchanged: true}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgCatalogSeedMissing, "path", path)
		return &catalog.SyncResult{Unchanged: true}, nil
	}

	slog.Info(LogMsgSyncingCatalog, "path", path)
	result, err := loader.Sync(ctx, path, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.Unchanged || (result.Inserted() == 0 && result.Updated() == 0) {
		slog.Info(LogMsgCatalogUnchanged)
	} else {
		slog.Info(LogMsgCatalogSynced,
			"inserted", result.Inserted(),
			"updated", result.Updated(),
			"skipped", result.Skipped())
	}

	return result, nil
}
