package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/beemon/beemon/internal/contract"
	"github.com/beemon/beemon/internal/drive"
)

// ExecuteUpload pushes chart artifacts to the configured Drive folder.
// With explicit paths it uploads exactly those files; otherwise it
// uploads every PNG in the output directory.
func ExecuteUpload(ctx context.Context, cfg *contract.Config, paths []string) error {
	credentials, err := loadCredentials(cfg)
	if err != nil {
		return err
	}

	store, err := drive.NewStore(ctx, credentials, cfg.RemoteFolder)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths, err = filepath.Glob(filepath.Join(cfg.OutDir, "*.png"))
		if err != nil {
			return fmt.Errorf("scan output dir %s: %w", cfg.OutDir, err)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no chart artifacts under %s, run charts first", cfg.OutDir)
		}
		sort.Strings(paths)
	}

	for _, path := range paths {
		id, err := store.Upload(ctx, path, filepath.Base(path))
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded %s to folder %s (file ID %s)\n", filepath.Base(path), cfg.RemoteFolder, id)
	}
	fmt.Printf("Upload complete: %d files\n", len(paths))
	return nil
}

// loadCredentials resolves the service-account JSON, preferring the
// environment variable so CI never needs a credentials file on disk.
func loadCredentials(cfg *contract.Config) ([]byte, error) {
	if raw := os.Getenv(contract.CredentialsEnvVar); raw != "" {
		return []byte(raw), nil
	}
	if cfg.CredsFile != "" {
		data, err := os.ReadFile(cfg.CredsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no Drive credentials: set %s or pass --credentials", contract.CredentialsEnvVar)
}
