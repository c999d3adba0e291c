package cli

import (
	"fmt"
	"path/filepath"

	"github.com/acrispim/vidaplan/internal/export"
)

type ExportCreateCmd struct{}

func (c *ExportCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := export.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	path, err := mgr.CreateSnapshot()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Snapshot created: %s\n", filepath.Base(path))
	return nil
}

type ExportListCmd struct{}

func (c *ExportListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := export.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	snapshots, err := mgr.ListSnapshots()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots found.")
		fmt.Printf("Snapshots are stored in: %s\n", mgr.GetSnapshotDir())
		return nil
	}

	fmt.Printf("Available snapshots (%d total, keeping most recent %d):\n\n", len(snapshots), export.MaxSnapshots)
	for _, snapshot := range snapshots {
		fmt.Printf("  %s  %s  %d bytes\n",
			snapshot.Timestamp.Format("2006-01-02 15:04"),
			filepath.Base(snapshot.Path), snapshot.Size)
	}
	return nil
}
