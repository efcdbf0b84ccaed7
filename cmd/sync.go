package cmd

import (
	"context"
	"fmt"

	"layersync/core/config"
	"layersync/core/database"
	"layersync/core/document"
	"layersync/core/layer"
	"layersync/core/logger"
	"layersync/feature/layers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncFile    string
	syncRemap   bool
	syncRestore bool
	syncWrite   bool
	syncPersist bool
	syncYes     bool
)

// syncCmd resyncs a document outside the server.
var syncCmd = &cobra.Command{
	Use:   "sync [document]",
	Short: "Resync the view layers of a scene document",
	Long: `Load a scene document, resync every view layer against its collection
hierarchy and report the result. The document is read from the bucket unless
--file is given.

Examples:
  # Report only
  sync shot

  # Apply the state stored in the database, then write the document back
  sync shot --restore --write

  # Rebuild base indexes of a local file and persist its state
  sync --file shot.json --remap --persist --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncFile, "file", "", "Read and write a local document instead of the bucket")
	syncCmd.Flags().BoolVar(&syncRemap, "remap", false, "Rebuild base indexes before syncing")
	syncCmd.Flags().BoolVar(&syncRestore, "restore", false, "Apply view layer state stored in the database")
	syncCmd.Flags().BoolVar(&syncWrite, "write", false, "Write the synced document back")
	syncCmd.Flags().BoolVar(&syncPersist, "persist", false, "Store view layer state in the database")
	syncCmd.Flags().BoolVar(&syncYes, "yes", false, "Auto-confirm overwriting the stored document")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	src, err := openSource(cfg, args, syncFile)
	if err != nil {
		return err
	}
	doc, err := src.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", src, err)
	}

	engine := layer.NewEngineFromConfig(cfg.Sync, l)
	ldb, err := doc.Build(engine)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", src, err)
	}
	l.Info("Document loaded", zap.Stringer("source", src), zap.String("id", doc.ID))

	var store *layers.Store
	if syncRestore || syncPersist {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if store, err = layers.NewStore(conn, cfg.Layers.Migrate); err != nil {
			return err
		}
	}

	if syncRestore {
		applied, err := store.Restore(ctx, src.name, ldb)
		if err != nil {
			return err
		}
		l.Info("Restored view layer state", zap.Int("rows", applied))
	}

	if syncRemap {
		engine.SyncRemap(ldb)
	} else {
		engine.SyncAll(ldb)
	}
	reportSync(l, ldb)

	if !syncWrite && !syncPersist {
		l.Info("No actions requested. Use --write to save the document or --persist to store view layer state.")
		return nil
	}

	if syncWrite {
		if !confirm(fmt.Sprintf("This overwrites %s.", src), syncYes || src.file != "") {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		out := document.FromDatabase(ldb)
		out.ID = doc.ID
		if err := src.save(ctx, out); err != nil {
			return fmt.Errorf("failed to write %s: %w", src, err)
		}
		l.Info("Document written", zap.Stringer("source", src))
	}

	if syncPersist {
		nodes, bases, err := store.Save(ctx, src.name, ldb)
		if err != nil {
			return err
		}
		l.Info("Persisted view layer state", zap.Int("nodes", nodes), zap.Int("bases", bases))
	}
	return nil
}

// reportSync logs one line per view layer.
func reportSync(l *zap.Logger, ldb *layer.Database) {
	for _, sc := range ldb.Scenes {
		for _, vl := range sc.ViewLayers {
			active := ""
			if n := vl.ActiveNode(); n != nil {
				active = n.Path()
			}
			l.Info("View layer synced",
				zap.String("scene", sc.Name),
				zap.String("view_layer", vl.Name),
				zap.Int("nodes", vl.Count()),
				zap.Int("bases", vl.Cache().Len()),
				zap.String("active", active),
			)
		}
	}
}
