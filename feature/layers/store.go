package layers

import (
	"context"
	"errors"
	"fmt"

	"layersync/core/database"
	"layersync/core/layer"
	"layersync/feature/layers/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrSchemaOutdated is returned by NewStore when migrations are disabled and
// the state tables lack required columns.
var ErrSchemaOutdated = errors.New("state schema is outdated")

var (
	nodeStateColumns = []string{"id", "document", "scene", "view_layer", "path", "flag", "local_bits", "updated_at"}
	baseStateColumns = []string{"id", "document", "scene", "view_layer", "object", "selected", "hidden", "local_view_bits", "updated_at"}
)

// Store keeps the persistent view layer state of documents in the database.
type Store struct {
	db *gorm.DB
}

// NewStore prepares the state tables. With migrate set the tables are created
// or updated; otherwise their columns are only checked.
func NewStore(db *gorm.DB, migrate bool) (*Store, error) {
	if migrate {
		if err := db.AutoMigrate(&models.NodeState{}, &models.BaseState{}); err != nil {
			return nil, fmt.Errorf("failed to migrate state tables: %w", err)
		}
		return &Store{db: db}, nil
	}

	checks := []struct {
		table   string
		columns []string
	}{
		{models.NodeState{}.TableName(), nodeStateColumns},
		{models.BaseState{}.TableName(), baseStateColumns},
	}
	for _, check := range checks {
		missing, err := database.MissingColumns(db, check.table, check.columns)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", check.table, err)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s is missing %v", ErrSchemaOutdated, check.table, missing)
		}
	}
	return &Store{db: db}, nil
}

// Save replaces the stored state of document with the state of every view
// layer in ldb. It returns the number of node and base rows written.
func (s *Store) Save(ctx context.Context, document string, ldb *layer.Database) (int, int, error) {
	nodes, bases := collectState(document, ldb)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document = ?", document).Delete(&models.NodeState{}).Error; err != nil {
			return fmt.Errorf("failed to clear node state: %w", err)
		}
		if err := tx.Where("document = ?", document).Delete(&models.BaseState{}).Error; err != nil {
			return fmt.Errorf("failed to clear base state: %w", err)
		}
		if len(nodes) > 0 {
			if err := tx.CreateInBatches(nodes, 200).Error; err != nil {
				return fmt.Errorf("failed to write node state: %w", err)
			}
		}
		if len(bases) > 0 {
			if err := tx.CreateInBatches(bases, 200).Error; err != nil {
				return fmt.Errorf("failed to write base state: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return len(nodes), len(bases), nil
}

// Restore applies the stored state of document to the view layers of ldb.
// Rows naming scenes, view layers, paths or objects that no longer exist are
// skipped. The caller resyncs afterwards. It returns the number of rows applied.
func (s *Store) Restore(ctx context.Context, document string, ldb *layer.Database) (int, error) {
	var nodes []models.NodeState
	var bases []models.BaseState

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.db.WithContext(gctx).Where("document = ?", document).Order("id").Find(&nodes).Error; err != nil {
			return fmt.Errorf("failed to read node state: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.WithContext(gctx).Where("document = ?", document).Order("id").Find(&bases).Error; err != nil {
			return fmt.Errorf("failed to read base state: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	applied := 0
	for _, row := range nodes {
		vl := viewLayerOf(ldb, row.Scene, row.ViewLayer)
		if vl == nil {
			continue
		}
		if n := vl.NodeByPath(row.Path); n != nil {
			n.Flag = layer.NodeFlag(row.Flag)
			n.LocalCollectionsBits = row.LocalBits
			applied++
		}
	}
	for _, row := range bases {
		vl := viewLayerOf(ldb, row.Scene, row.ViewLayer)
		if vl == nil {
			continue
		}
		ob := ldb.Graph.FindObject(row.Object)
		if ob == nil {
			continue
		}
		b := vl.FindBase(ob)
		if b == nil {
			continue
		}
		b.Flag &^= layer.BaseSelected | layer.BaseHidden
		if row.Selected {
			b.Flag |= layer.BaseSelected
		}
		if row.Hidden {
			b.Flag |= layer.BaseHidden
		}
		b.LocalViewBits = row.LocalViewBits
		applied++
	}
	return applied, nil
}

func collectState(document string, ldb *layer.Database) ([]models.NodeState, []models.BaseState) {
	var nodes []models.NodeState
	var bases []models.BaseState
	for _, sc := range ldb.Scenes {
		for _, vl := range sc.ViewLayers {
			if root := vl.Root(); root != nil {
				root.Walk(func(n *layer.LayerNode) bool {
					nodes = append(nodes, models.NodeState{
						Document:  document,
						Scene:     sc.Name,
						ViewLayer: vl.Name,
						Path:      n.Path(),
						Flag:      uint16(n.Flag),
						LocalBits: n.LocalCollectionsBits,
					})
					return true
				})
			}
			for _, b := range vl.Bases() {
				bases = append(bases, models.BaseState{
					Document:      document,
					Scene:         sc.Name,
					ViewLayer:     vl.Name,
					Object:        b.Object.Name,
					Selected:      b.Has(layer.BaseSelected),
					Hidden:        b.Has(layer.BaseHidden),
					LocalViewBits: b.LocalViewBits,
				})
			}
		}
	}
	return nodes, bases
}

func viewLayerOf(ldb *layer.Database, sceneName, viewLayer string) *layer.ViewLayer {
	sc := ldb.Scene(sceneName)
	if sc == nil {
		return nil
	}
	return sc.ViewLayer(viewLayer)
}
