package layers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"layersync/core/document"
	"layersync/core/layer"
	"layersync/core/scene"
	"layersync/core/storage"
	"layersync/feature/layers/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotLoaded           = errors.New("no document loaded")
	ErrSceneNotFound       = errors.New("scene not found")
	ErrViewLayerNotFound   = errors.New("view layer not found")
	ErrNodeNotFound        = errors.New("layer node not found")
	ErrBaseNotFound        = errors.New("object has no base in view layer")
	ErrViewportNotFound    = errors.New("viewport not found")
	ErrInvalidFilter       = errors.New("invalid base filter")
	ErrInvalidFlag         = errors.New("flag cannot be set")
	ErrRootNode            = errors.New("the root node cannot be changed")
	ErrNotActivatable      = errors.New("excluded nodes cannot be activated")
	ErrLocalCollectionsOff = errors.New("viewport does not use local collections")
)

// Base filters accepted by Bases.
const (
	FilterAll      = "all"
	FilterSelected = "selected"
	FilterVisible  = "visible"
	FilterEditable = "editable"
	FilterMode     = "mode"
)

// BaseQuery selects which bases Bases returns.
type BaseQuery struct {
	Filter string
	// Viewport evaluates visibility in the named viewport instead of the
	// view layer alone.
	Viewport string
	// Mode and Type apply to FilterMode. Without Type the active base's type
	// is used.
	Mode string
	Type string
}

// Service owns the loaded document and runs every engine operation on it.
// Engine calls are serialized by mu.
type Service struct {
	engine   *layer.Engine
	docs     *storage.Documents
	store    *Store
	logger   *zap.Logger
	fallback string

	mu   sync.Mutex
	db   *layer.Database
	name string
	sf   singleflight.Group
}

// NewService creates a layers service. store may be nil when state is not
// persisted in the database. fallback names the document loaded by Load("").
func NewService(engine *layer.Engine, docs *storage.Documents, store *Store, logger *zap.Logger, fallback string) *Service {
	return &Service{
		engine:   engine,
		docs:     docs,
		store:    store,
		logger:   logger,
		fallback: fallback,
	}
}

// Document returns the name of the loaded document.
func (s *Service) Document() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Load reads the document called name from the bucket, builds it and
// restores the stored state. Concurrent loads of the same document share one
// read.
func (s *Service) Load(ctx context.Context, name string) (*models.SyncResult, error) {
	if name == "" {
		name = s.fallback
	}

	v, err, shared := s.sf.Do(name, func() (any, error) {
		return s.load(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Document load shared", zap.String("document", name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = v.(*layer.Database)
	s.name = name
	return summarize(s.db), nil
}

func (s *Service) load(ctx context.Context, name string) (*layer.Database, error) {
	data, err := s.docs.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	doc, err := document.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ldb, err := doc.Build(s.engine)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}
	if s.store != nil {
		applied, err := s.store.Restore(ctx, name, ldb)
		if err != nil {
			return nil, err
		}
		if applied > 0 {
			s.engine.SyncAll(ldb)
		}
		s.logger.Debug("Restored view layer state", zap.String("document", name), zap.Int("rows", applied))
	}

	s.logger.Info("Document loaded",
		zap.String("document", name),
		zap.String("id", doc.ID),
		zap.Int("scenes", len(ldb.Scenes)),
	)
	return ldb, nil
}

// Save writes the loaded document back to the bucket and, when a store is
// configured, its view layer state to the database.
func (s *Service) Save(ctx context.Context) (*models.SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	var buf bytes.Buffer
	if err := document.FromDatabase(s.db).Encode(&buf); err != nil {
		return nil, err
	}
	if err := s.docs.Save(ctx, s.name, buf.Bytes()); err != nil {
		return nil, err
	}

	result := &models.SaveResult{Document: s.name, Key: s.docs.Key(s.name)}
	if s.store != nil {
		nodes, bases, err := s.store.Save(ctx, s.name, s.db)
		if err != nil {
			return nil, err
		}
		result.Nodes, result.Bases = nodes, bases
	}
	return result, nil
}

// Catalog lists the scenes and view layers of the loaded document.
func (s *Service) Catalog() (*models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	catalog := &models.Catalog{Document: s.name, Scenes: []models.SceneSummary{}}
	for _, sc := range s.db.Scenes {
		summary := models.SceneSummary{Name: sc.Name, ViewLayers: []string{}}
		for _, vl := range sc.ViewLayers {
			summary.ViewLayers = append(summary.ViewLayers, vl.Name)
		}
		catalog.Scenes = append(catalog.Scenes, summary)
	}
	return catalog, nil
}

// Tree returns the layer tree of a view layer.
func (s *Service) Tree(sceneName, viewLayer string) (*models.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, vl, err := s.lookup(sceneName, viewLayer)
	if err != nil {
		return nil, err
	}
	if vl.Root() == nil {
		return nil, ErrNodeNotFound
	}
	tree := nodeModel(vl, vl.Root(), vl.Indexes(), true)
	return &tree, nil
}

// Bases returns the bases of a view layer matching q.
func (s *Service) Bases(sceneName, viewLayer string, q BaseQuery) ([]models.Base, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, vl, err := s.lookup(sceneName, viewLayer)
	if err != nil {
		return nil, err
	}

	var vp *layer.Viewport
	if q.Viewport != "" {
		if vp = s.viewport(q.Viewport); vp == nil {
			return nil, fmt.Errorf("%w: %s", ErrViewportNotFound, q.Viewport)
		}
	}

	var seq iter.Seq[*layer.Base]
	switch q.Filter {
	case "", FilterAll:
		seq = func(yield func(*layer.Base) bool) {
			for _, b := range vl.Bases() {
				if !yield(b) {
					return
				}
			}
		}
	case FilterSelected:
		seq = layer.SelectedBases(vl, vp)
	case FilterVisible:
		seq = layer.VisibleBases(vl, vp)
	case FilterEditable:
		seq = func(yield func(*layer.Base) bool) {
			for ob := range layer.SelectedEditableObjects(vl, vp) {
				if !yield(s.engine.FindBase(vl, ob)) {
					return
				}
			}
		}
	case FilterMode:
		mode, err := scene.ParseObjectMode([]string{q.Mode})
		if err != nil || q.Mode == "" {
			return nil, fmt.Errorf("%w: mode %q", ErrInvalidFilter, q.Mode)
		}
		if q.Type == "" {
			seq = layer.BasesInMode(vl, vp, mode)
			break
		}
		typ, err := scene.ParseObjectType(q.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		seq = layer.BasesInModeOfType(vl, vp, mode, typ)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilter, q.Filter)
	}

	bases := []models.Base{}
	for b := range seq {
		bases = append(bases, baseModel(vl, vp, b))
	}
	return bases, nil
}

// SyncAll resyncs every view layer of the loaded document.
func (s *Service) SyncAll() (*models.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}
	s.engine.SyncAll(s.db)
	return summarize(s.db), nil
}

// Remap rebuilds every base index and resyncs the loaded document.
func (s *Service) Remap() (*models.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}
	s.engine.SyncRemap(s.db)
	return summarize(s.db), nil
}

// SyncViewLayer resyncs one view layer and returns its tree.
func (s *Service) SyncViewLayer(sceneName, viewLayer string) (*models.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, vl, err := s.lookup(sceneName, viewLayer)
	if err != nil {
		return nil, err
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}
	s.resync(sc, vl)
	tree := nodeModel(vl, vl.Root(), vl.Indexes(), true)
	return &tree, nil
}

// SetNodeFlag sets or clears a flag on the node at index and resyncs the view
// layer. Exclusion and render flags apply to the whole subtree; hidden only to
// the node itself.
func (s *Service) SetNodeFlag(sceneName, viewLayer string, index int, flagName string, value bool) (*models.Node, error) {
	flag, err := document.ParseNodeFlag(flagName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if flag == layer.NodePreviouslyExcluded {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFlag, flagName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sc, vl, n, err := s.node(sceneName, viewLayer, index)
	if err != nil {
		return nil, err
	}
	if n == vl.Root() {
		return nil, ErrRootNode
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}

	if flag == layer.NodeHidden {
		vl.SetNodeVisible(n, !value, false)
	} else {
		layer.SetFlag(n, flag, value)
	}
	s.resync(sc, vl)

	s.logger.Debug("Node flag changed",
		zap.String("view_layer", vl.Name),
		zap.String("path", n.Path()),
		zap.String("flag", flagName),
		zap.Bool("value", value),
	)
	return s.nodeAfterSync(vl, n)
}

// Activate makes the node at index the active node.
func (s *Service) Activate(sceneName, viewLayer string, index int) (*models.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, vl, n, err := s.node(sceneName, viewLayer, index)
	if err != nil {
		return nil, err
	}
	if !vl.Activate(n) {
		return nil, ErrNotActivatable
	}
	return s.nodeAfterSync(vl, n)
}

// Isolate makes the node at index the only visible one in the view layer.
func (s *Service) Isolate(sceneName, viewLayer string, index int, extend bool) (*models.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, vl, n, err := s.node(sceneName, viewLayer, index)
	if err != nil {
		return nil, err
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}
	s.engine.IsolateGlobal(sc, vl, n, extend)
	tree := nodeModel(vl, vl.Root(), vl.Indexes(), true)
	return &tree, nil
}

// SelectObjects selects, or with deselect clears, the selectable bases of the
// objects in the node at index.
func (s *Service) SelectObjects(sceneName, viewLayer string, index int, deselect bool) (*models.SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, vl, n, err := s.node(sceneName, viewLayer, index)
	if err != nil {
		return nil, err
	}
	return &models.SelectResult{Changed: vl.ObjectsSelect(n, deselect)}, nil
}

// ShowBase hides every other base of the view layer and shows the base of
// object. With extend only that base's hide toggle flips.
func (s *Service) ShowBase(sceneName, viewLayer, object string, extend bool) (*models.Base, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, vl, err := s.lookup(sceneName, viewLayer)
	if err != nil {
		return nil, err
	}
	var b *layer.Base
	if ob := s.db.Graph.FindObject(object); ob != nil {
		b = s.engine.FindBase(vl, ob)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBaseNotFound, object)
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}

	s.engine.BaseSetVisible(sc, vl, b, extend)
	// The resync may have rebuilt the base list.
	if b = s.engine.FindBase(vl, b.Object); b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBaseNotFound, object)
	}
	base := baseModel(vl, nil, b)
	return &base, nil
}

// IsolateLocal shows the node at index in the viewport's local collections
// and returns the bases now visible there.
func (s *Service) IsolateLocal(sceneName, viewLayer, viewport string, index int, extend bool) ([]models.Base, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, vl, n, err := s.node(sceneName, viewLayer, index)
	if err != nil {
		return nil, err
	}
	vp := s.viewport(viewport)
	if vp == nil {
		return nil, fmt.Errorf("%w: %s", ErrViewportNotFound, viewport)
	}
	if !vp.UseLocalCollections {
		return nil, ErrLocalCollectionsOff
	}
	if err := s.allowed(); err != nil {
		return nil, err
	}

	s.engine.IsolateLocal(vl, n, vp.LocalCollectionsBit, extend)

	bases := []models.Base{}
	for b := range layer.VisibleBases(vl, vp) {
		bases = append(bases, baseModel(vl, vp, b))
	}
	return bases, nil
}

func (s *Service) allowed() error {
	if s.engine.Gate().Forbidden() {
		return document.ErrSuppressed
	}
	return nil
}

func (s *Service) resync(sc *layer.Scene, vl *layer.ViewLayer) {
	s.engine.Sync(sc, vl)
	for _, vp := range s.db.Viewports {
		if vp.UseLocalCollections {
			s.engine.LocalSync(vl, vp.LocalCollectionsBit)
		}
	}
}

func (s *Service) lookup(sceneName, viewLayer string) (*layer.Scene, *layer.ViewLayer, error) {
	if s.db == nil {
		return nil, nil, ErrNotLoaded
	}
	sc := s.db.Scene(sceneName)
	if sc == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSceneNotFound, sceneName)
	}
	vl := sc.ViewLayer(viewLayer)
	if vl == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrViewLayerNotFound, viewLayer)
	}
	return sc, vl, nil
}

func (s *Service) node(sceneName, viewLayer string, index int) (*layer.Scene, *layer.ViewLayer, *layer.LayerNode, error) {
	sc, vl, err := s.lookup(sceneName, viewLayer)
	if err != nil {
		return nil, nil, nil, err
	}
	n := vl.NodeFromIndex(index)
	if n == nil {
		return nil, nil, nil, fmt.Errorf("%w: index %d", ErrNodeNotFound, index)
	}
	return sc, vl, n, nil
}

// nodeAfterSync returns n, or its replacement when the resync freed it.
func (s *Service) nodeAfterSync(vl *layer.ViewLayer, n *layer.LayerNode) (*models.Node, error) {
	indexes := vl.Indexes()
	if _, ok := indexes[n]; !ok {
		return nil, ErrNodeNotFound
	}
	node := nodeModel(vl, n, indexes, false)
	return &node, nil
}

func (s *Service) viewport(name string) *layer.Viewport {
	for _, vp := range s.db.Viewports {
		if vp.Name == name {
			return vp
		}
	}
	return nil
}

func summarize(ldb *layer.Database) *models.SyncResult {
	result := &models.SyncResult{Scenes: len(ldb.Scenes)}
	for _, sc := range ldb.Scenes {
		result.ViewLayers += len(sc.ViewLayers)
		for _, vl := range sc.ViewLayers {
			result.Bases += vl.Cache().Len()
		}
	}
	return result
}

func nodeModel(vl *layer.ViewLayer, n *layer.LayerNode, indexes map[*layer.LayerNode]int, deep bool) models.Node {
	node := models.Node{
		Index:      indexes[n],
		Path:       n.Path(),
		Name:       n.Name(),
		Flags:      document.NodeFlagNames(n.Flag),
		LocalBits:  n.LocalCollectionsBits,
		HasObjects: n.Runtime&layer.RuntimeHasObjects != 0,
		Visible:    n.VisibleInViewLayer(),
		Active:     n == vl.ActiveNode(),
	}
	if node.Flags == nil {
		node.Flags = []string{}
	}
	if deep {
		for _, child := range n.Children {
			node.Children = append(node.Children, nodeModel(vl, child, indexes, true))
		}
	}
	return node
}

func baseModel(vl *layer.ViewLayer, vp *layer.Viewport, b *layer.Base) models.Base {
	return models.Base{
		Object:       b.Object.Name,
		Type:         b.Object.Type.String(),
		Selected:     b.Has(layer.BaseSelected),
		Selectable:   b.Has(layer.BaseSelectable),
		Visible:      layer.BaseIsVisible(vp, b),
		Hidden:       b.Has(layer.BaseHidden),
		Holdout:      b.Has(layer.BaseHoldout),
		IndirectOnly: b.Has(layer.BaseIndirectOnly),
		Active:       b == vl.ActiveBase(),
	}
}
