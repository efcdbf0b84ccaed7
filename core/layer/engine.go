package layer

import (
	"layersync/core/scene"

	"go.uber.org/zap"
)

// Config holds the sync settings.
type Config struct {
	// Strict turns cache consistency violations into DPanic reports and
	// validates the base cache after every sync.
	Strict bool `mapstructure:"strict" default:"false"`
}

// Engine keeps view layers in sync with the scene graph.
//
// All methods expect to be called from a single goroutine. The engine carries
// its own Gate, so nested batch operations share one suppression state instead
// of a process wide flag.
type Engine struct {
	logger *zap.Logger
	gate   *Gate
	strict bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrict enables strict consistency checking.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithGate shares a gate between engines.
func WithGate(g *Gate) Option {
	return func(e *Engine) {
		e.gate = g
	}
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{logger: logger, gate: &Gate{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineFromConfig creates an engine from configuration.
func NewEngineFromConfig(cfg Config, logger *zap.Logger) *Engine {
	return NewEngine(logger, WithStrict(cfg.Strict))
}

// Gate returns the suppression gate.
func (e *Engine) Gate() *Gate {
	return e.gate
}

// Strict reports whether strict checking is on.
func (e *Engine) Strict() bool {
	return e.strict
}

// ResyncForbid suppresses every sync entry point until ResyncAllow.
func (e *Engine) ResyncForbid() {
	e.gate.Forbid()
}

// ResyncAllow releases one ResyncForbid.
func (e *Engine) ResyncAllow() {
	e.gate.Allow()
}

// Batch runs fn with resyncs suppressed, then rebuilds every base index and
// resyncs the whole database. Inside an enclosing batch the final resync is
// left to the outermost one.
func (e *Engine) Batch(db *Database, fn func()) {
	e.gate.Forbid()
	func() {
		defer e.gate.Allow()
		fn()
	}()
	e.SyncRemap(db)
}

// SyncScene resyncs every view layer of s.
func (e *Engine) SyncScene(s *Scene) {
	if e.gate.Forbidden() {
		return
	}
	for _, vl := range s.ViewLayers {
		e.Sync(s, vl)
	}
}

// SyncAll resyncs every view layer of every scene, then refreshes local
// collection visibility for viewports using it. Used after file load and undo.
func (e *Engine) SyncAll(db *Database) {
	if e.gate.Forbidden() {
		return
	}
	for _, s := range db.Scenes {
		e.SyncScene(s)
	}
	e.LocalSyncAll(db)
}

// SyncRemap drops and rebuilds every base index, repairing duplicate bases,
// then resyncs everything. Call it after object pointers were remapped.
func (e *Engine) SyncRemap(db *Database) {
	if e.gate.Forbidden() {
		return
	}
	for _, s := range db.Scenes {
		for _, vl := range s.ViewLayers {
			vl.bases.invalidate()
			vl.ensureIndex(e.duplicateHandler(vl, true))
		}
	}
	e.SyncAll(db)
}

// FindBase returns the base of ob in vl, building the index with the engine's
// duplicate policy when needed.
func (e *Engine) FindBase(vl *ViewLayer, ob *scene.Object) *Base {
	return vl.ensureIndex(e.duplicateHandler(vl, false))[ob]
}

func (e *Engine) duplicateHandler(vl *ViewLayer, remap bool) func(*Base) {
	return func(b *Base) {
		fields := []zap.Field{
			zap.String("view_layer", vl.Name),
			zap.String("object", b.Object.Name),
		}
		switch {
		case remap:
			// Expected when an object was remapped onto one already present.
			e.logger.Debug("Dropping duplicate base", fields...)
		case e.strict:
			e.logger.DPanic("Object has more than one base in view layer", fields...)
		default:
			e.logger.Warn("Object has more than one base in view layer, dropping duplicate", fields...)
		}
	}
}
