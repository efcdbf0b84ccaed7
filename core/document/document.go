package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Version is the document format written by Encode.
const Version = 1

var (
	// ErrUnsupportedVersion is returned for documents of another format version.
	ErrUnsupportedVersion = errors.New("unsupported document version")
	// ErrInvalid is wrapped by every structural error found while building.
	ErrInvalid = errors.New("invalid document")
)

// Document is the serialized form of a layer.Database.
type Document struct {
	Version     int             `json:"version"`
	ID          string          `json:"id"`
	Objects     []ObjectDoc     `json:"objects"`
	Collections []CollectionDoc `json:"collections"`
	Scenes      []SceneDoc      `json:"scenes"`
	Viewports   []ViewportDoc   `json:"viewports,omitempty"`
}

// ObjectDoc describes one object.
type ObjectDoc struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Modes        []string `json:"modes,omitempty"`
	HideViewport bool     `json:"hide_viewport,omitempty"`
	HideRender   bool     `json:"hide_render,omitempty"`
	HideSelect   bool     `json:"hide_select,omitempty"`
	Holdout      bool     `json:"holdout,omitempty"`
	Library      string   `json:"library,omitempty"`
	Selected     bool     `json:"selected,omitempty"`
}

// CollectionDoc describes one non-master collection. Children and objects are
// referenced by name.
type CollectionDoc struct {
	Name         string   `json:"name"`
	HideSelect   bool     `json:"hide_select,omitempty"`
	HideViewport bool     `json:"hide_viewport,omitempty"`
	HideRender   bool     `json:"hide_render,omitempty"`
	Children     []string `json:"children,omitempty"`
	Objects      []string `json:"objects,omitempty"`
}

// SceneDoc describes a scene. Children and Objects belong to its master
// collection.
type SceneDoc struct {
	Name       string         `json:"name"`
	Children   []string       `json:"children,omitempty"`
	Objects    []string       `json:"objects,omitempty"`
	ViewLayers []ViewLayerDoc `json:"view_layers"`
}

// ViewLayerDoc holds the persistent state of a view layer. Nodes are keyed by
// collection path, bases by object name.
type ViewLayerDoc struct {
	Name       string    `json:"name"`
	Active     string    `json:"active,omitempty"`
	ActiveBase string    `json:"active_base,omitempty"`
	Nodes      []NodeDoc `json:"nodes,omitempty"`
	Bases      []BaseDoc `json:"bases,omitempty"`
}

// NodeDoc is the persistent state of one layer node.
type NodeDoc struct {
	Path      string   `json:"path"`
	Flags     []string `json:"flags,omitempty"`
	LocalBits uint16   `json:"local_bits"`
}

// BaseDoc is the persistent state of one base.
type BaseDoc struct {
	Object        string `json:"object"`
	Selected      bool   `json:"selected,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	LocalViewBits uint16 `json:"local_view_bits"`
}

// ViewportDoc describes a viewport.
type ViewportDoc struct {
	Name                string   `json:"name"`
	LocalCollectionsBit uint16   `json:"local_collections_bit,omitempty"`
	UseLocalCollections bool     `json:"use_local_collections,omitempty"`
	LocalViewBit        uint16   `json:"local_view_bit,omitempty"`
	InLocalView         bool     `json:"in_local_view,omitempty"`
	ExcludeTypes        []string `json:"exclude_types,omitempty"`
}

// Decode reads a document, rejecting unknown fields and other versions.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}

// Encode writes doc as indented JSON, assigning an id when it has none.
func (doc *Document) Encode(w io.Writer) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.Version = Version

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}
