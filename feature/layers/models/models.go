package models

// SceneSummary lists the view layers of one scene.
type SceneSummary struct {
	Name       string   `json:"name"`
	ViewLayers []string `json:"view_layers"`
}

// Catalog is the response of the scene listing.
type Catalog struct {
	Document string         `json:"document"`
	Scenes   []SceneSummary `json:"scenes"`
}

// Node is one layer node and its subtree.
type Node struct {
	Index      int      `json:"index"`
	Path       string   `json:"path"`
	Name       string   `json:"name"`
	Flags      []string `json:"flags"`
	LocalBits  uint16   `json:"local_bits"`
	HasObjects bool     `json:"has_objects"`
	Visible    bool     `json:"visible"`
	Active     bool     `json:"active,omitempty"`
	Children   []Node   `json:"children,omitempty"`
}

// Base is the evaluated state of one object in a view layer.
type Base struct {
	Object       string `json:"object"`
	Type         string `json:"type"`
	Selected     bool   `json:"selected"`
	Selectable   bool   `json:"selectable"`
	Visible      bool   `json:"visible"`
	Hidden       bool   `json:"hidden"`
	Holdout      bool   `json:"holdout"`
	IndirectOnly bool   `json:"indirect_only"`
	Active       bool   `json:"active,omitempty"`
}

// SyncResult reports what a sync touched.
type SyncResult struct {
	Scenes     int `json:"scenes"`
	ViewLayers int `json:"view_layers"`
	Bases      int `json:"bases"`
}

// SaveResult reports where the state was written.
type SaveResult struct {
	Document string `json:"document"`
	Key      string `json:"key"`
	Nodes    int    `json:"nodes"`
	Bases    int    `json:"bases"`
}

// FlagRequest sets or clears one node flag. Value accepts booleans, numbers
// and strings such as "true" or "off".
type FlagRequest struct {
	Flag  string `json:"flag"`
	Value any    `json:"value"`
}

// LocalRequest isolates a node in a viewport.
type LocalRequest struct {
	Index  any  `json:"index"`
	Extend bool `json:"extend"`
}

// IsolateRequest isolates a node in the view layer.
type IsolateRequest struct {
	Extend bool `json:"extend"`
}

// SelectRequest selects or deselects the objects of a node.
type SelectRequest struct {
	Deselect bool `json:"deselect"`
}

// SelectResult reports whether a selection changed anything.
type SelectResult struct {
	Changed bool `json:"changed"`
}
