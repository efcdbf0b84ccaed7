package models

import "time"

// NodeState is the persisted flag state of one layer node.
type NodeState struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Document  string    `gorm:"column:document;size:191;index:idx_node_states_document"`
	Scene     string    `gorm:"column:scene;size:191"`
	ViewLayer string    `gorm:"column:view_layer;size:191"`
	Path      string    `gorm:"column:path;size:1024"`
	Flag      uint16    `gorm:"column:flag"`
	LocalBits uint16    `gorm:"column:local_bits"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by NodeState.
func (NodeState) TableName() string {
	return "node_states"
}

// BaseState is the persisted selection and hide state of one base.
type BaseState struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	Document      string    `gorm:"column:document;size:191;index:idx_base_states_document"`
	Scene         string    `gorm:"column:scene;size:191"`
	ViewLayer     string    `gorm:"column:view_layer;size:191"`
	Object        string    `gorm:"column:object;size:191"`
	Selected      bool      `gorm:"column:selected"`
	Hidden        bool      `gorm:"column:hidden"`
	LocalViewBits uint16    `gorm:"column:local_view_bits"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by BaseState.
func (BaseState) TableName() string {
	return "base_states"
}
