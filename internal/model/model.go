// Package model contains domain entities shared across layers.
// Kept lean and focused on data shapes without behavior.
package model

import "time"

// PostStatus is the workflow state of a board post.
type PostStatus string

const (
	StatusReady    PostStatus = "ready"
	StatusProgress PostStatus = "progress"
	StatusDone     PostStatus = "done"
)

// Valid reports whether s is one of the known workflow states.
func (s PostStatus) Valid() bool {
	switch s {
	case StatusReady, StatusProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Post is an entry on the project board.
type Post struct {
	ID        int64      `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Author    string     `json:"author" yaml:"author"`
	Status    PostStatus `json:"status" yaml:"status"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	ViewCount int        `json:"view_count" yaml:"view_count"`
}
