// Package activity records what visitors take away from the catalog:
// downloads, clipboard copies and CLI exports.
package activity

import (
	"context"
	"time"
)

// Kind describes what was done with a recipe's source.
type Kind string

const (
	KindDownload Kind = "download"
	KindCopy     Kind = "copy"
	KindExport   Kind = "export"
)

// Origin identifies the surface that produced the event.
type Origin string

const (
	OriginWeb Origin = "web"
	OriginCLI Origin = "cli"
	OriginMCP Origin = "mcp"
)

// Event is a single activity record.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	RecipeID  string    `json:"recipe_id"`
	Language  string    `json:"language"`
	FileName  string    `json:"file_name,omitempty"`
	Origin    Origin    `json:"origin"`
	// Error is empty when the action succeeded.
	Error string `json:"error,omitempty"`
}

// Recorder accepts events. The site and CLI depend on this rather than on
// Store so the log can be switched off.
type Recorder interface {
	Record(ctx context.Context, e Event) error
}

// Nop discards every event.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, Event) error { return nil }
