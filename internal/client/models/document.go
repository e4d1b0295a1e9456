// Package models defines the client-side views of DocHub API resources.
// Field names and JSON tags mirror the wire contract exactly; the client
// never reshapes server payloads.
package models

import "time"

// Document is a server-owned document. ID is assigned by the server and
// immutable. FilePath is set only when a file was attached at creation and
// never changes on update. CategoryID may reference a category that has since
// been deleted; the server does not cascade, so the reference is left dangling
// and such documents show up under the uncategorized filter.
type Document struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	FilePath   string    `json:"file_path"`
	CategoryID *int      `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d Document) EntityID() int { return d.ID }

// DocumentFields is the mutable part of a document, submitted on create
// (as multipart form fields) and update (as JSON).
type DocumentFields struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	CategoryID *int   `json:"category_id"`
}
