package model

import "time"

// WipToggle marks a public page as work in progress. Paths without a
// row are implicitly live.
type WipToggle struct {
	ID        int       `json:"id"`
	PagePath  string    `json:"page_path"`
	PageLabel string    `json:"page_label"`
	IsWip     bool      `json:"is_wip"`
	UpdatedAt time.Time `json:"updated_at"`
}
