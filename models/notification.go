package models

import "time"

// Notification holds the structure for the notifications resource in the CMS
type Notification struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Data      Payload   `json:"data"`
	Read      bool      `json:"read"`
	UserID    int       `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination mirrors the meta.pagination block of CMS list responses
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// UnreadSnapshot is the derived per-category unread count structure that
// drives menu and application badges. It is recomputed from the live unread
// set and never persisted.
type UnreadSnapshot struct {
	Total       int `json:"total"`
	EventCount  int `json:"eventCount"`
	AgendaCount int `json:"agendaCount"`
}
