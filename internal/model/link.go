package model

import "time"

// Link is the persistent mapping from a short code to its destination URL.
// LongURL is immutable once set; Clicks and LastAccessed change only on redirects.
type Link struct {
	ID           int64      `json:"id"`
	ShortCode    string     `json:"short_code"`
	LongURL      string     `json:"long_url"`
	Clicks       int64      `json:"clicks"`
	CreatedAt    time.Time  `json:"created_at"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

type ShortenRequest struct {
	LongURL     string `json:"long_url" binding:"required"`
	CustomAlias string `json:"custom_alias,omitempty"`
}

type ShortenResponse struct {
	ShortCode string    `json:"short_code"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ExpandResponse struct {
	LongURL string `json:"long_url"`
}

type StatsResponse struct {
	ShortCode    string     `json:"short_code"`
	LongURL      string     `json:"long_url"`
	Clicks       int64      `json:"clicks"`
	LastAccessed *time.Time `json:"last_accessed"`
}
