package common

import "time"

type BoardResult struct {
	Id          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedDate time.Time `json:"created_date"`
	User        int64     `json:"user"`
}

type ColumnResult struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Position  int       `json:"position"`
	Board     int64     `json:"board"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CardResult struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Position     int       `json:"position"`
	Column       int64     `json:"column"`
	ExternalLink *string   `json:"external_link"`
	UpdatedAt    time.Time `json:"updated_at"`
}
