package common

import "time"

type UserResult struct {
	Id           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Subscription string    `json:"subscription"`
	IsAdmin      bool      `json:"is_admin"`
}

type TokenResult struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}
