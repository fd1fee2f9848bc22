package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team is one riding group. Teams are created at setup time and share a
// single secret credential; the plain secret is never stored.
type Team struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Members    []string  `json:"members"`
	Color      string    `json:"color"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateTeamInput is the admin payload for seeding a team
type CreateTeamInput struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Color   string   `json:"color"`
	Secret  string   `json:"secret"`
}

// LoginInput carries the shared team credential
type LoginInput struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Team         *Team  `json:"team"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
