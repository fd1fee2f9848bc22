package entities

import (
	"time"

	"github.com/google/uuid"
)

// Scorecard is the derived per-team aggregate shown on the leaderboard.
// Rows are append-only; the newest row per team is authoritative and older
// rows form the scoring history.
type Scorecard struct {
	ID                  uuid.UUID `json:"id"`
	TeamID              uuid.UUID `json:"teamId"`
	ChallengesCompleted int       `json:"challengesCompleted"`
	DistanceTraveled    float64   `json:"distanceTraveled"`
	DistanceEarned      float64   `json:"distanceEarned"`
	CreatedAt           time.Time `json:"createdAt"`
}

// LeaderboardEntry is one scoreboard row, joined with its team
type LeaderboardEntry struct {
	Rank                int       `json:"rank"`
	TeamID              uuid.UUID `json:"teamId"`
	TeamName            string    `json:"teamName"`
	TeamColor           string    `json:"teamColor"`
	ChallengesCompleted int       `json:"challengesCompleted"`
	DistanceTraveled    float64   `json:"distanceTraveled"`
	DistanceEarned      float64   `json:"distanceEarned"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
