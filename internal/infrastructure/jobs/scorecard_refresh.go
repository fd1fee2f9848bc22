package jobs

import (
	"context"
	"log"
	"time"

	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/internal/usecases"
)

// ScorecardRefreshJob periodically rebuilds every team's scorecard. Normal
// activity (uploads, challenge transitions) triggers its own recompute;
// this job catches drift from manual ledger edits and timed modifier
// windows opening or closing without any team activity.
type ScorecardRefreshJob struct {
	teamRepo   repositories.TeamRepository
	scorecards *usecases.ScorecardUsecase
	interval   time.Duration
	stop       chan struct{}
}

func NewScorecardRefreshJob(
	teamRepo repositories.TeamRepository,
	scorecards *usecases.ScorecardUsecase,
	interval time.Duration,
) *ScorecardRefreshJob {
	return &ScorecardRefreshJob{
		teamRepo:   teamRepo,
		scorecards: scorecards,
		interval:   interval,
		stop:       make(chan struct{}),
	}
}

func (j *ScorecardRefreshJob) Start(ctx context.Context) {
	log.Println("🕐 Starting scorecard refresh job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Scorecard refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Scorecard refresh job stopped")
			return
		case <-ticker.C:
			j.refreshAll(ctx)
		}
	}
}

func (j *ScorecardRefreshJob) Stop() {
	close(j.stop)
}

func (j *ScorecardRefreshJob) refreshAll(ctx context.Context) {
	teams, err := j.teamRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Error listing teams for scorecard refresh: %v", err)
		return
	}

	for _, team := range teams {
		if _, err := j.scorecards.Recompute(ctx, team.ID); err != nil {
			log.Printf("❌ Error recomputing scorecard for team %s: %v", team.ID, err)
		}
	}
}
