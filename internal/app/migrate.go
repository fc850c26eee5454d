package app

import (
	"context"

	"github.com/SirTuppy/route-setter-scheduler/internal/config"
	"github.com/SirTuppy/route-setter-scheduler/internal/crew"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"
	"github.com/SirTuppy/route-setter-scheduler/internal/messaging/kafka"
	"github.com/SirTuppy/route-setter-scheduler/internal/schedule"
	"github.com/SirTuppy/route-setter-scheduler/internal/timeoff"
	"github.com/SirTuppy/route-setter-scheduler/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	err := db.WithContext(ctx).AutoMigrate(
		&gym.Gym{},
		&gym.Wall{},
		&user.User{},
		&crew.Crew{},
		&crew.Member{},
		&schedule.Entry{},
		&schedule.EntryWall{},
		&schedule.EntrySetter{},
		&timeoff.Request{},
	)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Exec(kafka.OutboxDDL).Error; err != nil {
		return err
	}

	log.Info("schema migrated")
	return nil
}

type SeedResult struct {
	Gyms  int
	Walls int
}

// SeedCatalog upserts the vacation pseudo-gym plus every configured gym and
// wall. Running it twice leaves the catalog unchanged.
func SeedCatalog(ctx context.Context, repo gym.Repository, seeds []config.GymSeed) (SeedResult, error) {
	log := zap.L().Named("app.seed")
	var res SeedResult

	vacation := &gym.Gym{ID: gym.VacationGymID, Name: "Vacation", Active: true}
	if err := repo.Upsert(ctx, vacation); err != nil {
		return res, err
	}
	res.Gyms++

	for _, s := range seeds {
		g := &gym.Gym{
			ID:       s.ID,
			Name:     s.Name,
			Location: s.Location,
			Active:   true,
		}
		if s.PairedGymID != "" {
			paired := s.PairedGymID
			g.PairedGymID = &paired
		}
		if err := repo.Upsert(ctx, g); err != nil {
			return res, err
		}
		res.Gyms++

		for _, ws := range s.Walls {
			w := &gym.Wall{
				GymID:           s.ID,
				Name:            ws.Name,
				WallType:        ws.Type,
				Difficulty:      ws.Difficulty,
				ClimbsPerSetter: ws.ClimbsPerSetter,
				Active:          true,
			}
			if ws.Angle != "" {
				angle := ws.Angle
				w.Angle = &angle
			}
			if err := repo.UpsertWall(ctx, w); err != nil {
				return res, err
			}
			res.Walls++
		}
		log.Info("gym seeded", zap.String("gym_id", s.ID), zap.Int("walls", len(s.Walls)))
	}

	return res, nil
}
