package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/repository"
)

type seedActivity struct {
	name            string
	description     string
	schedule        string
	maxParticipants int
	participants    []string
}

// seedData is the fixed activity catalogue the school ships with.
var seedData = []seedActivity{
	{"Chess Club", "Learn strategies and compete in chess tournaments", "Fridays, 3:30 PM - 5:00 PM", 12,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"}},
	{"Programming Class", "Learn programming fundamentals and build software projects", "Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
		[]string{"emma@mergington.edu", "sophia@mergington.edu"}},
	{"Gym Class", "Physical education and sports activities", "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
		[]string{"john@mergington.edu", "olivia@mergington.edu"}},
	{"Soccer Team", "Join the school soccer team and compete in matches", "Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 22,
		[]string{"liam@mergington.edu", "noah@mergington.edu"}},
	{"Basketball Team", "Practice and play basketball with the school team", "Wednesdays and Fridays, 3:30 PM - 5:00 PM", 15,
		[]string{"ava@mergington.edu", "mia@mergington.edu"}},
	{"Art Club", "Explore your creativity through painting and drawing", "Thursdays, 3:30 PM - 5:00 PM", 15,
		[]string{"amelia@mergington.edu", "harper@mergington.edu"}},
	{"Drama Club", "Act, direct, and produce plays and performances", "Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
		[]string{"ella@mergington.edu", "scarlett@mergington.edu"}},
	{"Math Club", "Solve challenging problems and participate in math competitions", "Tuesdays, 3:30 PM - 4:30 PM", 10,
		[]string{"james@mergington.edu", "benjamin@mergington.edu"}},
	{"Debate Team", "Develop public speaking and argumentation skills", "Fridays, 4:00 PM - 5:30 PM", 12,
		[]string{"charlotte@mergington.edu", "henry@mergington.edu"}},
}

// SeedService populates the activity catalogue on first run.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	activities repository.ActivityRepository
	logger     zerolog.Logger
}

// NewSeedService constructs the seeding service.
func NewSeedService(activities repository.ActivityRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		activities: activities,
		logger:     logger.With().Str("component", "seed_service").Logger(),
	}
}

// Seed inserts the fixed catalogue with its sample participants when the
// activities table is empty. A non-empty table makes Seed a no-op, so
// repeated startups never duplicate data.
func (s *seedService) Seed(ctx context.Context) error {
	count, err := s.activities.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedData {
		activity := models.Activity{
			Name:            item.name,
			Description:     item.description,
			Schedule:        item.schedule,
			MaxParticipants: item.maxParticipants,
		}
		for _, email := range item.participants {
			activity.Participants = append(activity.Participants, models.Participant{Email: email})
		}
		if err := s.activities.Create(ctx, &activity); err != nil {
			return err
		}
	}

	s.logger.Info().Int("activities", len(seedData)).Msg("seeded activity catalogue")
	return nil
}
