package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

var (
	// ErrDuplicateParticipant signals the (email, activity) pair already exists.
	ErrDuplicateParticipant = errors.New("participant already registered")
	// ErrActivityFull signals the activity has reached max_participants.
	ErrActivityFull = errors.New("activity at full capacity")
)

// ParticipantRepository manages activity roster membership.
type ParticipantRepository interface {
	Register(ctx context.Context, activity models.Activity, email string) error
	FindByActivityAndEmail(ctx context.Context, activityID uint, email string) (models.Participant, error)
	CountByActivity(ctx context.Context, activityID uint) (int64, error)
	Delete(ctx context.Context, participant models.Participant) error
}

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository constructs the participant repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// Register performs the duplicate check, capacity check, and insert inside a
// single transaction so the capacity invariant holds under the store's write
// serialization, and the composite unique index turns duplicate races into
// ErrDuplicateParticipant rather than a second row.
func (r *participantRepository) Register(ctx context.Context, activity models.Activity, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Participant
		err := tx.Where("activity_id = ? AND email = ?", activity.ID, email).First(&existing).Error
		if err == nil {
			return ErrDuplicateParticipant
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var current int64
		if err := tx.Model(&models.Participant{}).Where("activity_id = ?", activity.ID).Count(&current).Error; err != nil {
			return err
		}
		if !activity.HasCapacity(current) {
			return ErrActivityFull
		}

		participant := models.Participant{Email: email, ActivityID: activity.ID}
		if err := tx.Create(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateParticipant
			}
			return err
		}
		return nil
	})
}

func (r *participantRepository) FindByActivityAndEmail(ctx context.Context, activityID uint, email string) (models.Participant, error) {
	var participant models.Participant
	if err := r.db.WithContext(ctx).Where("activity_id = ? AND email = ?", activityID, email).First(&participant).Error; err != nil {
		return models.Participant{}, err
	}
	return participant, nil
}

func (r *participantRepository) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Participant{}).Where("activity_id = ?", activityID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *participantRepository) Delete(ctx context.Context, participant models.Participant) error {
	return r.db.WithContext(ctx).Delete(&participant).Error
}
