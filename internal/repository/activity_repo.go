package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

// ActivityRepository reads the seeded activity catalogue.
type ActivityRepository interface {
	ListWithParticipants(ctx context.Context) ([]models.Activity, error)
	GetByName(ctx context.Context, name string) (models.Activity, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, activity *models.Activity) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs the activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListWithParticipants(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.WithContext(ctx).Preload("Participants").Order("name ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&activity).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Activity{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}
