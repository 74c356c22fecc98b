package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

// AuditActionCount is one row of the grouped-by-action aggregate.
type AuditActionCount struct {
	Action string
	Count  int64
}

// AuditLogRepository persists the signup/unregister audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error)
	ListAll(ctx context.Context) ([]models.AuditLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountByAction(ctx context.Context) ([]AuditActionCount, error)
	TimestampBounds(ctx context.Context) (oldest, newest *time.Time, err error)
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository constructs the audit log repository.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Zero limit is an empty page; negative disables the page bound.
	query := r.db.WithContext(ctx).Order("timestamp DESC")
	if limit >= 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var entries []models.AuditLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *auditLogRepository) ListAll(ctx context.Context) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *auditLogRepository) CountByAction(ctx context.Context) ([]AuditActionCount, error) {
	var counts []AuditActionCount
	err := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Select("action, COUNT(*) AS count").
		Group("action").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *auditLogRepository) TimestampBounds(ctx context.Context) (*time.Time, *time.Time, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}
	if total == 0 {
		return nil, nil, nil
	}

	var oldest, newest models.AuditLog
	if err := r.db.WithContext(ctx).Order("timestamp ASC").First(&oldest).Error; err != nil {
		return nil, nil, err
	}
	if err := r.db.WithContext(ctx).Order("timestamp DESC").First(&newest).Error; err != nil {
		return nil, nil, err
	}

	return &oldest.Timestamp, &newest.Timestamp, nil
}
