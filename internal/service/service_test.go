package service

import (
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

var serviceDBSeq atomic.Int64

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	// t.Name() alone is not unique when a test opens several databases
	// (e.g. in a loop); the shared-cache DSN would then leak rows between them.
	dsn := fmt.Sprintf("file:svc_%s_%d?mode=memory&cache=shared", t.Name(), serviceDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Activity{}, &models.Participant{}, &models.AuditLog{}))
	return db
}

func seedActivityRow(t *testing.T, db *gorm.DB, name string, max int, emails ...string) models.Activity {
	t.Helper()
	activity := models.Activity{
		Name:            name,
		Description:     name + " description",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: max,
	}
	for _, email := range emails {
		activity.Participants = append(activity.Participants, models.Participant{Email: email})
	}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func participantCount(t *testing.T, db *gorm.DB, activityID uint) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.Model(&models.Participant{}).Where("activity_id = ?", activityID).Count(&total).Error)
	return total
}

func auditEntries(t *testing.T, db *gorm.DB) []models.AuditLog {
	t.Helper()
	var entries []models.AuditLog
	require.NoError(t, db.Order("id ASC").Find(&entries).Error)
	return entries
}
