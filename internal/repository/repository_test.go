package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Activity{}, &models.Participant{}, &models.AuditLog{}))
	return db
}

func createActivity(t *testing.T, db *gorm.DB, name string, max int, emails ...string) models.Activity {
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
