package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mergington-high/activities-api/internal/models"
)

func createAuditEntry(t *testing.T, db *gorm.DB, action string, age time.Duration) models.AuditLog {
	t.Helper()
	entry := models.AuditLog{
		Timestamp: time.Now().UTC().Add(-age),
		Action:    action,
		UserEmail: "student@mergington.edu",
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func TestAuditLogRepositoryListOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	createAuditEntry(t, db, models.AuditActionSignup, 3*time.Hour)
	createAuditEntry(t, db, models.AuditActionSignup, 2*time.Hour)
	newest := createAuditEntry(t, db, models.AuditActionUnregister, time.Hour)

	entries, total, err := repo.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, entries, 2)
	require.Equal(t, newest.ID, entries[0].ID, "expected newest entry first")

	entries, total, err = repo.List(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, entries, 1)
}

func TestAuditLogRepositoryDeleteOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	old := createAuditEntry(t, db, models.AuditActionSignup, 100*24*time.Hour)
	recent := createAuditEntry(t, db, models.AuditActionSignup, time.Hour)

	deleted, err := repo.DeleteOlderThan(context.Background(), time.Now().UTC().AddDate(0, 0, -90))
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	entries, total, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, recent.ID, entries[0].ID)
	require.NotEqual(t, old.ID, entries[0].ID)
}

func TestAuditLogRepositoryCountByAction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	createAuditEntry(t, db, models.AuditActionSignup, time.Hour)
	createAuditEntry(t, db, models.AuditActionSignup, 2*time.Hour)
	createAuditEntry(t, db, models.AuditActionUnregister, 3*time.Hour)

	counts, err := repo.CountByAction(context.Background())
	require.NoError(t, err)

	byAction := make(map[string]int64, len(counts))
	for _, row := range counts {
		byAction[row.Action] = row.Count
	}
	require.Equal(t, int64(2), byAction[models.AuditActionSignup])
	require.Equal(t, int64(1), byAction[models.AuditActionUnregister])
}

func TestAuditLogRepositoryTimestampBounds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditLogRepository(db)

	oldest, newest, err := repo.TimestampBounds(context.Background())
	require.NoError(t, err)
	require.Nil(t, oldest)
	require.Nil(t, newest)

	first := createAuditEntry(t, db, models.AuditActionSignup, 48*time.Hour)
	last := createAuditEntry(t, db, models.AuditActionSignup, time.Hour)

	oldest, newest, err = repo.TimestampBounds(context.Background())
	require.NoError(t, err)
	require.NotNil(t, oldest)
	require.NotNil(t, newest)
	require.WithinDuration(t, first.Timestamp, *oldest, time.Second)
	require.WithinDuration(t, last.Timestamp, *newest, time.Second)
}
