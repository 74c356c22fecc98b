package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/mergington-high/activities-api/internal/dto"
	"github.com/mergington-high/activities-api/internal/models"
)

func TestListActivities(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Chess Club", 12, "michael@mergington.edu", "daniel@mergington.edu")
	seedActivity(t, db, "Art Club", 15)

	resp, err := app.Test(httptest.NewRequest("GET", "/activities", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]dto.ActivityDetail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload, 2)
	require.Equal(t, 12, payload["Chess Club"].MaxParticipants)
	require.ElementsMatch(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, payload["Chess Club"].Participants)
}

func TestSignupFlow(t *testing.T) {
	app, db := setupApp(t)
	activity := seedActivity(t, db, "Chess Club", 12, "michael@mergington.edu", "daniel@mergington.edu")

	resp, err := app.Test(httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=new@x.edu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Signed up new@x.edu for Chess Club", payload.Message)

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Where("activity_id = ?", activity.ID).Count(&count).Error)
	require.Equal(t, int64(3), count)

	var logs []models.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, models.AuditActionSignup, logs[0].Action)
	require.Equal(t, "new@x.edu", logs[0].UserEmail)
	require.Equal(t, "Chess Club", logs[0].ActivityName)

	// Repeating the identical call is a conflict and leaves the roster untouched.
	resp, err = app.Test(httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=new@x.edu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.NoError(t, db.Model(&models.Participant{}).Where("activity_id = ?", activity.ID).Count(&count).Error)
	require.Equal(t, int64(3), count)
}

func TestSignupUnknownActivity(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/activities/Knitting%20Circle/signup?email=a@x.edu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSignupCapacityExceeded(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Math Club", 2, "james@mergington.edu", "benjamin@mergington.edu")

	resp, err := app.Test(httptest.NewRequest("POST", "/activities/Math%20Club/signup?email=late@x.edu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestSignupWrongRoleForbidden(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Chess Club", 12)

	req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=a@x.edu", nil)
	req.Header.Set("Authorization", "Bearer organizer-token-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSignupInvalidEmail(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Chess Club", 12)

	resp, err := app.Test(httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=nope", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnregisterFlow(t *testing.T) {
	app, db := setupApp(t)
	activity := seedActivity(t, db, "Chess Club", 12, "michael@mergington.edu", "daniel@mergington.edu")

	req := httptest.NewRequest("DELETE", "/activities/Chess%20Club/unregister?email=daniel@mergington.edu", nil)
	req.Header.Set("Authorization", "Bearer organizer-token-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Unregistered daniel@mergington.edu from Chess Club", payload.Message)

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Where("activity_id = ?", activity.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)

	var logs []models.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, models.AuditActionUnregister, logs[0].Action)
}

func TestUnregisterNotRegistered(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Chess Club", 12, "michael@mergington.edu")

	resp, err := app.Test(httptest.NewRequest("DELETE", "/activities/Chess%20Club/unregister?email=ghost@x.edu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnregisterStudentRoleForbidden(t *testing.T) {
	app, db := setupApp(t)
	seedActivity(t, db, "Chess Club", 12, "michael@mergington.edu")

	req := httptest.NewRequest("DELETE", "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil)
	req.Header.Set("Authorization", "Bearer student-token-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
