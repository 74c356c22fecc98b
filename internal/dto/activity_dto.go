package dto

import "github.com/mergington-high/activities-api/internal/models"

// ActivityDetail is the per-activity payload in the activities listing.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivityMap converts the stored activities into the name-keyed listing
// the front end consumes.
func NewActivityMap(activities []models.Activity) map[string]ActivityDetail {
	result := make(map[string]ActivityDetail, len(activities))
	for _, activity := range activities {
		emails := make([]string, 0, len(activity.Participants))
		for _, participant := range activity.Participants {
			emails = append(emails, participant.Email)
		}
		result[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    emails,
		}
	}
	return result
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
