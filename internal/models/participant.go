package models

// Participant is a student's registration record for one activity. The
// composite unique index prevents the same email from registering twice for
// the same activity.
type Participant struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Email      string `gorm:"size:255;not null;uniqueIndex:uq_participant_email_activity" json:"email"`
	ActivityID uint   `gorm:"not null;uniqueIndex:uq_participant_email_activity" json:"activity_id"`
}
