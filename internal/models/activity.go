package models

// Activity represents an extracurricular offering with a participant cap.
// Activities are created at seed time only; no endpoint mutates them.
type Activity struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description     string        `gorm:"type:text;not null" json:"description"`
	Schedule        string        `gorm:"size:255;not null" json:"schedule"`
	MaxParticipants int           `gorm:"not null" json:"max_participants"`
	Participants    []Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"participants"`
}

// HasCapacity reports whether the activity can accept another participant
// given the current roster size.
func (a Activity) HasCapacity(current int64) bool {
	return current < int64(a.MaxParticipants)
}
