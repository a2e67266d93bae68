package models

import "time"

// TimeModel only tracks creation; triage records are immutable once written.
type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
