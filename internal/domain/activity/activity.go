package activity

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeExperience Type = "experience"
	TypeProject    Type = "project"
	TypeSkill      Type = "skill"
)

// Activity is a derived, read-only summary of a recent create event. It is
// never stored; both fields and ordering exist purely for display.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
