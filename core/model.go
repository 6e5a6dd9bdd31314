package core

import (
	"time"
)

// Character is the one durable roster entity.
// mutable, last-writer-wins, no history
type Character struct {
	Name        string    `json:"name" gorm:"primaryKey;type:text"`
	Faceclaim   string    `json:"faceclaim" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	Bio         string    `json:"bio" gorm:"type:text;not null"`
	Secret      string    `json:"-" gorm:"type:text;not null"`
	Gender      *string   `json:"gender,omitempty" gorm:"type:text"`
	Orientation *string   `json:"orientation,omitempty" gorm:"type:text"`
	Program     *string   `json:"program,omitempty" gorm:"type:text"`
	Year        *string   `json:"year,omitempty" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// NewCharacter is the payload of a create operation
type NewCharacter struct {
	Name        string  `json:"name"`
	Faceclaim   string  `json:"faceclaim"`
	Image       string  `json:"image"`
	Bio         string  `json:"bio"`
	Secret      string  `json:"secret"`
	Gender      *string `json:"gender,omitempty"`
	Orientation *string `json:"orientation,omitempty"`
	Program     *string `json:"program,omitempty"`
	Year        *string `json:"year,omitempty"`
}

// CharacterPatch is the payload of an edit operation.
// nil fields are left untouched.
type CharacterPatch struct {
	Faceclaim   *string `json:"faceclaim,omitempty"`
	Image       *string `json:"image,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Orientation *string `json:"orientation,omitempty"`
	Program     *string `json:"program,omitempty"`
	Year        *string `json:"year,omitempty"`
}

// Event is websocket root packet model.
// create carries the public snapshot, edit and delete only the name.
type Event struct {
	Action    string `json:"action"`
	Name      string `json:"name"`
	Faceclaim string `json:"faceclaim,omitempty"`
	Image     string `json:"image,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// NewEvent builds the event emitted after a committed mutation
func NewEvent(action string, character Character) Event {
	event := Event{
		Action: action,
		Name:   character.Name,
	}
	if action == EventActionCreate {
		event.Faceclaim = character.Faceclaim
		event.Image = character.Image
		event.Bio = character.Bio
	}
	return event
}
