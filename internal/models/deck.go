package models

import (
	"errors"
	"fmt"
	"time"
)

// Deck is a named, ordered set of questions generated for one subject/topic
// pair. Column names match the documents the original Firestore data was
// stored under (preguntas/materia/sistema/creado).
type Deck struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	Username  string     `gorm:"size:100;not null;uniqueIndex:idx_deck_user_name" json:"-"`
	Name      string     `gorm:"size:255;not null;uniqueIndex:idx_deck_user_name" json:"name"`
	Questions []Question `gorm:"column:preguntas;serializer:json" json:"questions"`
	Subject   string     `gorm:"column:materia;size:100;not null" json:"subject"`
	Topic     string     `gorm:"column:sistema;size:100;not null" json:"topic"`
	CreatedAt time.Time  `gorm:"column:creado" json:"created_at"`
}

func (Deck) TableName() string { return "mazos" }

// Validate enforces the deck invariant: a non-empty sequence of well-formed
// questions. A deck failing this must never be persisted or studied.
func (d Deck) Validate() error {
	if d.Name == "" {
		return errors.New("deck name is empty")
	}
	if len(d.Questions) == 0 {
		return errors.New("deck has no questions")
	}
	for i, q := range d.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}
