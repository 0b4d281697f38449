package models

import "time"

// SubjectProgress tracks one user's level and XP in one subject. A missing
// row is equivalent to (Novice, 0). Only the progress tracker mutates it.
type SubjectProgress struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Username  string    `gorm:"size:100;not null;uniqueIndex:idx_progress_user_subject" json:"-"`
	Subject   string    `gorm:"size:100;not null;uniqueIndex:idx_progress_user_subject" json:"subject"`
	Level     Level     `gorm:"size:20;not null;default:'Novice'" json:"level"`
	XP        int       `gorm:"column:xp;not null;default:0" json:"xp"`
	UpdatedAt time.Time `json:"-"`
}

func (SubjectProgress) TableName() string { return "progreso" }

// DefaultProgress is the implicit state of any (user, subject) pair without
// a stored record.
func DefaultProgress(username, subject string) SubjectProgress {
	return SubjectProgress{Username: username, Subject: subject, Level: LevelNovice, XP: 0}
}
