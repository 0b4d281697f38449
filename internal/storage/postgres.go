package storage

import (
	"context"
	"errors"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres is the durable tier. It implements UserStore, ProgressStore and
// DeckStore on top of gorm.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	return p.db.WithContext(ctx).Create(user).Error
}

func (p *Postgres) GetProgress(ctx context.Context, username, subject string) (*models.SubjectProgress, error) {
	var progress models.SubjectProgress
	err := p.db.WithContext(ctx).
		Where("username = ? AND subject = ?", username, subject).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (p *Postgres) ListProgress(ctx context.Context, username string) (map[string]models.SubjectProgress, error) {
	var rows []models.SubjectProgress
	err := p.db.WithContext(ctx).Where("username = ?", username).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.SubjectProgress, len(rows))
	for _, row := range rows {
		out[row.Subject] = row
	}
	return out, nil
}

func (p *Postgres) PutProgress(ctx context.Context, progress models.SubjectProgress) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}, {Name: "subject"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "xp", "updated_at"}),
		}).
		Create(&progress).Error
}

func (p *Postgres) ListDecks(ctx context.Context, username string) (map[string]models.Deck, error) {
	var decks []models.Deck
	err := p.db.WithContext(ctx).
		Where("username = ?", username).
		Order("creado DESC").
		Find(&decks).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.Deck, len(decks))
	for _, d := range decks {
		out[d.Name] = d
	}
	return out, nil
}

func (p *Postgres) PutDeck(ctx context.Context, deck models.Deck) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"preguntas", "materia", "sistema"}),
		}).
		Create(&deck).Error
}

func (p *Postgres) DeleteDeck(ctx context.Context, username, name string) (bool, error) {
	result := p.db.WithContext(ctx).
		Where("username = ? AND name = ?", username, name).
		Delete(&models.Deck{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
