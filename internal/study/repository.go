package study

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyai-server/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSetWithItems persists the set and its items in a single transaction.
// The parent set is inserted first so every item can reference its generated
// id; a failure at either step leaves nothing behind.
func (r *Repository) CreateSetWithItems(ctx context.Context, set *models.StudySet, items []models.StudyItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(set).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].StudySetID = set.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *Repository) GetSet(ctx context.Context, id uuid.UUID) (*models.StudySet, []models.StudyItem, error) {
	var set models.StudySet
	if err := r.db.WithContext(ctx).First(&set, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	var items []models.StudyItem
	if err := r.db.WithContext(ctx).Where("study_set_id = ?", id).Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return &set, items, nil
}

func (r *Repository) ListSetsByUser(ctx context.Context, userID string) ([]models.StudySetSummary, error) {
	var sets []models.StudySetSummary
	err := r.db.WithContext(ctx).
		Model(&models.StudySet{}).
		Select("id", "title", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sets).Error
	return sets, err
}
