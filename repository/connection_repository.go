package repository

import (
	"dbgatewayapi/config"
	"dbgatewayapi/models"

	"gorm.io/gorm"
)

// ConnectionRepository provides read access to saved connection profiles and
// records connection test outcomes.
type ConnectionRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.ConnectionProfile, error)
	UpdateStatus(tx *gorm.DB, id uint, status string) error
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a repository over the global profile store.
func NewConnectionRepository() ConnectionRepository {
	return &connectionRepository{
		db: config.DB,
	}
}

// NewConnectionRepositoryWithDB creates a repository over db.
func NewConnectionRepositoryWithDB(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// GetByID returns gorm.ErrRecordNotFound when no profile has the id.
func (r *connectionRepository) GetByID(tx *gorm.DB, id uint) (*models.ConnectionProfile, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var profile models.ConnectionProfile
	if err := db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateStatus writes status unconditionally. MySQL reports zero affected rows
// when the value is unchanged, so RowsAffected is not checked.
func (r *connectionRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Model(&models.ConnectionProfile{}).Where("id = ?", id).Update("status", status).Error
}
