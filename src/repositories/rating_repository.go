package repositories

import (
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/models"
)

type RatingRepo interface {
	Create(rating *models.Rating) error
	ListByProfile(profileID uint) ([]models.Rating, error)
	Exists(profileID, projectID, clientID uint) (bool, error)
	Stats(profileID uint) (avg float64, count int64, err error)
}

type DBRatingRepo struct {
	db *gorm.DB
}

func (r *DBRatingRepo) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

func (r *DBRatingRepo) ListByProfile(profileID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("profile_id = ?", profileID).Order("created_at desc").Find(&ratings).Error
	return ratings, err
}

func (r *DBRatingRepo) Exists(profileID, projectID, clientID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).
		Where("profile_id = ? AND project_id = ? AND client_id = ?", profileID, projectID, clientID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBRatingRepo) Stats(profileID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as avg, COUNT(*) as count").
		Where("profile_id = ?", profileID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
