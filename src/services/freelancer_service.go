package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/repositories"
)

var (
	ErrProfileNotFound = errors.New("freelancer profile not found")
	ErrProfileExists   = errors.New("freelancer profile already exists for this user")
	ErrAlreadyRated    = errors.New("client already rated this freelancer for this project")
)

type FreelancerService struct {
	Repos *repositories.Repos
}

func NewFreelancerService(repos *repositories.Repos) *FreelancerService {
	return &FreelancerService{Repos: repos}
}

func (s *FreelancerService) CreateProfile(input dto.CreateFreelancerProfileDTO) (models.FreelancerProfile, error) {
	if _, err := s.Repos.Freelancer.GetByUserID(input.UserID); err == nil {
		return models.FreelancerProfile{}, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FreelancerProfile{}, err
	}

	skills, err := json.Marshal(input.Skills)
	if err != nil {
		return models.FreelancerProfile{}, err
	}

	profile := models.FreelancerProfile{
		UserID:     input.UserID,
		Title:      input.Title,
		Bio:        input.Bio,
		Skills:     datatypes.JSON(skills),
		HourlyRate: input.HourlyRate,
		Available:  true,
	}

	if err := s.Repos.Freelancer.Create(&profile); err != nil {
		return models.FreelancerProfile{}, err
	}
	return profile, nil
}

func (s *FreelancerService) GetProfile(id uint) (models.FreelancerProfile, error) {
	profile, err := s.Repos.Freelancer.GetByID(id)
	if err != nil {
		return models.FreelancerProfile{}, asNotFound(err, ErrProfileNotFound)
	}
	s.fillRatingStats(&profile)
	return profile, nil
}

func (s *FreelancerService) GetProfileByUser(userID uint) (models.FreelancerProfile, error) {
	profile, err := s.Repos.Freelancer.GetByUserID(userID)
	if err != nil {
		return models.FreelancerProfile{}, asNotFound(err, ErrProfileNotFound)
	}
	s.fillRatingStats(&profile)
	return profile, nil
}

func (s *FreelancerService) ListProfiles() ([]models.FreelancerProfile, error) {
	profiles, err := s.Repos.Freelancer.List()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		s.fillRatingStats(&profiles[i])
	}
	return profiles, nil
}

func (s *FreelancerService) SearchBySkill(skill string) ([]models.FreelancerProfile, error) {
	profiles, err := s.Repos.Freelancer.SearchBySkill(skill)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		s.fillRatingStats(&profiles[i])
	}
	return profiles, nil
}

func (s *FreelancerService) UpdateProfile(id uint, input dto.UpdateFreelancerProfileDTO) (models.FreelancerProfile, error) {
	profile, err := s.Repos.Freelancer.GetByID(id)
	if err != nil {
		return models.FreelancerProfile{}, asNotFound(err, ErrProfileNotFound)
	}

	if input.Title != nil {
		profile.Title = *input.Title
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Skills != nil {
		skills, err := json.Marshal(input.Skills)
		if err != nil {
			return models.FreelancerProfile{}, err
		}
		profile.Skills = datatypes.JSON(skills)
	}
	if input.HourlyRate != nil {
		profile.HourlyRate = *input.HourlyRate
	}
	if input.Available != nil {
		profile.Available = *input.Available
	}

	if err := s.Repos.Freelancer.Update(&profile); err != nil {
		return models.FreelancerProfile{}, err
	}
	s.fillRatingStats(&profile)
	return profile, nil
}

func (s *FreelancerService) DeleteProfile(id uint) error {
	if _, err := s.Repos.Freelancer.GetByID(id); err != nil {
		return asNotFound(err, ErrProfileNotFound)
	}
	return s.Repos.Freelancer.Delete(id)
}

// AddRating enforces one rating per client per project.
func (s *FreelancerService) AddRating(profileID uint, input dto.AddRatingDTO) (models.Rating, error) {
	if _, err := s.Repos.Freelancer.GetByID(profileID); err != nil {
		return models.Rating{}, asNotFound(err, ErrProfileNotFound)
	}

	exists, err := s.Repos.Rating.Exists(profileID, input.ProjectID, input.ClientID)
	if err != nil {
		return models.Rating{}, err
	}
	if exists {
		return models.Rating{}, ErrAlreadyRated
	}

	rating := models.Rating{
		ProfileID: profileID,
		ProjectID: input.ProjectID,
		ClientID:  input.ClientID,
		Score:     input.Score,
		Comment:   input.Comment,
	}

	if err := s.Repos.Rating.Create(&rating); err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

func (s *FreelancerService) ListRatings(profileID uint) ([]models.Rating, error) {
	if _, err := s.Repos.Freelancer.GetByID(profileID); err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return s.Repos.Rating.ListByProfile(profileID)
}

func (s *FreelancerService) fillRatingStats(profile *models.FreelancerProfile) {
	avg, count, err := s.Repos.Rating.Stats(profile.ID)
	if err == nil {
		profile.AvgRating = avg
		profile.RatingCount = count
	}
}
