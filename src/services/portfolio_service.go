package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/models"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/storage"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

const downloadURLExpiry = 15 * time.Minute

type PortfolioService struct {
	Repos *repositories.Repos
	Store storage.ObjectStore
}

func NewPortfolioService(repos *repositories.Repos, store storage.ObjectStore) *PortfolioService {
	return &PortfolioService{
		Repos: repos,
		Store: store,
	}
}

// CreateItem stores an optional attachment in object storage before
// persisting the item. A nil reader means no attachment.
func (s *PortfolioService) CreateItem(ctx context.Context, profileID uint, input dto.CreatePortfolioItemDTO,
	attachment io.Reader, size int64, filename, contentType string) (models.PortfolioItem, error) {

	if _, err := s.Repos.Freelancer.GetByID(profileID); err != nil {
		return models.PortfolioItem{}, asNotFound(err, ErrProfileNotFound)
	}

	item := models.PortfolioItem{
		ProfileID:   profileID,
		Title:       input.Title,
		Description: input.Description,
		ProjectURL:  input.ProjectURL,
	}

	if attachment != nil && s.Store != nil {
		key := fmt.Sprintf("portfolio/%d/%s%s", profileID, uuid.NewString(), filepath.Ext(filename))
		if err := s.Store.Upload(ctx, key, attachment, size, contentType); err != nil {
			return models.PortfolioItem{}, err
		}
		item.AttachmentKey = key
	}

	if err := s.Repos.Portfolio.Create(&item); err != nil {
		return models.PortfolioItem{}, err
	}
	return item, nil
}

func (s *PortfolioService) GetItem(id uint) (models.PortfolioItem, error) {
	item, err := s.Repos.Portfolio.GetByID(id)
	if err != nil {
		return models.PortfolioItem{}, asNotFound(err, ErrPortfolioItemNotFound)
	}
	return item, nil
}

func (s *PortfolioService) ListItems(profileID uint) ([]models.PortfolioItem, error) {
	if _, err := s.Repos.Freelancer.GetByID(profileID); err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return s.Repos.Portfolio.ListByProfile(profileID)
}

func (s *PortfolioService) UpdateItem(id uint, input dto.UpdatePortfolioItemDTO) (models.PortfolioItem, error) {
	item, err := s.Repos.Portfolio.GetByID(id)
	if err != nil {
		return models.PortfolioItem{}, asNotFound(err, ErrPortfolioItemNotFound)
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.ProjectURL != nil {
		item.ProjectURL = *input.ProjectURL
	}

	if err := s.Repos.Portfolio.Update(&item); err != nil {
		return models.PortfolioItem{}, err
	}
	return item, nil
}

// AttachmentURL returns a short-lived download link for the item's file.
func (s *PortfolioService) AttachmentURL(ctx context.Context, id uint) (string, error) {
	item, err := s.Repos.Portfolio.GetByID(id)
	if err != nil {
		return "", asNotFound(err, ErrPortfolioItemNotFound)
	}
	if item.AttachmentKey == "" || s.Store == nil {
		return "", ErrPortfolioItemNotFound
	}
	return s.Store.PresignedURL(ctx, item.AttachmentKey, downloadURLExpiry)
}

func (s *PortfolioService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.Repos.Portfolio.GetByID(id)
	if err != nil {
		return asNotFound(err, ErrPortfolioItemNotFound)
	}

	if item.AttachmentKey != "" && s.Store != nil {
		if err := s.Store.Remove(ctx, item.AttachmentKey); err != nil {
			logger.WithError(err).Warn("Failed to remove portfolio attachment from object storage")
		}
	}
	return s.Repos.Portfolio.Delete(id)
}
