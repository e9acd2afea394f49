package service

import (
	"context"
	"errors"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
	"github.com/forgestack/atlas-backend/pkg/util"
)

// SettingsService manages the singleton website configuration.
type SettingsService struct {
	repo repository.ISettingsRepository
}

func NewSettingsService(repo repository.ISettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get creates the default singleton on first read.
func (s *SettingsService) Get(ctx context.Context) (*model.WebsiteConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, generic.ErrNotFound) {
		return nil, err
	}

	cfg = model.DefaultWebsiteConfig()
	if err := s.repo.Insert(ctx, cfg); err != nil {
		if errors.Is(err, repository.ErrSingletonExists) {
			// Lost the create race; the winner's document is the singleton.
			return s.repo.Get(ctx)
		}
		return nil, err
	}
	return cfg, nil
}

// Update deep-merges the nested sections field-by-field and replaces the
// feature-flag map wholesale.
func (s *SettingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*model.WebsiteConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Site != nil {
		applyString(&cfg.Site.Name, req.Site.Name)
		applyString(&cfg.Site.Tagline, req.Site.Tagline)
		applyString(&cfg.Site.Description, req.Site.Description)
		applyString(&cfg.Site.LogoURL, req.Site.LogoURL)
		applyString(&cfg.Site.FaviconURL, req.Site.FaviconURL)
	}
	if req.Company != nil {
		applyString(&cfg.Company.Name, req.Company.Name)
		applyString(&cfg.Company.Email, req.Company.Email)
		applyString(&cfg.Company.Phone, req.Company.Phone)
		applyString(&cfg.Company.Address, req.Company.Address)
	}
	if req.Social != nil {
		applyString(&cfg.Social.Twitter, req.Social.Twitter)
		applyString(&cfg.Social.LinkedIn, req.Social.LinkedIn)
		applyString(&cfg.Social.GitHub, req.Social.GitHub)
		applyString(&cfg.Social.Instagram, req.Social.Instagram)
		applyString(&cfg.Social.YouTube, req.Social.YouTube)
	}
	if req.SEO != nil {
		applyString(&cfg.SEO.MetaTitle, req.SEO.MetaTitle)
		applyString(&cfg.SEO.MetaDescription, req.SEO.MetaDescription)
		applyString(&cfg.SEO.Keywords, req.SEO.Keywords)
		applyString(&cfg.SEO.OGImageURL, req.SEO.OGImageURL)
	}
	if req.Features != "" {
		cfg.Features = util.ParseBoolMap(req.Features, cfg.Features)
	}

	if err := s.repo.Replace(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reset restores the default configuration, keeping the singleton identity.
func (s *SettingsService) Reset(ctx context.Context) (*model.WebsiteConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperr.NotFound("settings")
	}

	fresh := model.DefaultWebsiteConfig()
	fresh.ID = cfg.ID
	fresh.CreatedAt = cfg.CreatedAt
	if err := s.repo.Replace(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
