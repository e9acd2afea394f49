package server

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/handler"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/internal/service"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

// Repositories bundles the data access layer.
type Repositories struct {
	Users        repository.IUserRepository
	Services     *repository.ServiceRepository
	Portfolio    *repository.PortfolioRepository
	Technologies *repository.TechnologyRepository
	Testimonials *repository.TestimonialRepository
	Careers      *repository.CareerRepository
	Pages        *repository.CMSPageRepository
	Settings     repository.ISettingsRepository
}

// Services bundles the business logic layer.
type Services struct {
	Tokens       *auth.TokenService
	Auth         *service.AuthService
	Catalog      *service.ServiceService
	Portfolio    *service.PortfolioService
	Technologies *service.TechnologyService
	Testimonials *service.TestimonialService
	Careers      *service.CareerService
	Pages        *service.CMSService
	Users        *service.UserService
	Settings     *service.SettingsService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Auth         *handler.AuthHandler
	Catalog      *handler.ServiceHandler
	Portfolio    *handler.PortfolioHandler
	Technologies *handler.TechnologyHandler
	Testimonials *handler.TestimonialHandler
	Careers      *handler.CareerHandler
	Pages        *handler.CMSHandler
	Users        *handler.UserHandler
	Settings     *handler.SettingsHandler
	Health       *handler.HealthHandler
}

// InitRepositories creates all repositories backed by db.
func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:        repository.NewUserRepository(db),
		Services:     repository.NewServiceRepository(db),
		Portfolio:    repository.NewPortfolioRepository(db),
		Technologies: repository.NewTechnologyRepository(db),
		Testimonials: repository.NewTestimonialRepository(db),
		Careers:      repository.NewCareerRepository(db),
		Pages:        repository.NewCMSPageRepository(db),
		Settings:     repository.NewSettingsRepository(db),
	}
}

// InitServices creates all services on top of the repositories.
func InitServices(cfg *config.Config, repos *Repositories, logger *zap.Logger) *Services {
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	mailer := service.NewMailer(cfg.Mail, logger)

	return &Services{
		Tokens:       tokens,
		Auth:         service.NewAuthService(repos.Users, tokens, mailer, logger),
		Catalog:      service.NewServiceService(repos.Services),
		Portfolio:    service.NewPortfolioService(repos.Portfolio),
		Technologies: service.NewTechnologyService(repos.Technologies),
		Testimonials: service.NewTestimonialService(repos.Testimonials),
		Careers:      service.NewCareerService(repos.Careers),
		Pages:        service.NewCMSService(repos.Pages),
		Users:        service.NewUserService(repos.Users),
		Settings:     service.NewSettingsService(repos.Settings),
	}
}

// InitHandlers creates all HTTP handlers.
func InitHandlers(cfg *config.Config, services *Services, mongoClient *mongo.Client) *Handlers {
	uploads := upload.New(cfg.Upload.Dir, cfg.Upload.PublicBase, cfg.Upload.MaxImageMB, cfg.Upload.MaxDocumentMB)

	return &Handlers{
		Auth:         handler.NewAuthHandler(services.Auth, cfg),
		Catalog:      handler.NewServiceHandler(services.Catalog, uploads),
		Portfolio:    handler.NewPortfolioHandler(services.Portfolio, uploads),
		Technologies: handler.NewTechnologyHandler(services.Technologies),
		Testimonials: handler.NewTestimonialHandler(services.Testimonials, uploads),
		Careers:      handler.NewCareerHandler(services.Careers),
		Pages:        handler.NewCMSHandler(services.Pages),
		Users:        handler.NewUserHandler(services.Users, uploads),
		Settings:     handler.NewSettingsHandler(services.Settings),
		Health:       handler.NewHealthHandler(mongoClient),
	}
}
