package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
)

func setupRouter(cfg *config.Config, h *Handlers, s *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetTrustedProxies(nil)
	r.MaxMultipartMemory = int64(cfg.Upload.MaxGeneralMB) << 20

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler(logger, cfg.Server.IsProduction()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(time.Duration(cfg.RateLimit.WindowSec)*time.Second, cfg.RateLimit.Max)
	r.Use(limiter.Middleware())

	r.NoRoute(middleware.NotFoundHandler())

	// Uploaded files are served directly from disk.
	r.Static(cfg.Upload.PublicBase, cfg.Upload.Dir)

	r.GET("/health", h.Health.Check)

	api := r.Group("/api/v1")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", middleware.ValidateBody[dto.RegisterRequest](), h.Auth.Register)
		authRoutes.POST("/login", middleware.ValidateBody[dto.LoginRequest](), h.Auth.Login)
		authRoutes.POST("/logout", h.Auth.Logout)
		authRoutes.POST("/refresh", h.Auth.Refresh)
		authRoutes.POST("/forgot-password", middleware.ValidateBody[dto.ForgotPasswordRequest](), h.Auth.ForgotPassword)
		authRoutes.POST("/reset-password", middleware.ValidateBody[dto.ResetPasswordRequest](), h.Auth.ResetPassword)
		authRoutes.POST("/verify-email", middleware.ValidateBody[dto.VerifyEmailRequest](), h.Auth.VerifyEmail)

		me := authRoutes.Group("", middleware.RequireAuth(s.Tokens))
		me.GET("/me", h.Auth.Me)
		me.PUT("/me", middleware.ValidateBody[dto.UpdateProfileRequest](), h.Auth.UpdateMe)
		me.POST("/change-password", middleware.ValidateBody[dto.ChangePasswordRequest](), h.Auth.ChangePassword)
	}

	services := api.Group("/services")
	{
		services.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Catalog.List)
		services.GET("/featured", middleware.ValidateQuery[dto.FeaturedQuery](), h.Catalog.Featured)
		services.GET("/:id", h.Catalog.Get)

		edit := services.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreateServices), middleware.ValidateBody[dto.CreateServiceRequest](), h.Catalog.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditServices), middleware.ValidateBody[dto.UpdateServiceRequest](), h.Catalog.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteServices), h.Catalog.Delete)
	}

	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Portfolio.List)
		portfolio.GET("/featured", middleware.ValidateQuery[dto.FeaturedQuery](), h.Portfolio.Featured)
		portfolio.GET("/:id", h.Portfolio.Get)

		edit := portfolio.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreatePortfolio), middleware.ValidateBody[dto.CreatePortfolioRequest](), h.Portfolio.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditPortfolio), middleware.ValidateBody[dto.UpdatePortfolioRequest](), h.Portfolio.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeletePortfolio), h.Portfolio.Delete)
	}

	technologies := api.Group("/technologies")
	{
		technologies.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Technologies.List)
		technologies.GET("/featured", middleware.ValidateQuery[dto.FeaturedQuery](), h.Technologies.Featured)
		technologies.GET("/:id", h.Technologies.Get)

		edit := technologies.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreateTechnologies), middleware.ValidateBody[dto.CreateTechnologyCategoryRequest](), h.Technologies.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditTechnologies), middleware.ValidateBody[dto.UpdateTechnologyCategoryRequest](), h.Technologies.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteTechnologies), h.Technologies.Delete)

		edit.POST("/:id/items", middleware.RequirePermissions(auth.PermEditTechnologies), middleware.ValidateBody[dto.CreateTechnologyItemRequest](), h.Technologies.AddItem)
		edit.PUT("/:id/items/:itemId", middleware.RequirePermissions(auth.PermEditTechnologies), middleware.ValidateBody[dto.UpdateTechnologyItemRequest](), h.Technologies.UpdateItem)
		edit.DELETE("/:id/items/:itemId", middleware.RequirePermissions(auth.PermEditTechnologies), h.Technologies.DeleteItem)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Testimonials.List)
		testimonials.GET("/featured", middleware.ValidateQuery[dto.FeaturedQuery](), h.Testimonials.Featured)
		testimonials.GET("/:id", h.Testimonials.Get)

		edit := testimonials.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreateTestimonials), middleware.ValidateBody[dto.CreateTestimonialRequest](), h.Testimonials.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditTestimonials), middleware.ValidateBody[dto.UpdateTestimonialRequest](), h.Testimonials.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteTestimonials), h.Testimonials.Delete)
	}

	careers := api.Group("/careers")
	{
		careers.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Careers.List)
		careers.GET("/:id", h.Careers.Get)

		edit := careers.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreateCareers), middleware.ValidateBody[dto.CreateCareerRequest](), h.Careers.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditCareers), middleware.ValidateBody[dto.UpdateCareerRequest](), h.Careers.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteCareers), h.Careers.Delete)
	}

	pages := api.Group("/pages")
	{
		pages.GET("", middleware.ValidateQuery[dto.ListQuery](), h.Pages.List)
		pages.GET("/:id", h.Pages.Get)

		edit := pages.Group("", middleware.RequireAuth(s.Tokens))
		edit.POST("", middleware.RequirePermissions(auth.PermCreateCMS), middleware.ValidateBody[dto.CreateCMSPageRequest](), h.Pages.Create)
		edit.PUT("/:id", middleware.RequirePermissions(auth.PermEditCMS), middleware.ValidateBody[dto.UpdateCMSPageRequest](), h.Pages.Update)
		edit.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteCMS), h.Pages.Delete)
	}

	users := api.Group("/users", middleware.RequireAuth(s.Tokens))
	{
		users.GET("", middleware.RequirePermissions(auth.PermViewUsers), middleware.ValidateQuery[dto.ListQuery](), h.Users.List)
		users.GET("/:id", middleware.RequirePermissions(auth.PermViewUsers), h.Users.Get)
		users.POST("", middleware.RequirePermissions(auth.PermCreateUsers), middleware.ValidateBody[dto.CreateUserRequest](), h.Users.Create)
		users.PUT("/:id", middleware.RequirePermissions(auth.PermEditUsers), middleware.ValidateBody[dto.UpdateUserRequest](), h.Users.Update)
		users.DELETE("/:id", middleware.RequirePermissions(auth.PermDeleteUsers), h.Users.Delete)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.Settings.Get)

		edit := settings.Group("", middleware.RequireAuth(s.Tokens))
		edit.PUT("", middleware.RequirePermissions(auth.PermEditSettings), middleware.ValidateBody[dto.UpdateSettingsRequest](), h.Settings.Update)
		edit.POST("/reset", middleware.RequirePermissions(auth.PermEditSettings), h.Settings.Reset)
	}

	return r
}
