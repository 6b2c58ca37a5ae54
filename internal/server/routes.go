package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"suratlocal/internal/db"
	"suratlocal/internal/handlers"
	"suratlocal/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Store, database)
	s.App.Use(middleware.Language(s.Cfg.DefaultLang))

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(database, s.Cfg)
	submissionHandler := handlers.NewSubmissionHandler(database, s.Cfg)
	editHandler := handlers.NewSuggestedEditHandler(database, s.Cfg)
	reviewHandler := handlers.NewReviewHandler(database, s.Cfg)
	favoriteHandler := handlers.NewFavoriteHandler(database, s.Cfg)
	dashboardHandler := handlers.NewDashboardHandler(database, s.Cfg)
	moderationHandler := handlers.NewModerationHandler(database, s.Cfg)
	adminHandler := handlers.NewAdminHandler(database, s.Cfg)
	userHandler := handlers.NewUserHandler(database, s.Cfg)

	// Auth routes - only wired when OIDC is configured
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}
		s.App.Get("/login", authHandler.LoginPage)
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Public browse routes
	s.App.Get("/", authMiddleware.OptionalAuth, publicHandler.Home)
	s.App.Get("/areas", authMiddleware.OptionalAuth, publicHandler.Areas)
	s.App.Get("/areas/:slug", authMiddleware.OptionalAuth, publicHandler.Area)
	s.App.Get("/categories", authMiddleware.OptionalAuth, publicHandler.Categories)
	s.App.Get("/categories/:slug", authMiddleware.OptionalAuth, publicHandler.Category)
	s.App.Get("/listings/:slug", authMiddleware.OptionalAuth, publicHandler.Listing)
	s.App.Get("/search", authMiddleware.OptionalAuth, publicHandler.Search)
	s.App.Get("/lang/:lang", publicHandler.SetLang)
	s.App.Get("/sitemap.xml", publicHandler.Sitemap)

	// Contribution routes (signed-in users)
	s.App.Get("/submit", authMiddleware.RequireAuth, submissionHandler.New)
	s.App.Post("/submit", authMiddleware.RequireAuth, submissionHandler.Create)
	s.App.Get("/listings/:slug/suggest-edit", authMiddleware.RequireAuth, editHandler.New)
	s.App.Post("/listings/:slug/suggest-edit", authMiddleware.RequireAuth, editHandler.Create)
	s.App.Post("/listings/:slug/reviews", authMiddleware.RequireAuth, reviewHandler.Create)
	s.App.Delete("/reviews/:id", authMiddleware.RequireAuth, reviewHandler.Delete)
	s.App.Post("/listings/:slug/favorite", authMiddleware.RequireAuth, favoriteHandler.Toggle)

	// Dashboard routes
	s.App.Get("/dashboard", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Put("/dashboard/profile", authMiddleware.RequireAuth, dashboardHandler.UpdateProfile)

	// Admin routes
	admin := s.App.Group("/admin", authMiddleware.RequireAuth, authMiddleware.RequireAdmin)
	admin.Get("/", adminHandler.Index)
	admin.Get("/moderation", moderationHandler.Index)
	admin.Post("/moderation/submissions/:id/approve", moderationHandler.ApproveSubmission)
	admin.Post("/moderation/submissions/:id/reject", moderationHandler.RejectSubmission)
	admin.Post("/moderation/edits/:id/approve", moderationHandler.ApproveEdit)
	admin.Post("/moderation/edits/:id/reject", moderationHandler.RejectEdit)
	admin.Get("/listings", adminHandler.Listings)
	admin.Put("/listings/:id", adminHandler.UpdateListing)
	admin.Delete("/listings/:id", adminHandler.DeleteListing)
	admin.Get("/areas", adminHandler.Areas)
	admin.Post("/areas", adminHandler.CreateArea)
	admin.Put("/areas/:id", adminHandler.UpdateArea)
	admin.Delete("/areas/:id", adminHandler.DeleteArea)
	admin.Get("/categories", adminHandler.Categories)
	admin.Post("/categories", adminHandler.CreateCategory)
	admin.Put("/categories/:id", adminHandler.UpdateCategory)
	admin.Delete("/categories/:id", adminHandler.DeleteCategory)
	admin.Get("/users", userHandler.Index)
	admin.Put("/users/:id/role", userHandler.UpdateRole)

	// Prometheus metrics
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
