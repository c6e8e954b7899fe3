package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/audit"
	"github.com/selamhomes/estate-api/internal/cache"
	"github.com/selamhomes/estate-api/internal/config"
	"github.com/selamhomes/estate-api/internal/handlers"
	infraRepo "github.com/selamhomes/estate-api/internal/infra/repository"
	"github.com/selamhomes/estate-api/internal/middleware"
	ucCatalog "github.com/selamhomes/estate-api/internal/usecase/catalog"
	ucLeads "github.com/selamhomes/estate-api/internal/usecase/leads"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *cache.Cache) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	leadRepo := infraRepo.NewLeadGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES
	// ------------------------------
	searchPropertiesUC := ucCatalog.NewSearchProperties(catalogRepo)
	createLeadUC := ucLeads.NewCreateLead(leadRepo, auditDispatcher)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db)

	propertyHandler := handlers.NewPropertyHandler(db, searchPropertiesUC, catalogRepo, auditDispatcher, store)
	projectHandler := handlers.NewProjectHandler(db, auditDispatcher)
	constructionUpdateHandler := handlers.NewConstructionUpdateHandler(db, auditDispatcher)
	teamHandler := handlers.NewTeamHandler(db, auditDispatcher)
	leadHandler := handlers.NewLeadHandler(db, createLeadUC, auditDispatcher)
	settingHandler := handlers.NewSettingHandler(db, auditDispatcher, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/health", healthHandler.Check)

		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/:id", propertyHandler.Get)

		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)
		api.GET("/construction-updates", constructionUpdateHandler.List)

		api.GET("/team", teamHandler.List)
		api.GET("/team/:id", teamHandler.Get)

		api.POST("/leads", leadHandler.Create)

		api.GET("/settings", settingHandler.List)
		api.GET("/settings/:key", settingHandler.GetByKey)

		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.POST("/properties", propertyHandler.Create)
			admin.PUT("/properties/:id", propertyHandler.Update)
			admin.PATCH("/properties/:id", propertyHandler.Update)
			admin.DELETE("/properties/:id", propertyHandler.Delete)

			admin.POST("/projects", projectHandler.Create)
			admin.PATCH("/projects/:id", projectHandler.Update)
			admin.DELETE("/projects/:id", projectHandler.Delete)

			admin.POST("/construction-updates", constructionUpdateHandler.Create)
			admin.PATCH("/construction-updates/:id", constructionUpdateHandler.Update)
			admin.DELETE("/construction-updates/:id", constructionUpdateHandler.Delete)

			admin.POST("/team", teamHandler.Create)
			admin.PATCH("/team/:id", teamHandler.Update)
			admin.DELETE("/team/:id", teamHandler.Delete)

			admin.GET("/leads", leadHandler.List)
			admin.GET("/leads/:id", leadHandler.Get)
			admin.PATCH("/leads/:id", leadHandler.Update)
			admin.DELETE("/leads/:id", leadHandler.Delete)

			admin.POST("/settings", settingHandler.Upsert)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
