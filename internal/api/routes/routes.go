package routes

import (
	"dealflow-backend/internal/api/handlers"
	"dealflow-backend/internal/api/middleware"
	"dealflow-backend/internal/config"
	"dealflow-backend/internal/repository"
	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(repos *repository.Repositories, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize services
	teamService := service.NewTeamService(repos.Team, validator)
	startupService := service.NewStartupService(repos.Startups, repos.Projects, repos.Tasks, validator)
	projectService := service.NewProjectService(repos.Projects, repos.Startups, repos.Tasks, repos.ProjectInvestors, validator)
	taskService := service.NewTaskService(repos.Tasks, validator)
	investorService := service.NewInvestorService(repos.Investors, validator)
	pipelineService := service.NewPipelineService(repos.ProjectInvestors, repos.Investors, repos.Config, validator)
	legacyPipelineService := service.NewLegacyPipelineService(repos.StartupInvestors, validator)
	configService := service.NewConfigService(repos.Config)
	healthService := service.NewHealthService(repos)

	// Initialize handlers
	teamHandler := handlers.NewTeamHandler(teamService)
	startupHandler := handlers.NewStartupHandler(startupService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	investorHandler := handlers.NewInvestorHandler(investorService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService, legacyPipelineService)
	configHandler := handlers.NewConfigHandler(configService)
	healthHandler := handlers.NewHealthHandler(healthService)

	// Liveness and API docs
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/config", configHandler.GetConfig)

		team := api.Group("/team")
		{
			team.GET("", teamHandler.ListTeam)
			team.POST("", teamHandler.CreateTeamMember)
			team.PUT("", teamHandler.UpdateTeamMember)
		}

		startups := api.Group("/startups")
		{
			startups.GET("", startupHandler.ListStartups)
			startups.GET("/summary", startupHandler.ListStartupSummaries)
			startups.POST("", startupHandler.CreateStartup)
			startups.PUT("", startupHandler.UpdateStartup)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/summary", projectHandler.ListProjectSummaries)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("", projectHandler.UpdateProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("", taskHandler.UpdateTask)
		}

		investors := api.Group("/investors")
		{
			investors.GET("", investorHandler.ListInvestors)
			investors.POST("", investorHandler.CreateInvestor)
			investors.PUT("", investorHandler.UpdateInvestor)
		}

		projectInvestors := api.Group("/project-investors")
		{
			projectInvestors.GET("", pipelineHandler.ListProjectInvestors)
			projectInvestors.GET("/board", pipelineHandler.GetBoard)
			projectInvestors.POST("", pipelineHandler.CreateProjectInvestor)
			projectInvestors.PUT("", pipelineHandler.UpdateProjectInvestor)
		}

		// Legacy startup-scoped pipeline
		startupInvestors := api.Group("/startup-investors")
		{
			startupInvestors.GET("", pipelineHandler.ListStartupInvestors)
			startupInvestors.POST("", pipelineHandler.CreateStartupInvestor)
			startupInvestors.PUT("", pipelineHandler.UpdateStartupInvestor)
		}
	}

	return router
}
