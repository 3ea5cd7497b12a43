package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scorecard-system/backend/internal/config"
	"github.com/scorecard-system/backend/internal/database"
	"github.com/scorecard-system/backend/internal/handlers"
	"github.com/scorecard-system/backend/internal/middleware"
	"github.com/scorecard-system/backend/internal/models"
	"github.com/scorecard-system/backend/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Scorecard System API
// @version 1.0
// @description Scoring, theming and leaderboard backend for school classes and students
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if len(os.Args) > 1 {
		handleCommand(os.Args[1])
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.Server.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		for _, allowed := range cfg.CORS.Origins {
			if origin == allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check - simple endpoint that doesn't require DB
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "scorecard-api"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Scorecard System API", "status": "running"})
	})

	// Metrics
	if cfg.Monitoring.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Services
	authService := services.NewAuthService(db, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	classHandler := handlers.NewClassHandler(db)
	studentHandler := handlers.NewStudentHandler(db)
	programHandler := handlers.NewProgramHandler(db)
	themeHandler := handlers.NewThemeHandler(db)
	pkvHandler := handlers.NewPKVHandler(db)
	leaderboardHandler := handlers.NewLeaderboardHandler(db)
	markLogHandler := handlers.NewMarkLogHandler(db)
	maintenanceHandler := handlers.NewMaintenanceHandler(db)

	// Routes
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			// Admin only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/classes", classHandler.Create)
				admin.PUT("/classes/:id", classHandler.Update)
				admin.DELETE("/classes/:id", classHandler.Delete)

				admin.POST("/students", studentHandler.Create)
				admin.PUT("/students/:id", studentHandler.Update)
				admin.DELETE("/students/:id", studentHandler.Delete)

				admin.POST("/programs", programHandler.Create)
				admin.PUT("/programs/:id", programHandler.Update)
				admin.DELETE("/programs/:id", programHandler.Delete)

				admin.POST("/themes", themeHandler.Create)
				admin.PUT("/themes/:id", themeHandler.Update)
				admin.DELETE("/themes/:id", themeHandler.Delete)

				admin.POST("/semesters", pkvHandler.CreateSemester)
				admin.POST("/semesters/:name/lock", pkvHandler.LockSemester)
				admin.POST("/semesters/:name/unlock", pkvHandler.UnlockSemester)

				admin.POST("/maintenance/dedup-cce", maintenanceHandler.DedupCceMarks)
			}

			// Teacher routes (all authenticated users)
			teacher := protected.Group("")
			teacher.Use(middleware.RequireTeacher())
			{
				teacher.POST("/classes/:id/credits", classHandler.AddCredit)
				teacher.PUT("/classes/:id/credits/:markId", classHandler.EditCredit)
				teacher.DELETE("/classes/:id/credits/:markId", classHandler.DeleteCredit)
				teacher.POST("/classes/:id/penalties", classHandler.AddPenalty)
				teacher.PUT("/classes/:id/penalties/:markId", classHandler.EditPenalty)
				teacher.DELETE("/classes/:id/penalties/:markId", classHandler.DeletePenalty)
				teacher.POST("/classes/:id/subjects", classHandler.AddSubject)
				teacher.DELETE("/classes/:id/subjects/:name", classHandler.DeleteSubject)

				teacher.POST("/students/:id/extra-scores", studentHandler.AddExtraScore)
				teacher.POST("/students/:id/mentor-scores", studentHandler.AddMentorScore)
				teacher.POST("/students/:id/cce-scores", studentHandler.AddCceScore)

				teacher.POST("/students/:id/pkv", pkvHandler.AddMark)
				teacher.PUT("/students/:id/pkv", pkvHandler.UpdateMark)
			}

			// Read routes
			protected.GET("/classes", classHandler.List)
			protected.GET("/classes/:id", classHandler.Get)
			protected.GET("/classes/:id/score", classHandler.GetScore)
			protected.GET("/students", studentHandler.List)
			protected.GET("/students/:id", studentHandler.Get)
			protected.GET("/students/:id/score", studentHandler.GetScore)
			protected.GET("/students/:id/pkv", pkvHandler.Get)
			protected.GET("/programs", programHandler.List)
			protected.GET("/programs/:id", programHandler.Get)
			protected.GET("/themes", themeHandler.List)
			protected.GET("/themes/classify", themeHandler.Classify)
			protected.GET("/semesters", pkvHandler.ListSemesters)
			protected.GET("/leaderboard/classes/:id/students", leaderboardHandler.ClassStudents)
			protected.GET("/leaderboard/classes", leaderboardHandler.TopClasses)
			protected.GET("/leaderboard/classes/best", leaderboardHandler.BestClass)
			protected.GET("/leaderboard/students", leaderboardHandler.AllStudents)
			protected.GET("/dashboard", leaderboardHandler.Dashboard)
			protected.GET("/mark-logs/:id", markLogHandler.ListForUser)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func handleCommand(cmd string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatal("Migration failed:", err)
		}
		log.Println("Migration completed successfully")

	case "seed-admin":
		seedAdmin(db, cfg)

	case "seed-semesters":
		seedSemesters(db)

	default:
		log.Printf("Unknown command: %s", cmd)
	}
}

func seedAdmin(db *gorm.DB, cfg *config.Config) {
	authService := services.NewAuthService(db, cfg)

	var count int64
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("Admin already exists")
		return
	}

	admin := &models.User{
		Email:    "admin@scorecard.local",
		FullName: "Administrator",
		Role:     "admin",
		IsActive: true,
	}
	if err := authService.CreateUser(admin, "Admin@123"); err != nil {
		log.Fatal("Failed to create admin:", err)
	}
	log.Println("Admin: admin@scorecard.local / Admin@123")

	teacher := &models.User{
		Email:    "teacher@scorecard.local",
		FullName: "Teacher",
		Role:     "teacher",
		IsActive: true,
	}
	if err := authService.CreateUser(teacher, "Teacher@123"); err != nil {
		log.Fatal("Failed to create teacher:", err)
	}
	log.Println("Teacher: teacher@scorecard.local / Teacher@123")
}

func seedSemesters(db *gorm.DB) {
	log.Println("Seeding semesters...")

	var count int64
	db.Model(&models.Semester{}).Count(&count)
	if count > 0 {
		log.Println("Semesters already exist")
		return
	}

	for _, name := range []string{"Semester 1", "Semester 2"} {
		semester := models.Semester{Name: name, Locked: false}
		if err := db.Create(&semester).Error; err != nil {
			log.Fatal("Failed to seed semester:", err)
		}
	}
	log.Println("Seeded 2 semesters (unlocked)")
}
