package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-admission-service/internal/config"
	"hospital-admission-service/internal/database"
	"hospital-admission-service/internal/handler"
	"hospital-admission-service/internal/logging"
	"hospital-admission-service/internal/middleware"
	"hospital-admission-service/internal/repository"
	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Build the logger
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("configuration loaded")

	// 3. Initialize database connection and schema
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}
	logger.Info("database ready")

	// 4. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	wardRepo := repository.NewWardRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo, logger)
	departmentService := service.NewDepartmentService(departmentRepo, hospitalRepo, logger)
	wardService := service.NewWardService(wardRepo, departmentRepo, logger)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, logger)
	admissionService := service.NewAdmissionService(db, auditRepo, logger)
	patientService := service.NewPatientService(db, auditRepo, logger)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	departmentHandler := handler.NewDepartmentHandler(departmentService, wardService)
	wardHandler := handler.NewWardHandler(wardService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	patientHandler := handler.NewPatientHandler(patientService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-admission-service",
		})
	})

	hospitals := r.Group("/hospitals")
	{
		hospitals.POST("", hospitalHandler.CreateHospital)
		hospitals.GET("", hospitalHandler.ListHospitals)
		hospitals.GET("/:id", hospitalHandler.GetHospital)
	}

	departments := r.Group("/departments")
	{
		departments.POST("", departmentHandler.CreateDepartment)
		departments.GET("", departmentHandler.ListDepartments)
		departments.GET("/:id", departmentHandler.GetDepartment)
		departments.GET("/:id/wards", departmentHandler.ListWards)
		departments.GET("/code/:code", departmentHandler.FindByCode)
	}

	wards := r.Group("/wards")
	{
		wards.POST("", wardHandler.CreateWard)
		wards.GET("/:id", wardHandler.GetWard)
	}

	employees := r.Group("/employees")
	{
		employees.POST("/doctors", employeeHandler.AddDoctor)
		employees.POST("/nurses", employeeHandler.AddNurse)
		employees.GET("/doctors", employeeHandler.FindDoctorsBySpecialty)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.GET("/number/:number", employeeHandler.FindByEmployeeNumber)
	}

	patients := r.Group("/patients")
	{
		patients.POST("", patientHandler.RegisterPatient)
		patients.POST("/admit", patientHandler.AdmitNewPatient)
		patients.GET("", patientHandler.SearchPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)
		patients.GET("/number/:number", patientHandler.FindByPatientNumber)

		// Admission workflow
		patients.GET("/:id/admissions", admissionHandler.GetPatientAdmissions)
		patients.GET("/:id/admissions/current", admissionHandler.GetCurrentAdmission)
		patients.POST("/:id/discharge", admissionHandler.DischargePatient)
	}

	r.POST("/admissions", admissionHandler.AdmitPatient)

	// 10. Start the server and wait for interrupt signal
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")
}
