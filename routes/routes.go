package routes

import (
	"net/http"

	"virtual-healthcare/authentication"
	"virtual-healthcare/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// creates a new Gin engine instance with default configurations
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})

	// doctor roster and availability
	doctors := api.Group("/doctors")
	{
		doctors.GET("/", controllers.GetAllDoctors)
		doctors.GET("/:id", controllers.GetDoctorByID)
		doctors.GET("/specialty/:specialty", controllers.GetDoctorsBySpecialty)
		doctors.GET("/day/:day", controllers.GetDoctorsByDay)
		doctors.GET("/:id/availability", controllers.GetDoctorAvailability)
		doctors.GET("/:id/availability/:day", controllers.GetDoctorAvailabilityByDay)
		doctors.POST("/", controllers.CreateDoctor)
		doctors.PUT("/:id", controllers.UpdateDoctor)
		doctors.DELETE("/:id", controllers.DeleteDoctor)
		doctors.POST("/seed", controllers.SeedDoctors)
	}

	// doctor login credentials
	credentials := api.Group("/credentials")
	{
		credentials.GET("/", controllers.GetAllCredentials)
		credentials.GET("/:id", controllers.GetCredentialsByID)
		credentials.GET("/doctor/:doctorId", controllers.GetCredentialsByDoctorID)
		credentials.POST("/", controllers.CreateCredentials)
		credentials.PUT("/:id", controllers.UpdateCredentials)
		credentials.DELETE("/:id", controllers.DeleteCredentials)
		credentials.POST("/verify-login", controllers.VerifyLogin)
		// bulk provisioning discloses the default password, so only admins
		credentials.POST("/seed", authentication.AdminAuthMiddleware(), controllers.SeedCredentials)
	}

	// the logged-in doctor's own view
	doctor := api.Group("/doctor")
	doctor.Use(authentication.DoctorAuthMiddleware())
	{
		doctor.GET("/profile", controllers.GetDoctorProfile)
	}

	admins := api.Group("/admins")
	{
		admins.GET("/", controllers.GetAllAdmins)
		admins.GET("/:id", controllers.GetAdminByID)
		admins.GET("/email/:email", controllers.GetAdminByEmail)
		admins.POST("/", controllers.CreateAdmin)
		admins.POST("/login", controllers.AdminLogin)
		admins.PUT("/:id", controllers.UpdateAdmin)
		admins.DELETE("/:id", controllers.DeleteAdmin)
		admins.POST("/seed/data", controllers.SeedAdmin)
	}

	departments := api.Group("/departments")
	{
		departments.GET("/", controllers.GetAllDepartments)
		departments.GET("/:id", controllers.GetDepartmentByID)
		departments.POST("/", controllers.CreateDepartment)
		departments.PUT("/:id", controllers.UpdateDepartment)
		departments.DELETE("/:id", controllers.DeleteDepartment)
		departments.POST("/seed", controllers.SeedDepartments)
	}

	healthTests := api.Group("/health-tests")
	{
		healthTests.GET("/", controllers.GetAllTests)
		healthTests.GET("/:id", controllers.GetTestByID)
		healthTests.GET("/department/:department", controllers.GetTestsByDepartment)
		healthTests.POST("/", controllers.CreateTest)
		healthTests.PUT("/:id", controllers.UpdateTest)
		healthTests.DELETE("/:id", controllers.DeleteTest)
		healthTests.POST("/seed", controllers.SeedTests)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("/", controllers.GetAllFeedback)
		feedback.GET("/:id", controllers.GetFeedbackByID)
		feedback.POST("/", controllers.CreateFeedback)
		feedback.PUT("/:id", controllers.UpdateFeedback)
		feedback.DELETE("/:id", controllers.DeleteFeedback)
	}

	return r
}
