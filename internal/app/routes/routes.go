package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/filestorage"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Faculty      *controllers.FacultyController
	Department   *controllers.DepartmentController
	AcademicYear *controllers.AcademicYearController
	Contact      *controllers.ContactController
	Profile      *controllers.ProfileController
	Dashboard    *controllers.DashboardController
}

// resource holds the five handlers of a CRUD resource
type resource struct {
	list, show, create, update, destroy gin.HandlerFunc
}

// mount registers a resource under path. PATCH is an alias of PUT.
func mount(group *gin.RouterGroup, path string, r resource) {
	g := group.Group(path)
	g.GET("", r.list)
	g.POST("", r.create)
	g.GET("/:id", r.show)
	g.PUT("/:id", r.update)
	g.PATCH("/:id", r.update)
	g.DELETE("/:id", r.destroy)
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, storagePath string) {
	health := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	}
	router.GET("/ping", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static(filestorage.URLPrefix, storagePath)
	SetupSwagger(router)

	api := router.Group("/api")
	api.GET("/health", health)

	// Public auth routes
	api.POST("/login", c.Auth.Login)
	api.POST("/refresh", c.Auth.RefreshToken)

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/logout", c.Auth.Logout)
		authenticated.GET("/user", c.Auth.GetUser)
		authenticated.PUT("/user", c.Auth.UpdateUser)
		authenticated.PUT("/profile", c.Auth.UpdateProfile)
		authenticated.GET("/dashboard", c.Dashboard.GetDashboard)

		mount(authenticated, "/students", resource{
			c.Student.ListStudents, c.Student.GetStudent, c.Student.CreateStudent,
			c.Student.UpdateStudent, c.Student.DeleteStudent,
		})
		mount(authenticated, "/faculty", resource{
			c.Faculty.ListFaculty, c.Faculty.GetFaculty, c.Faculty.CreateFaculty,
			c.Faculty.UpdateFaculty, c.Faculty.DeleteFaculty,
		})
		mount(authenticated, "/departments", resource{
			c.Department.ListDepartments, c.Department.GetDepartment, c.Department.CreateDepartment,
			c.Department.UpdateDepartment, c.Department.DeleteDepartment,
		})
		mount(authenticated, "/courses", resource{
			c.Department.ListCourses, c.Department.GetCourse, c.Department.CreateCourse,
			c.Department.UpdateCourse, c.Department.DeleteCourse,
		})
		mount(authenticated, "/academic-years", resource{
			c.AcademicYear.ListAcademicYears, c.AcademicYear.GetAcademicYear, c.AcademicYear.CreateAcademicYear,
			c.AcademicYear.UpdateAcademicYear, c.AcademicYear.DeleteAcademicYear,
		})
		mount(authenticated, "/contacts", resource{
			c.Contact.ListContacts, c.Contact.GetContact, c.Contact.CreateContact,
			c.Contact.UpdateContact, c.Contact.DeleteContact,
		})
		mount(authenticated, "/profiles", resource{
			c.Profile.ListProfiles, c.Profile.GetProfile, c.Profile.CreateProfile,
			c.Profile.UpdateProfile, c.Profile.DeleteProfile,
		})
	}
}
