package teacherRoutes

import (
	teacherController "edureg/controllers/teacher"
	uploadController "edureg/controllers/upload"
	"edureg/middleware"
	"edureg/services"
	teacherValidator "edureg/validators/teacher"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTeacherRoutes(app *fiber.App, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(services.NewTeacherService(db))

	teacherGroup := app.Group("/api/teachers")

	// Public registration path
	teacherGroup.Post("/", teacherValidator.Register(), ctl.Register)
	teacherGroup.Post("/check-aadhar", teacherValidator.CheckAadhar(), ctl.CheckAadhar)

	// Admin review path
	teacherGroup.Get("/", middleware.JWTMiddleware, ctl.List)
	teacherGroup.Get("/:id", middleware.JWTMiddleware, ctl.Get)
	teacherGroup.Patch("/:id/status", middleware.JWTMiddleware, teacherValidator.UpdateStatus(), ctl.UpdateStatus)
	teacherGroup.Patch("/:id", middleware.JWTMiddleware, teacherValidator.Update(), ctl.Update)
	teacherGroup.Delete("/:id", middleware.JWTMiddleware, ctl.Delete)

	// Certificates and profile photos are uploaded before the form is submitted
	app.Post("/upload", uploadController.Upload)
}
