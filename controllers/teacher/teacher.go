package teacherController

import (
	"edureg/middleware"
	"edureg/models"
	"edureg/services"
	"edureg/utils"
	teacherValidator "edureg/validators/teacher"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type TeacherController struct {
	Service *services.TeacherService
}

// NotifyStatusDecision delivers the applicant email for a review decision.
// A package variable so delivery can be stubbed out under test.
var NotifyStatusDecision = utils.SendStatusDecisionEmail

func NewTeacherController(s *services.TeacherService) *TeacherController {
	return &TeacherController{Service: s}
}

// Register handles a public registration submission
func (ctl *TeacherController) Register(c *fiber.Ctx) error {
	teacher, ok := c.Locals("validatedTeacher").(*models.Teacher)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	created, err := ctl.Service.Submit(teacher)
	if err != nil {
		return serviceErrorResponse(c, err, "Registration failed. Please try again.")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Teacher registered successfully.", created)
}

// List returns all applications for the dashboard, newest first
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	teachers, err := ctl.Service.List()
	if err != nil {
		log.Printf("Error fetching teacher list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teachers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher list.", teachers)
}

// Get returns a single application
func (ctl *TeacherController) Get(c *fiber.Ctx) error {
	teacher, err := ctl.Service.Get(c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to fetch teacher!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher details.", teacher)
}

// Update merges partial field edits into an application
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	patch, ok := c.Locals("validatedPatch").([]byte)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	teacher, err := ctl.Service.Update(c.Params("id"), patch)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update teacher. Please try again.")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher updated successfully.", teacher)
}

// UpdateStatus applies an explicit review decision
func (ctl *TeacherController) UpdateStatus(c *fiber.Ctx) error {
	status, ok := c.Locals("validatedStatus").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	teacher, previous, err := ctl.Service.SetStatus(c.Params("id"), status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update status!")
	}

	// Notify the applicant on an actual decision, never on a repeated one
	if previous != teacher.Status && (teacher.Status == models.StatusApproved || teacher.Status == models.StatusRejected) {
		NotifyStatusDecision(teacher.Email, teacher.FullName, teacher.Status)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully.", teacher)
}

// Delete permanently removes an application
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	if err := ctl.Service.Remove(c.Params("id")); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete teacher!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher deleted successfully.", fiber.Map{"success": true})
}

// CheckAadhar is the advisory existence check used while the form is being
// filled. A malformed number is "available", never an error.
func (ctl *TeacherController) CheckAadhar(c *fiber.Ctx) error {
	aadhar, ok := c.Locals("validatedAadhar").(string)
	if !ok || !teacherValidator.IsValidAadhar(aadhar) {
		return c.JSON(fiber.Map{"exists": false, "valid": false})
	}

	exists, err := ctl.Service.Exists(aadhar)
	if err != nil {
		log.Printf("Aadhar check error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"exists": false, "valid": false})
	}

	return c.JSON(fiber.Map{"exists": exists, "valid": true})
}

// serviceErrorResponse maps the service failure taxonomy onto HTTP responses
func serviceErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Error(), validationErr.Fields)
	case errors.Is(err, services.ErrDuplicateIdentity):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This Aadhar number is already registered", nil)
	case errors.Is(err, services.ErrInvalidIdentifier):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid teacher id", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found", nil)
	default:
		log.Printf("Teacher service error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
	}
}
