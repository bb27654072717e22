package authController

import (
	"edureg/database"
	"edureg/middleware"
	"edureg/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login exchanges the admin password for a signed session token. Admin
// operations are gated server-side by this token, not by a client-set flag.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var admin models.Admin
	if err := database.Database.Db.Order("id ASC").First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Admin account is not configured!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Admin Password", nil)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"email": admin.Email,
	})
}
