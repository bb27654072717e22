package uploadController

import (
	"edureg/middleware"
	"edureg/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Upload accepts one certificate or profile photo and returns the stable URL
// the registration form stores on the record. The record itself only ever
// holds the URL string.
func Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	url, err := utils.StoreFile(file)
	if err != nil {
		log.Printf("File upload error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully.", fiber.Map{"url": url})
}
