package teacherValidator

import (
	"edureg/middleware"
	"edureg/models"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	aadharRegex  = regexp.MustCompile(`^\d{12}$`)
	phoneRegex   = regexp.MustCompile(`^\d{10}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

var validate = validator.New()

// IsValidAadhar reports whether the candidate is a well-formed 12-digit Aadhar number
func IsValidAadhar(aadhar string) bool {
	return aadharRegex.MatchString(aadhar)
}

// requiredField pairs a payload field name with its value for the required-set check
type requiredField struct {
	name  string
	value string
}

// ValidateTeacher enforces the field-level and structural rules of a submission.
// It returns one message per violated rule, keyed by field; an empty map means
// the record is acceptable.
func ValidateTeacher(t *models.Teacher) map[string]string {
	errors := make(map[string]string)

	required := []requiredField{
		{"full_name", t.FullName},
		{"email", t.Email},
		{"phone", t.Phone},
		{"date_of_birth", t.DateOfBirth},
		{"gender", t.Gender},
		{"street", t.Street},
		{"pincode", t.Pincode},
		{"state", t.State},
		{"current_branch", t.CurrentBranch},
		{"current_school", t.CurrentSchool},
		{"bank_name", t.BankName},
		{"account_number", t.AccountNumber},
		{"ifsc_code", t.IFSCCode},
		{"pan_number", t.PANNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errors[f.name] = f.name + " is required"
		}
	}

	if !aadharRegex.MatchString(t.AadharNumber) {
		errors["aadhar_number"] = "Valid 12-digit Aadhar number is required"
	}
	if t.Phone != "" && !phoneRegex.MatchString(t.Phone) {
		errors["phone"] = "Phone must be 10 digits"
	}
	if t.Pincode != "" && !pincodeRegex.MatchString(t.Pincode) {
		errors["pincode"] = "Pincode must be 6 digits"
	}
	if t.PANNumber != "" && len(t.PANNumber) != 10 {
		errors["pan_number"] = "PAN must be 10 characters"
	}
	if t.Email != "" {
		if err := validate.Var(t.Email, "email"); err != nil {
			errors["email"] = "Invalid email"
		}
	}

	// Qualification blocks are all-or-nothing
	if t.Tenth.Board == "" || t.Tenth.Year == "" || t.Tenth.Percentage == "" {
		errors["tenth"] = "10th standard details are required"
	}
	if t.Twelfth.Board == "" || t.Twelfth.Year == "" || t.Twelfth.Percentage == "" {
		errors["twelfth"] = "12th standard details are required"
	}
	if t.UG.Degree == "" || t.UG.University == "" || t.UG.Year == "" || t.UG.Percentage == "" {
		errors["ug"] = "UG details are required"
	}

	// B.Ed/M.Ed are optional, but a started block must be completed
	if partialQualification(t.Bed) {
		errors["bed"] = "B.Ed details are incomplete"
	}
	if partialQualification(t.Med) {
		errors["med"] = "M.Ed details are incomplete"
	}

	return errors
}

// partialQualification reports whether an optional block was started but not finished
func partialQualification(q models.SchoolQualification) bool {
	if q.Board == "" && q.Year == "" && q.Percentage == "" {
		return false
	}
	return q.Board == "" || q.Year == "" || q.Percentage == ""
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacher := new(models.Teacher)
		if err := c.BodyParser(teacher); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := ValidateTeacher(teacher); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacher", teacher)
		return c.Next()
	}
}

// Update validator middleware: the patch must be a JSON object; field rules are
// re-checked against the merged record by the service
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &patch); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPatch", c.Body())
		return c.Next()
	}
}

// UpdateStatus validator middleware
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.IsValidStatus(reqData.Status) {
			errors["status"] = "Status must be one of pending, approved, rejected"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// CheckAadhar validator middleware for the advisory existence check
func CheckAadhar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AadharNumber string `json:"aadhar_number"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedAadhar", reqData.AadharNumber)
		return c.Next()
	}
}
