package teacherController_test

import (
	"bytes"
	"edureg/config"
	teacherController "edureg/controllers/teacher"
	"edureg/database"
	"edureg/models"
	authRoutes "edureg/routers/authRoutes"
	teacherRoutes "edureg/routers/teacherRoutes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var appTestSeq int

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	appTestSeq++

	config.AppConfig = &config.Config{
		Port:          "3000",
		JWTKey:        "test-secret",
		SaltRound:     4,
		AdminEmail:    "admin@educentral.in",
		AdminPassword: "test-admin-pass",
		UploadDir:     t.TempDir(),
	}

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", appTestSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Teacher{}, &models.Admin{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{Email: config.AppConfig.AdminEmail, Password: string(hashed)}).Error)

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app, db)
	return app
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", fiber.Map{
		"password": config.AppConfig.AdminPassword,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func registrationPayload(aadhar string) fiber.Map {
	return fiber.Map{
		"aadhar_number":  aadhar,
		"full_name":      "Anita Sharma",
		"email":          "anita.sharma@example.com",
		"phone":          "9876543210",
		"date_of_birth":  "1990-06-15",
		"gender":         "Female",
		"street":         "12 MG Road",
		"pincode":        "500001",
		"state":          "Telangana",
		"tenth":          fiber.Map{"board": "SSC", "year": "2005", "percentage": "88"},
		"twelfth":        fiber.Map{"board": "Intermediate", "year": "2007", "percentage": "90"},
		"ug":             fiber.Map{"degree": "B.Sc", "university": "Osmania University", "year": "2010", "percentage": "75"},
		"current_school": "Greenwood High School",
		"current_branch": "Greenwood High School - Hunter Road",
		"bank_name":      "SBI",
		"account_number": "123456789012",
		"ifsc_code":      "SBIN0001234",
		"pan_number":     "ABCDE1234F",
	}
}

func submitTeacher(t *testing.T, app *fiber.App, aadhar string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/", registrationPayload(aadhar)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestRegisterCreatesPendingApplication(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/", registrationPayload("123456789012")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "123456789012", data["aadhar_number"])
	assert.NotEmpty(t, data["createdAt"])
}

func TestRegisterValidationFailure(t *testing.T) {
	app := setupApp(t)

	payload := registrationPayload("123456789012")
	payload["bank_name"] = ""
	payload["tenth"] = fiber.Map{"board": "SSC"}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Contains(t, body["message"], "bank_name is required")
	assert.Contains(t, body["message"], "10th standard details are required")
}

func TestRegisterShortAadharRejected(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/", registrationPayload("12345")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Contains(t, body["message"], "Valid 12-digit Aadhar number is required")
}

func TestRegisterDuplicateAadharConflicts(t *testing.T) {
	app := setupApp(t)

	submitTeacher(t, app, "123456789012")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/", registrationPayload("123456789012")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "This Aadhar number is already registered", body["message"])
}

func TestCheckAadharShapes(t *testing.T) {
	app := setupApp(t)

	// Malformed input is "available", not an error
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/teachers/check-aadhar", fiber.Map{"aadhar_number": "12345"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["exists"])
	assert.Equal(t, false, body["valid"])

	// Well-formed but unregistered
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/teachers/check-aadhar", fiber.Map{"aadhar_number": "123456789012"}))
	require.NoError(t, err)
	body = decodeEnvelope(t, resp)
	assert.Equal(t, false, body["exists"])
	assert.Equal(t, true, body["valid"])

	// Registered
	submitTeacher(t, app, "123456789012")
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/teachers/check-aadhar", fiber.Map{"aadhar_number": "123456789012"}))
	require.NoError(t, err)
	body = decodeEnvelope(t, resp)
	assert.Equal(t, true, body["exists"])
	assert.Equal(t, true, body["valid"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/teachers/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", fiber.Map{"password": "wrong"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid Admin Password", body["message"])
}

func TestListReturnsNewestFirst(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	submitTeacher(t, app, "111111111111")
	time.Sleep(5 * time.Millisecond)
	newest := submitTeacher(t, app, "222222222222")

	req := httptest.NewRequest(http.MethodGet, "/api/teachers/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	items := body["data"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, newest, first["id"])
}

func TestStatusUpdateAndIdempotency(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	id := submitTeacher(t, app, "123456789012")

	setStatus := func(status string) *http.Response {
		req := jsonRequest(http.MethodPatch, "/api/teachers/"+id+"/status", fiber.Map{"status": status})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := setStatus("approved")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "approved", body["data"].(map[string]interface{})["status"])

	// Repeating the decision succeeds with the same observable record
	resp = setStatus("approved")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = setStatus("rejected")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeEnvelope(t, resp)
	assert.Equal(t, "rejected", body["data"].(map[string]interface{})["status"])

	resp = setStatus("archived")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusDecisionEmailSentOncePerTransition(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	id := submitTeacher(t, app, "123456789012")

	var sent []string
	original := teacherController.NotifyStatusDecision
	teacherController.NotifyStatusDecision = func(email, name, status string) {
		sent = append(sent, status)
	}
	defer func() { teacherController.NotifyStatusDecision = original }()

	setStatus := func(status string) {
		req := jsonRequest(http.MethodPatch, "/api/teachers/"+id+"/status", fiber.Map{"status": status})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	setStatus("approved")
	assert.Equal(t, []string{"approved"}, sent, "transition into approved notifies once")

	// Repeating the same decision must not send again
	setStatus("approved")
	assert.Equal(t, []string{"approved"}, sent, "repeated decision is silent")

	setStatus("rejected")
	assert.Equal(t, []string{"approved", "rejected"}, sent)

	// Moving back to pending is not a decision the applicant hears about
	setStatus("pending")
	assert.Equal(t, []string{"approved", "rejected"}, sent)
}

func TestUpdateKeepsIdentity(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	id := submitTeacher(t, app, "123456789012")

	req := jsonRequest(http.MethodPatch, "/api/teachers/"+id, fiber.Map{
		"full_name":     "Anita S.",
		"aadhar_number": "999999999999",
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Anita S.", data["full_name"])
	assert.Equal(t, "123456789012", data["aadhar_number"])
}

func TestDeleteThenGetNotFound(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	id := submitTeacher(t, app, "123456789012")

	del := httptest.NewRequest(http.MethodDelete, "/api/teachers/"+id, nil)
	del.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	get := httptest.NewRequest(http.MethodGet, "/api/teachers/"+id, nil)
	get.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(get)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidIdentifierIsBadRequest(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	get := httptest.NewRequest(http.MethodGet, "/api/teachers/not-a-uuid", nil)
	get.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(get)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid teacher id", body["message"])
}
