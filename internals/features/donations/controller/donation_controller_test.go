package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testDonationID = "a1b2c3d4-e5f6-4890-abcd-ef1234567890"

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func newDonationApp(db *gorm.DB) *fiber.App {
	ctrl := NewDonationController(db)
	app := fiber.New()
	app.Post("/api/donations", ctrl.CreateDonation)
	app.Get("/api/donations", ctrl.GetDonationsByEmail)
	app.Get("/api/donations/:id", ctrl.GetDonationByID)
	app.Get("/api/a/donations", ctrl.GetAllDonations)
	app.Get("/api/a/donations/summary", ctrl.GetDonationSummary)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var r *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	} else {
		r = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(method, path, r)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(httpReq, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func validIntake() map[string]interface{} {
	return map[string]interface{}{
		"fullName":     "Asha Rao",
		"email":        "asha@example.com",
		"phone":        "+919876543210",
		"amount":       "100",
		"donationType": "one-time",
		"purpose":      "education",
		"message":      "Keep up the good work",
	}
}

func donationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"donation_id", "donation_name", "donation_email", "donation_amount",
		"donation_type", "donation_purpose", "donation_payment_status",
		"created_at", "updated_at",
	}).AddRow(
		testDonationID, "Asha Rao", "asha@example.com", "100.00",
		"one-time", "education", "pending",
		time.Now(), time.Now(),
	)
}

/* =========================================================
   Intake
========================================================= */

func TestCreateDonationMissingRequiredFields(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	for _, missing := range []string{"fullName", "email", "amount", "donationType", "purpose"} {
		t.Run("tanpa "+missing, func(t *testing.T) {
			payload := validIntake()
			delete(payload, missing)
			status, _ := doJSON(t, app, "POST", "/api/donations", payload)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}

	// tidak boleh ada write parsial
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDonationInvalidValues(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	tests := []struct {
		name  string
		patch map[string]interface{}
	}{
		{"email tidak valid", map[string]interface{}{"email": "bukan-email"}},
		{"amount nol", map[string]interface{}{"amount": "0"}},
		{"amount negatif", map[string]interface{}{"amount": "-10"}},
		{"cadence di luar enum", map[string]interface{}{"donationType": "weekly"}},
		{"purpose di luar enum", map[string]interface{}{"purpose": "gadgets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validIntake()
			for k, v := range tt.patch {
				payload[k] = v
			}
			status, _ := doJSON(t, app, "POST", "/api/donations", payload)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDonationSuccess(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`INSERT INTO "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"donation_id"}).AddRow(testDonationID))

	status, body := doJSON(t, app, "POST", "/api/donations", validIntake())

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	donation, ok := body["donation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, testDonationID, donation["donation_id"])
	assert.Equal(t, "pending", donation["donation_payment_status"])
	assert.Equal(t, "razorpay", donation["donation_payment_method"])
	assert.Equal(t, "one-time", donation["donation_type"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDonationStoreError(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`INSERT INTO "donations"`).WillReturnError(assert.AnError)

	status, body := doJSON(t, app, "POST", "/api/donations", validIntake())

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to save donation", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* =========================================================
   Reads
========================================================= */

func TestGetDonationsByEmailRequiresParam(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	status, body := doJSON(t, app, "GET", "/api/donations", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Email parameter required", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationsByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).
		WillReturnRows(donationRows())

	status, body := doJSON(t, app, "GET", "/api/donations?email=asha%40example.com", nil)

	assert.Equal(t, fiber.StatusOK, status)
	donations, ok := body["donations"].([]interface{})
	require.True(t, ok)
	require.Len(t, donations, 1)

	first, ok := donations[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", first["donation_email"])

	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(20), pagination["per_page"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationByID(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).WillReturnRows(donationRows())

	status, body := doJSON(t, app, "GET", "/api/donations/"+testDonationID, nil)

	assert.Equal(t, fiber.StatusOK, status)
	donation, ok := body["donation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, testDonationID, donation["donation_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"donation_id"}))

	status, body := doJSON(t, app, "GET", "/api/donations/"+testDonationID, nil)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Donation not found", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationByIDInvalidUUID(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	status, _ := doJSON(t, app, "GET", "/api/donations/bukan-uuid", nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllDonationsPaging(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).
		WillReturnRows(donationRows())

	status, body := doJSON(t, app, "GET", "/api/a/donations?page=2&per_page=10", nil)

	assert.Equal(t, fiber.StatusOK, status)
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(10), pagination["per_page"])
	assert.Equal(t, float64(45), pagination["total"])
	assert.Equal(t, float64(5), pagination["total_pages"])
	assert.Equal(t, true, pagination["has_next"])
	assert.Equal(t, true, pagination["has_prev"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationSummary(t *testing.T) {
	db, mock := newTestDB(t)
	app := newDonationApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(donation_amount\), 0\) FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1250.00"))
	mock.ExpectQuery(`SELECT donation_purpose, COUNT\(\*\) AS count`).
		WillReturnRows(sqlmock.NewRows([]string{"donation_purpose", "count", "amount"}).
			AddRow("education", 4, "750.00").
			AddRow("healthcare", 3, "500.00"))

	status, body := doJSON(t, app, "GET", "/api/a/donations/summary", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(10), body["total_donations"])
	assert.Equal(t, float64(7), body["completed_donations"])

	byPurpose, ok := body["by_purpose"].([]interface{})
	require.True(t, ok)
	assert.Len(t, byPurpose, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}
