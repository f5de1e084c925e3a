package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/rendyak/karirku/internal/config"
	"github.com/rendyak/karirku/internal/repositories"
	"github.com/rendyak/karirku/internal/server"
	"github.com/rendyak/karirku/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	auth, err := services.NewAuthService(repositories.NewUsersRepository(dbCtx.DB))
	require.NoError(t, err)

	workflow := newWorkflow(t, EventBus.New())

	srv := server.New(config.ServerConfig{
		Port:               3000,
		MetricsPort:        9090,
		RateLimitPerSecond: 1000,
		RateLimitBurst:     1000,
	}, auth, workflow)
	return srv.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	response := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	}
	return recorder.Code, response
}

func login(t *testing.T, handler http.Handler) string {
	t.Helper()

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"id_card_number": "1234567890123456",
		"password":       "password123",
	})
	require.Equal(t, http.StatusOK, code)

	token, ok := response["token"].(string)
	require.True(t, ok)
	require.Len(t, token, 32)
	return token
}

func Test_Api_LoginRejectsWrongCredentials(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"id_card_number": "1234567890123456",
		"password":       "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "ID Card Number or Password incorrect", response["message"])
}

func Test_Api_LoginReturnsProfileAndStableIdentity(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)

	first := login(t, handler)
	second := login(t, handler)

	// same user, two sessions: tokens differ, derived identity does not
	assert.NotEqual(t, first, second)
	assert.Equal(t, first[:8], second[:8])

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"id_card_number": "1234567890123456",
		"password":       "password123",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Doni Rianto", response["name"])
	regional, ok := response["regional"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "DKI Jakarta", regional["province"])
}

func Test_Api_Logout(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/auth/logout", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token", response["message"])

	code, response = doRequest(t, handler, http.MethodPost, "/api/v1/auth/logout", map[string]any{
		"token": login(t, handler),
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Logout success", response["message"])
}

func Test_Api_ValidationFlow(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)
	token := login(t, handler)

	code, response := doRequest(t, handler, http.MethodGet, "/api/v1/validations?token="+token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, response["validation"])

	body := map[string]any{
		"work_experience": "2 years",
		"job_category":    "1",
		"job_position":    "Backend Developer",
		"reason_accepted": "strong fit",
	}
	code, response = doRequest(t, handler, http.MethodPost, "/api/v1/validation?token="+token, body)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Request data validation sent successful", response["message"])

	code, response = doRequest(t, handler, http.MethodGet, "/api/v1/validations?token="+token, nil)
	assert.Equal(t, http.StatusOK, code)
	validation, ok := response["validation"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "accepted", validation["status"])
	assert.Equal(t, "Backend Developer", validation["job_position"])

	code, response = doRequest(t, handler, http.MethodPost, "/api/v1/validation?token="+token, body)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Validation request already exists", response["message"])
}

func Test_Api_ValidationMissingFields(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)
	token := login(t, handler)

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/validation?token="+token,
		map[string]any{"work_experience": "2 years"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Semua field harus diisi", response["message"])

	fieldErrors, ok := response["errors"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "job_category")
	assert.Contains(t, fieldErrors, "job_position")
	assert.Contains(t, fieldErrors, "reason_accepted")
	assert.NotContains(t, fieldErrors, "work_experience")
}

func Test_Api_VacanciesRequireToken(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)

	code, response := doRequest(t, handler, http.MethodGet, "/api/v1/job_vacancies?token=bad", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized user", response["message"])
}

func Test_Api_VacanciesListCatalogWithCounters(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)
	token := login(t, handler)

	code, response := doRequest(t, handler, http.MethodGet, "/api/v1/job_vacancies?token="+token, nil)
	assert.Equal(t, http.StatusOK, code)

	vacancies, ok := response["vacancies"].([]any)
	assert.True(t, ok)
	assert.Len(t, vacancies, 3)

	first, ok := vacancies[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "PT. MajuMundur Sejahtera", first["company"])

	positions, ok := first["available_position"].([]any)
	assert.True(t, ok)
	webDev, ok := positions[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Web Developer", webDev["position"])
	assert.Equal(t, float64(5), webDev["capacity"])
	assert.Equal(t, float64(0), webDev["apply_count"])
}

func Test_Api_ApplicationFlow(t *testing.T) {

	defer clearDb()
	handler := newTestServer(t)
	token := login(t, handler)

	code, response := doRequest(t, handler, http.MethodPost, "/api/v1/applications?token="+token,
		map[string]any{"vacancy_id": 0, "positions": []string{}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid field", response["message"])
	fieldErrors, ok := response["errors"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "vacancy_id")
	assert.Contains(t, fieldErrors, "positions")

	code, response = doRequest(t, handler, http.MethodPost, "/api/v1/applications?token="+token,
		map[string]any{"vacancy_id": 1, "positions": []string{"Web Developer"}, "notes": "cv attached"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Applying for job successful", response["message"])

	code, response = doRequest(t, handler, http.MethodPost, "/api/v1/applications?token="+token,
		map[string]any{"vacancy_id": 1, "positions": []string{"Mobile Developer"}})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Application for a job can only be once", response["message"])

	code, response = doRequest(t, handler, http.MethodGet, "/api/v1/applications?token="+token, nil)
	assert.Equal(t, http.StatusOK, code)
	vacancies, ok := response["vacancies"].([]any)
	assert.True(t, ok)
	assert.Len(t, vacancies, 1)

	applied, ok := vacancies[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "PT. MajuMundur Sejahtera", applied["company"])
	positions, ok := applied["position"].([]any)
	assert.True(t, ok)
	position, ok := positions[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Web Developer", position["position"])
	assert.Equal(t, "pending", position["apply_status"])
	assert.Equal(t, "cv attached", position["notes"])
}
