package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"incubator-admin/internal/logger"
	"incubator-admin/internal/memory"
	"incubator-admin/internal/usecase/device"
	"incubator-admin/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

func setupRouter() *gin.Engine {
	stores := memory.NewSeededStores()

	r := gin.New()
	v1 := r.Group("/api/v1")
	NewDeviceHandler(device.NewService(stores.Devices)).RegisterRoutes(v1)
	NewUserHandler(user.NewService(stores.Users)).RegisterRoutes(v1)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestListDevices(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/devices", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Devices retrieved successfully", body.Message)

	var data struct {
		Devices []json.RawMessage `json:"devices"`
		Total   int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 6, data.Total)
	assert.Len(t, data.Devices, 6)
}

func TestGetDeviceNotFound(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/devices/INC-9999-000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestCreateDeviceInvalidBody(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/devices", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDevice(t *testing.T) {
	router := setupRouter()

	payload := `{"name":"Cảm biến nhiệt độ kho C", "type":"sensor", "owner":"Trại gà Minh Phát"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/devices", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Device created successfully", body.Message)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "running", created.Status)
}

func TestDeleteUserRequiresConfirmation(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/users/U004", strings.NewReader(`{"confirm":false}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	// The user must still be there.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/users/U004", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUserConfirmed(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/users/U004", strings.NewReader(`{"confirm":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/users/U004", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
