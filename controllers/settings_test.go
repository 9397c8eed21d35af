package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"superapp/models"

	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

func TestGetSettings(t *testing.T) {
	api := newTestAPI()

	// default page size (200)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetSettings(c)

	var settings models.Settings
	err := json.NewDecoder(w.Body).Decode(&settings)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, settings.PerPage)
}

func TestUpdateSettings(t *testing.T) {
	api := newTestAPI()

	// nil request (400)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var genericResp GenericResponse

	req, _ := http.NewRequest("PUT", "", nil)
	c.Request = req
	api.UpdateSettings(c)

	err := json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", genericResp.Message)

	// page size below one (400)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload := parsePayload(models.Settings{PerPage: 0})
	req, _ = http.NewRequest("PUT", "", payload)
	c.Request = req
	api.UpdateSettings(c)

	err = json.NewDecoder(w.Body).Decode(&genericResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid-per-page", genericResp.Message)

	// 200, the new size sticks
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	payload = parsePayload(models.Settings{PerPage: 10})
	req, _ = http.NewRequest("PUT", "", payload)
	c.Request = req
	api.UpdateSettings(c)

	var respOk map[string]string
	err = json.NewDecoder(w.Body).Decode(&respOk)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", respOk["message"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest("GET", "", nil)
	c.Request = req
	api.GetSettings(c)

	var settings models.Settings
	err = json.NewDecoder(w.Body).Decode(&settings)
	assert.Equal(t, nil, err)
	assert.Equal(t, 10, settings.PerPage)
}
