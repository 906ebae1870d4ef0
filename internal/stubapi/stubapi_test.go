package stubapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachboard/luach/internal/http/api"
	"github.com/luachboard/luach/internal/model"
	"github.com/luachboard/luach/internal/stubapi"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	router = gin.New()
	api.MountGroup(router, api.GroupConfig{}, stubapi.Module())

	os.Exit(m.Run())
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPrayerTimes_DecodesIntoModel(t *testing.T) {
	w := get(t, "/prayer-times/31.7719/35.2170")
	require.Equal(t, http.StatusOK, w.Code)

	var times model.PrayerTimes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &times))
	assert.NotEmpty(t, times.Sunrise)
	assert.NotEmpty(t, times.Sunset)
	assert.NotEmpty(t, times.Tefillin)
}

func TestPrayerTimes_RejectsBadCoordinates(t *testing.T) {
	w := get(t, "/prayer-times/north/east")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeeklyParsha_DecodesIntoModel(t *testing.T) {
	w := get(t, "/weekly-parsha")
	require.Equal(t, http.StatusOK, w.Code)

	var parsha model.WeeklyParsha
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsha))
	assert.Equal(t, "Korach", parsha.ParshaName)
	assert.NotEmpty(t, parsha.ReadingDate)
}

func TestPracticalReminders_DecodesIntoModel(t *testing.T) {
	w := get(t, "/practical-reminders")
	require.Equal(t, http.StatusOK, w.Code)

	var rem model.PracticalReminders
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rem))
	assert.NotEmpty(t, rem.Reminders.ThisWeek)
}
