package companion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrayerTimes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"sunrise": "05:42", "sunset": "19:03",
			"shacharit": "08:00", "mincha": "16:00",
			"maariv": "19:00", "tefillin": "08:00"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	times, err := c.PrayerTimes(context.Background(), 31.7719, 35.2170)
	require.NoError(t, err)

	assert.Equal(t, "/prayer-times/31.7719/35.217", gotPath)
	assert.Equal(t, "05:42", times.Sunrise)
	assert.Equal(t, "19:03", times.Sunset)
	assert.Equal(t, "08:00", times.Shacharit)
	assert.Equal(t, "16:00", times.Mincha)
	assert.Equal(t, "19:00", times.Maariv)
	assert.Equal(t, "08:00", times.Tefillin)
}

func TestWeeklyParsha_MissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"parsha_name": "Korach"}`))
	}))
	defer srv.Close()

	parsha, err := NewClient(srv.URL).WeeklyParsha(context.Background())
	require.NoError(t, err)

	// absent fields decode to zero values, never an error
	assert.Equal(t, "Korach", parsha.ParshaName)
	assert.Empty(t, parsha.HebrewName)
	assert.Empty(t, parsha.ChassidicInsight)
}

func TestPracticalReminders_Order(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reminders": {"today": ["a", "b"], "this_week": ["c"]}}`))
	}))
	defer srv.Close()

	rem, err := NewClient(srv.URL).PracticalReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, rem.Reminders.Today)
	assert.Equal(t, []string{"c"}, rem.Reminders.ThisWeek)
}

func TestGetJSON_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Internal Server Error</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).AstronomicalData(context.Background())
	require.Error(t, err)
}

func TestGetJSON_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).AstronomicalData(context.Background())
	require.Error(t, err)
}

func TestGetJSON_ErrorStatusWithJSONBody(t *testing.T) {
	// the renderer never filters on status; a JSON body renders regardless
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"moon_phase": "Waning Crescent", "tide": "Low", "mazalot": "Dagim"}`))
	}))
	defer srv.Close()

	data, err := NewClient(srv.URL).AstronomicalData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Waning Crescent", data.MoonPhase)
}
