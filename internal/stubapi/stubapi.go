// Package stubapi serves the companion backend's JSON shapes with canned
// sample values, so the board can run end to end without the real backend.
// Nothing here computes zmanim, calendars or astronomy.
package stubapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luachboard/luach/internal/http/api"
	"github.com/luachboard/luach/internal/model"
)

// Module mounts the four companion endpoints.
func Module() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer-times/:lat/:lon", prayerTimes)
		c.GET("/weekly-parsha", weeklyParsha)
		c.GET("/astronomical-data", astronomicalData)
		c.GET("/practical-reminders", practicalReminders)
	})
}

// GET /prayer-times/:lat/:lon
func prayerTimes(ctx *gin.Context) (any, *api.APIError) {
	for _, p := range []string{"lat", "lon"} {
		if _, err := strconv.ParseFloat(ctx.Param(p), 64); err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: p + " must be a number"}
		}
	}

	return model.PrayerTimes{
		Sunrise:   "05:45",
		Sunset:    "19:30",
		Shacharit: "08:00",
		Mincha:    "16:00",
		Maariv:    "19:00",
		Tefillin:  "08:00",
	}, nil
}

// GET /weekly-parsha
func weeklyParsha(ctx *gin.Context) (any, *api.APIError) {
	return model.WeeklyParsha{
		ParshaName:             "Korach",
		HebrewName:             "קרח",
		ReadingDate:            time.Now().Format("2006-01-02"),
		ChassidicInsight:       "The parsha of Korach teaches about the importance of unity and the dangers of divisiveness.",
		KabbalisticPerspective: "Korach represents the challenge of ego and the need to align with divine will.",
	}, nil
}

// GET /astronomical-data
func astronomicalData(ctx *gin.Context) (any, *api.APIError) {
	return model.AstronomicalData{
		MoonPhase: "Waxing Gibbous",
		Tide:      "High",
		Mazalot:   "Gemini",
	}, nil
}

// GET /practical-reminders
func practicalReminders(ctx *gin.Context) (any, *api.APIError) {
	return model.PracticalReminders{
		Reminders: model.ReminderLists{
			Today: []string{
				"Prepare challah for Shabbat",
			},
			ThisWeek: []string{
				"Plan your Shabbat menu",
				"Review this week's parsha",
			},
		},
	}, nil
}
