package model

// The companion backend owns all formatting; every field here is an opaque
// display string rendered verbatim. Records live for a single render pass.

// PrayerTimes is the response of /prayer-times/{lat}/{lon}.
type PrayerTimes struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Shacharit string `json:"shacharit"`
	Mincha    string `json:"mincha"`
	Maariv    string `json:"maariv"`
	Tefillin  string `json:"tefillin"`
}

// WeeklyParsha is the response of /weekly-parsha.
type WeeklyParsha struct {
	ParshaName             string `json:"parsha_name"`
	HebrewName             string `json:"hebrew_name"`
	ReadingDate            string `json:"reading_date"`
	ChassidicInsight       string `json:"chassidic_insight"`
	KabbalisticPerspective string `json:"kabbalistic_perspective"`
}

// AstronomicalData is the response of /astronomical-data.
type AstronomicalData struct {
	MoonPhase string `json:"moon_phase"`
	Tide      string `json:"tide"`
	Mazalot   string `json:"mazalot"`
}

// PracticalReminders is the response of /practical-reminders.
type PracticalReminders struct {
	Reminders ReminderLists `json:"reminders"`
}

// ReminderLists holds the two ordered reminder sequences.
type ReminderLists struct {
	Today    []string `json:"today"`
	ThisWeek []string `json:"this_week"`
}
