package view

import (
	"bytes"
	"html/template"

	"github.com/luachboard/luach/internal/model"
)

var (
	prayerTimesTmpl = template.Must(template.New("prayer-times").Parse(`<section class="card prayer-times">
  <h2>Prayer Times</h2>
  <ul>
    <li><span class="label">Sunrise</span> {{.Sunrise}}</li>
    <li><span class="label">Shacharit</span> {{.Shacharit}}</li>
    <li><span class="label">Latest Tefillin</span> {{.Tefillin}}</li>
    <li><span class="label">Mincha</span> {{.Mincha}}</li>
    <li><span class="label">Sunset</span> {{.Sunset}}</li>
    <li><span class="label">Maariv</span> {{.Maariv}}</li>
  </ul>
</section>`))

	parshaTmpl = template.Must(template.New("weekly-parsha").Parse(`<section class="card weekly-parsha">
  <h2>{{.ParshaName}} <span class="hebrew">{{.HebrewName}}</span></h2>
  <p class="reading-date">{{.ReadingDate}}</p>
  <h3>Chassidic Insight</h3>
  <p>{{.ChassidicInsight}}</p>
  <h3>Kabbalistic Perspective</h3>
  <p>{{.KabbalisticPerspective}}</p>
</section>`))

	astronomicalTmpl = template.Must(template.New("astronomical-data").Parse(`<section class="card astronomical-data">
  <h2>Astronomical Data</h2>
  <ul>
    <li><span class="label">Moon Phase</span> {{.MoonPhase}}</li>
    <li><span class="label">Tide</span> {{.Tide}}</li>
    <li><span class="label">Mazalot</span> {{.Mazalot}}</li>
  </ul>
</section>`))

	remindersTmpl = template.Must(template.New("practical-reminders").Parse(`<section class="card practical-reminders">
  <h2>Practical Reminders</h2>
  <ul>
{{- range .Reminders.Today}}
    <li>Today: {{.}}</li>
{{- end}}
{{- range .Reminders.ThisWeek}}
    <li>This week: {{.}}</li>
{{- end}}
  </ul>
</section>`))
)

// RenderPrayerTimes renders the prayer-times section.
func RenderPrayerTimes(data model.PrayerTimes) (template.HTML, error) {
	return execute(prayerTimesTmpl, data)
}

// RenderParsha renders the weekly-parsha section.
func RenderParsha(data model.WeeklyParsha) (template.HTML, error) {
	return execute(parshaTmpl, data)
}

// RenderAstronomical renders the astronomical-data section.
func RenderAstronomical(data model.AstronomicalData) (template.HTML, error) {
	return execute(astronomicalTmpl, data)
}

// RenderReminders renders the practical-reminders section. Today entries
// come first, then this-week entries, each list in response order.
func RenderReminders(data model.PracticalReminders) (template.HTML, error) {
	return execute(remindersTmpl, data)
}

// Placeholder is the markup a section serves before its first render.
func Placeholder(title string) template.HTML {
	var buf bytes.Buffer
	if err := placeholderTmpl.Execute(&buf, title); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}

var placeholderTmpl = template.Must(template.New("placeholder").Parse(
	`<section class="card pending"><h2>{{.}}</h2><p>Loading&hellip;</p></section>`))

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
