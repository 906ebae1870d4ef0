package dashboard

import (
	"context"
	"html/template"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/luachboard/luach/internal/companion"
	"github.com/luachboard/luach/internal/model"
	"github.com/luachboard/luach/internal/view"
)

// Section names, also the fragment URL segments.
const (
	SectionPrayerTimes  = "prayer-times"
	SectionWeeklyParsha = "weekly-parsha"
	SectionAstronomical = "astronomical-data"
	SectionReminders    = "practical-reminders"
)

// sectionOrder fixes the page layout top to bottom.
var sectionOrder = []string{
	SectionPrayerTimes,
	SectionWeeklyParsha,
	SectionAstronomical,
	SectionReminders,
}

// Dashboard drives the four fetch-and-render routines. Each routine owns
// exactly one container; routines never share state and may run in any
// order or interleaving.
type Dashboard struct {
	client   *companion.Client
	lat, lon float64
	sections map[string]*view.Container
}

// New builds a dashboard with placeholder content in every section.
func New(client *companion.Client, lat, lon float64) *Dashboard {
	return &Dashboard{
		client: client,
		lat:    lat,
		lon:    lon,
		sections: map[string]*view.Container{
			SectionPrayerTimes:  view.NewContainer(view.Placeholder("Prayer Times")),
			SectionWeeklyParsha: view.NewContainer(view.Placeholder("Weekly Parsha")),
			SectionAstronomical: view.NewContainer(view.Placeholder("Astronomical Data")),
			SectionReminders:    view.NewContainer(view.Placeholder("Practical Reminders")),
		},
	}
}

// Section returns the container for a section name.
func (d *Dashboard) Section(name string) (*view.Container, bool) {
	c, ok := d.sections[name]
	return c, ok
}

// SectionNames returns the section names in page order.
func (d *Dashboard) SectionNames() []string {
	return sectionOrder
}

// RefreshPrayerTimes re-renders the prayer-times section.
func (d *Dashboard) RefreshPrayerTimes(ctx context.Context) {
	refresh(ctx, SectionPrayerTimes,
		func(ctx context.Context) (model.PrayerTimes, error) {
			return d.client.PrayerTimes(ctx, d.lat, d.lon)
		},
		view.RenderPrayerTimes, d.sections[SectionPrayerTimes])
}

// RefreshWeeklyParsha re-renders the weekly-parsha section.
func (d *Dashboard) RefreshWeeklyParsha(ctx context.Context) {
	refresh(ctx, SectionWeeklyParsha, d.client.WeeklyParsha,
		view.RenderParsha, d.sections[SectionWeeklyParsha])
}

// RefreshAstronomical re-renders the astronomical-data section.
func (d *Dashboard) RefreshAstronomical(ctx context.Context) {
	refresh(ctx, SectionAstronomical, d.client.AstronomicalData,
		view.RenderAstronomical, d.sections[SectionAstronomical])
}

// RefreshReminders re-renders the practical-reminders section.
func (d *Dashboard) RefreshReminders(ctx context.Context) {
	refresh(ctx, SectionReminders, d.client.PracticalReminders,
		view.RenderReminders, d.sections[SectionReminders])
}

// RefreshAll runs all four routines concurrently and waits for the pass to
// finish. Sections complete in no particular order.
func (d *Dashboard) RefreshAll(ctx context.Context) {
	routines := []func(context.Context){
		d.RefreshPrayerTimes,
		d.RefreshWeeklyParsha,
		d.RefreshAstronomical,
		d.RefreshReminders,
	}

	var wg sync.WaitGroup
	for _, routine := range routines {
		routine := routine
		wg.Add(1)
		go func() {
			defer wg.Done()
			routine(ctx)
		}()
	}
	wg.Wait()
}

// RefreshAsync fires a refresh pass without waiting on it.
func (d *Dashboard) RefreshAsync(ctx context.Context) {
	go d.RefreshAll(ctx)
}

// refresh is the single fetch-and-render routine shared by all sections:
// fetch, render, replace the target's content. Any failure is logged and
// swallowed; the target keeps whatever it held before.
func refresh[T any](
	ctx context.Context,
	section string,
	fetch func(context.Context) (T, error),
	render func(T) (template.HTML, error),
	target view.Target,
) {
	data, err := fetch(ctx)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("section fetch failed")
		return
	}

	html, err := render(data)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("section render failed")
		return
	}

	target.SetHTML(html)
}
