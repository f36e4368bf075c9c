package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/studyweek/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeekDriver(t *testing.T, app *App, startDay int) (*teatest.Driver, string) {
	t.Helper()
	id := seedPlan(t, app)
	stored, err := app.Plans.Get(context.Background(), id)
	require.NoError(t, err)

	d := teatest.New(t, newWeekModel(stored, app.Progress, startDay), teatest.WithSize(120, 40))
	d.DrainInit()
	return d, id
}

func weekState(d *teatest.Driver) *weekModel {
	return d.Model.(*weekModel)
}

func TestWeekModel_StartsOnRequestedDay(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 5)

	assert.Equal(t, 5, weekState(d).day)
	view := d.View()
	assert.Contains(t, view, "[Sat]")
	assert.Contains(t, view, "SATURDAY")
	assert.Contains(t, view, "0/23 blocks done")
}

func TestWeekModel_DayNavigationWraps(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 0)

	d.PressType(tea.KeyLeft)
	assert.Equal(t, 6, weekState(d).day)
	assert.Contains(t, d.View(), "SUNDAY")

	d.PressType(tea.KeyRight)
	d.PressKey('l')
	assert.Equal(t, 1, weekState(d).day)
	assert.Contains(t, d.View(), "TUESDAY")
}

func TestWeekModel_CursorStaysInBounds(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 0)

	d.PressType(tea.KeyUp)
	assert.Equal(t, 0, weekState(d).cursor)

	for i := 0; i < 5; i++ {
		d.PressType(tea.KeyDown)
	}
	assert.Equal(t, 2, weekState(d).cursor, "Monday holds three blocks")

	d.PressKey('l')
	assert.Equal(t, 0, weekState(d).cursor, "changing day resets the cursor")
}

func TestWeekModel_SpaceTogglesCompletion(t *testing.T) {
	app := testApp(t)
	d, id := newWeekDriver(t, app, 0)
	const block = "Data Structures-0-1800-1900"

	d.PressSpace()
	assert.True(t, weekState(d).done[block])
	assert.Contains(t, d.View(), "1/23 blocks done")

	p, err := app.Progress.Progress(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, p.CompletedIDs[block], "toggle must persist")

	d.PressSpace()
	assert.False(t, weekState(d).done[block])
	assert.Contains(t, d.View(), "0/23 blocks done")
}

func TestWeekModel_ShowsBlockDetail(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 0)
	assert.Contains(t, d.View(), "Data Structures-0-1800-1900")
	assert.Contains(t, d.View(), "● HIGH")
}

func TestWeekModel_HelpToggle(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 0)
	assert.NotContains(t, d.View(), "↑/k")

	d.PressKey('?')
	assert.Contains(t, d.View(), "↑/k")
}

func TestWeekModel_Quit(t *testing.T) {
	d, _ := newWeekDriver(t, testApp(t), 0)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestDayIndexFor(t *testing.T) {
	app := testApp(t)
	stored, err := app.Plans.Get(context.Background(), seedPlan(t, app))
	require.NoError(t, err)

	assert.Equal(t, 2, dayIndexFor(stored.Plan.Week, "2026-03-04"))
	assert.Equal(t, 0, dayIndexFor(stored.Plan.Week, "2027-01-01"))
}
