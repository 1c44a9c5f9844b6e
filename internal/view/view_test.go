package view

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Moura/portfolio/internal/theme"
)

// recorder is a RootMarker that remembers every call.
type recorder struct {
	calls []bool
}

func (r *recorder) SetDarkPresentation(on bool) { r.calls = append(r.calls, on) }

func (r *recorder) marked() bool {
	return len(r.calls) > 0 && r.calls[len(r.calls)-1]
}

func TestMount_Defaults(t *testing.T) {
	rec := &recorder{}
	v := Mount(rec)

	assert.Equal(t, State{DarkMode: false, ActiveTheme: theme.Blue}, v.State())
	require.Len(t, rec.calls, 1, "mount syncs the marker once")
	assert.False(t, rec.marked())
}

func TestMount_NilMarker(t *testing.T) {
	v := Mount(nil)
	v.ToggleDarkMode()
	assert.True(t, v.State().DarkMode)
}

func TestSelectTheme(t *testing.T) {
	for _, id := range theme.All() {
		t.Run(id.String(), func(t *testing.T) {
			rec := &recorder{}
			v := Mount(rec)

			v.SelectTheme(id)

			assert.Equal(t, id, v.State().ActiveTheme)
			assert.False(t, v.State().DarkMode)
			assert.Len(t, rec.calls, 1, "theme changes do not touch the marker")
		})
	}
}

func TestToggleDarkMode_DoubleToggle(t *testing.T) {
	rec := &recorder{}
	v := Mount(rec)

	v.ToggleDarkMode()
	assert.True(t, v.State().DarkMode)
	assert.True(t, rec.marked())

	v.ToggleDarkMode()
	assert.False(t, v.State().DarkMode)
	assert.False(t, rec.marked())

	assert.Equal(t, []bool{false, true, false}, rec.calls)
}

func TestToggleDarkMode_KeepsTheme(t *testing.T) {
	v := Mount(nil)
	v.SelectTheme(theme.Orange)

	v.ToggleDarkMode()

	assert.Equal(t, State{DarkMode: true, ActiveTheme: theme.Orange}, v.State())
}

func TestMarkerFunc(t *testing.T) {
	var got []bool
	v := Mount(MarkerFunc(func(on bool) { got = append(got, on) }))
	v.ToggleDarkMode()

	assert.Equal(t, []bool{false, true}, got)
}

func TestView_ConcurrentToggles(t *testing.T) {
	v := Mount(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.ToggleDarkMode()
		}()
	}
	wg.Wait()

	assert.False(t, v.State().DarkMode, "an even number of toggles returns to light")
}
