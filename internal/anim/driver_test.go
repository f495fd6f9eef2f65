package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/floatbar/internal/searchbar"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

func newTestDriver(opts ...Option) (*Driver, *ManualClock) {
	clock := NewManualClock(epoch)
	opts = append([]Option{WithClock(clock), WithCurve(Linear)}, opts...)
	return NewDriver(opts...), clock
}

func fade(name string, from, to float64, d, delay time.Duration) searchbar.Sequence {
	return searchbar.Sequence{Name: name, Steps: []searchbar.Step{{
		Target:   searchbar.TargetLeftAction,
		Property: searchbar.PropAlpha,
		From:     ptr(from),
		To:       to,
		Duration: d,
		Delay:    delay,
	}}}
}

func alpha(d *Driver) float64 {
	return d.ValueOr(searchbar.TargetLeftAction, searchbar.PropAlpha, -1)
}

func TestDriverInterpolates(t *testing.T) {
	d, clock := newTestDriver()

	d.Start(fade("in", 0, 1, 100*time.Millisecond, 0))
	assert.InDelta(t, 0, alpha(d), 1e-9)
	assert.True(t, d.Active())

	d.Advance(clock.Add(25 * time.Millisecond))
	assert.InDelta(t, 0.25, alpha(d), 1e-9)

	d.Advance(clock.Add(100 * time.Millisecond))
	assert.InDelta(t, 1, alpha(d), 1e-9)
	assert.False(t, d.Active())
}

func TestDriverDelayAppliesFromImmediately(t *testing.T) {
	d, clock := newTestDriver()
	d.Set(searchbar.TargetLeftAction, searchbar.PropAlpha, 1)

	d.Start(fade("late", 0, 1, 100*time.Millisecond, 50*time.Millisecond))
	assert.InDelta(t, 0, alpha(d), 1e-9)

	d.Advance(clock.Add(40 * time.Millisecond))
	assert.InDelta(t, 0, alpha(d), 1e-9)

	d.Advance(clock.Add(60 * time.Millisecond))
	assert.InDelta(t, 0.5, alpha(d), 1e-9)
}

func TestDriverNilFromStartsAtCurrentValue(t *testing.T) {
	d, clock := newTestDriver()
	d.Set(searchbar.TargetInputSection, searchbar.PropTranslationX, -100)

	d.Start(searchbar.Sequence{Name: "slide", Steps: []searchbar.Step{{
		Target:   searchbar.TargetInputSection,
		Property: searchbar.PropTranslationX,
		To:       0,
		Duration: 200 * time.Millisecond,
	}}})
	d.Advance(clock.Add(100 * time.Millisecond))

	assert.InDelta(t, -50, d.ValueOr(searchbar.TargetInputSection, searchbar.PropTranslationX, 0), 1e-9)
}

func TestDriverNewerRequestWins(t *testing.T) {
	d, clock := newTestDriver()

	d.Start(fade("out", 1, 0, 100*time.Millisecond, 0))
	d.Advance(clock.Add(50 * time.Millisecond))
	d.Start(fade("in", 0.2, 1, 100*time.Millisecond, 0))
	assert.False(t, d.Running("out"))

	d.Advance(clock.Add(200 * time.Millisecond))
	assert.InDelta(t, 1, alpha(d), 1e-9)

	d.Start(fade("again", 0, 1, 100*time.Millisecond, 0))
	d.Set(searchbar.TargetLeftAction, searchbar.PropAlpha, 0.7)
	assert.False(t, d.Active())
	assert.InDelta(t, 0.7, alpha(d), 1e-9)
}

func TestDriverDiscreteHold(t *testing.T) {
	d, clock := newTestDriver()
	d.Set(searchbar.TargetLeftAction, searchbar.PropVisibility, float64(searchbar.Visible))

	d.Start(searchbar.Sequence{Name: "hide", Steps: []searchbar.Step{{
		Target:   searchbar.TargetLeftAction,
		Property: searchbar.PropVisibility,
		To:       float64(searchbar.Invisible),
		Delay:    350 * time.Millisecond,
		Discrete: true,
	}}})

	d.Advance(clock.Add(349 * time.Millisecond))
	assert.Equal(t, searchbar.Visible, d.Visibility(searchbar.TargetLeftAction))
	d.Advance(clock.Add(time.Millisecond))
	assert.Equal(t, searchbar.Invisible, d.Visibility(searchbar.TargetLeftAction))
}

func TestDriverSetCancelsPendingHold(t *testing.T) {
	d, clock := newTestDriver()
	d.Start(searchbar.Sequence{Name: "hide", Steps: []searchbar.Step{{
		Target:   searchbar.TargetLeftAction,
		Property: searchbar.PropVisibility,
		To:       float64(searchbar.Invisible),
		Delay:    350 * time.Millisecond,
		Discrete: true,
	}}})

	d.Set(searchbar.TargetLeftAction, searchbar.PropVisibility, float64(searchbar.Visible))
	d.Advance(clock.Add(time.Second))

	assert.Equal(t, searchbar.Visible, d.Visibility(searchbar.TargetLeftAction))
}

func TestDriverFinishHandler(t *testing.T) {
	var finished []string
	d, clock := newTestDriver(WithFinishHandler(func(s string) { finished = append(finished, s) }))

	d.Start(fade("a", 0, 1, 100*time.Millisecond, 0))
	d.Advance(clock.Add(50 * time.Millisecond))
	assert.Empty(t, finished)

	d.Start(fade("b", 0, 1, 100*time.Millisecond, 0))
	assert.Equal(t, []string{"a"}, finished, "superseded sequences finish too")

	d.Finish()
	assert.Equal(t, []string{"a", "b"}, finished)
	assert.False(t, d.Active())
}

func TestDriverTick(t *testing.T) {
	d, clock := newTestDriver()
	d.Start(fade("in", 0, 1, 32*time.Millisecond, 0))

	clock.Add(16 * time.Millisecond)
	assert.True(t, d.Tick())
	clock.Add(16 * time.Millisecond)
	assert.False(t, d.Tick())
}

// The controller's exit transition in none mode shrinks and fades the icon,
// then hides it and restores scale and alpha. Refocusing mid-way must leave
// the icon visible.
func TestDriverWithControllerRapidFocusToggle(t *testing.T) {
	d, clock := newTestDriver()
	c, err := searchbar.New(searchbar.Options{
		Field:    &nopField{},
		Animator: d,
		Mode:     searchbar.LeftActionNone,
	})
	require.NoError(t, err)

	c.RequestFocus(true)
	d.Advance(clock.Add(time.Second))
	require.Equal(t, searchbar.Visible, d.Visibility(searchbar.TargetLeftAction))

	c.RequestFocus(false)
	d.Advance(clock.Add(100 * time.Millisecond))
	c.RequestFocus(true)
	d.Advance(clock.Add(time.Second))

	assert.Equal(t, searchbar.Visible, d.Visibility(searchbar.TargetLeftAction))
	assert.InDelta(t, 1, d.ValueOr(searchbar.TargetLeftAction, searchbar.PropAlpha, 0), 1e-9)
	assert.InDelta(t, 1, d.ValueOr(searchbar.TargetLeftAction, searchbar.PropScale, 0), 1e-9)
	assert.InDelta(t, 0, d.ValueOr(searchbar.TargetInputSection, searchbar.PropTranslationX, -1), 1e-9)
	assert.False(t, d.Active())

	c.RequestFocus(false)
	d.Finish()
	assert.Equal(t, searchbar.Invisible, d.Visibility(searchbar.TargetLeftAction))
	assert.InDelta(t, 1, d.ValueOr(searchbar.TargetLeftAction, searchbar.PropScale, 0), 1e-9)
	assert.InDelta(t, -52, d.ValueOr(searchbar.TargetInputSection, searchbar.PropTranslationX, 0), 1e-9)
}

type nopField struct{ text string }

func (f *nopField) Text() string                 { return f.text }
func (f *nopField) SetText(text string)          { f.text = text }
func (f *nopField) SetSelection(int)             {}
func (f *nopField) SetHint(string)               {}
func (f *nopField) SetTextColor(searchbar.Color) {}
func (f *nopField) SetHintColor(searchbar.Color) {}
func (f *nopField) SetTextSize(int)              {}
func (f *nopField) SetSearchAction(bool)         {}
func (f *nopField) SetLongClickable(bool)        {}
func (f *nopField) SetFocusable(bool)            {}
func (f *nopField) SetPaddingRight(int)          {}
func (f *nopField) RequestFocus()                {}
func (f *nopField) ClearFocus()                  {}
