// Package anim runs search bar transition sequences against a clock and
// exposes the current value of every animated property.
package anim

import (
	"sort"
	"time"

	"github.com/chmouel/floatbar/internal/searchbar"
)

type key struct {
	target searchbar.Target
	prop   searchbar.Property
}

type track struct {
	step    searchbar.Step
	seq     string
	started time.Time
	from    float64
	begun   bool
	done    bool
}

// Driver implements searchbar.Animator. A Start or Set on a (target,
// property) pair cancels every in-flight track on that pair, so the most
// recent request always wins.
type Driver struct {
	clock    Clock
	curve    Curve
	values   map[key]float64
	tracks   map[key][]*track
	onFinish func(sequence string)
	running  map[string]int
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithCurve sets the easing applied to every tween.
func WithCurve(c Curve) Option {
	return func(d *Driver) {
		if c != nil {
			d.curve = c
		}
	}
}

// WithFinishHandler registers fn to be called once a sequence has no
// tracks left, whether they ran to completion or were superseded.
func WithFinishHandler(fn func(sequence string)) Option {
	return func(d *Driver) { d.onFinish = fn }
}

// NewDriver returns an idle driver using ease-in-out timing.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		clock:   realClock{},
		curve:   EaseInOut,
		values:  map[key]float64{},
		tracks:  map[key][]*track{},
		running: map[string]int{},
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// SetCurve changes the easing for tracks evaluated from now on.
func (d *Driver) SetCurve(c Curve) {
	if c != nil {
		d.curve = c
	}
}

// Start schedules seq relative to the current clock time. Steps carrying a
// start value apply it immediately, even when delayed.
func (d *Driver) Start(seq searchbar.Sequence) {
	now := d.clock.Now()
	for _, st := range seq.Steps {
		d.cancel(key{st.Target, st.Property})
	}
	for _, st := range seq.Steps {
		k := key{st.Target, st.Property}
		if st.From != nil && !st.Discrete {
			d.values[k] = *st.From
		}
		d.tracks[k] = append(d.tracks[k], &track{step: st, seq: seq.Name, started: now})
		d.running[seq.Name]++
	}
	d.Advance(now)
}

// Set jumps a property to value and cancels its tracks.
func (d *Driver) Set(target searchbar.Target, prop searchbar.Property, value float64) {
	k := key{target, prop}
	d.cancel(k)
	d.values[k] = value
}

func (d *Driver) cancel(k key) {
	for _, tr := range d.tracks[k] {
		d.release(tr.seq)
	}
	delete(d.tracks, k)
}

func (d *Driver) release(seq string) {
	d.running[seq]--
	if d.running[seq] > 0 {
		return
	}
	delete(d.running, seq)
	if d.onFinish != nil {
		d.onFinish(seq)
	}
}

// Advance evaluates every track at now. Tracks on the same property apply
// in start order, so a later step overrides an earlier one once it begins.
func (d *Driver) Advance(now time.Time) {
	var finished []string
	for k, tracks := range d.tracks {
		live := tracks[:0]
		for _, tr := range tracks {
			d.step(k, tr, now)
			if tr.done {
				finished = append(finished, tr.seq)
				continue
			}
			live = append(live, tr)
		}
		if len(live) == 0 {
			delete(d.tracks, k)
		} else {
			d.tracks[k] = live
		}
	}
	sort.Strings(finished)
	for _, seq := range finished {
		d.release(seq)
	}
}

func (d *Driver) step(k key, tr *track, now time.Time) {
	st := tr.step
	elapsed := now.Sub(tr.started)
	if elapsed < st.Delay {
		return
	}
	if st.Discrete {
		if elapsed >= st.Delay+st.Duration {
			d.values[k] = st.To
			tr.done = true
		}
		return
	}
	if !tr.begun {
		tr.begun = true
		if st.From != nil {
			tr.from = *st.From
		} else {
			tr.from = d.values[k]
		}
	}

	p := 1.0
	if st.Duration > 0 {
		p = float64(elapsed-st.Delay) / float64(st.Duration)
	}
	if p >= 1 {
		d.values[k] = st.To
		tr.done = true
		return
	}
	d.values[k] = lerp(tr.from, st.To, d.curve(p))
}

// Tick advances to the clock's current time and reports whether more
// frames are needed.
func (d *Driver) Tick() bool {
	d.Advance(d.clock.Now())
	return d.Active()
}

// Finish jumps every running track to its end value.
func (d *Driver) Finish() {
	far := d.clock.Now().Add(24 * time.Hour)
	for len(d.tracks) > 0 {
		d.Advance(far)
		far = far.Add(24 * time.Hour)
	}
}

// Active reports whether any track is still running.
func (d *Driver) Active() bool { return len(d.tracks) > 0 }

// Running reports whether the named sequence still has live tracks.
func (d *Driver) Running(sequence string) bool { return d.running[sequence] > 0 }

// Value returns the current value of a property.
func (d *Driver) Value(target searchbar.Target, prop searchbar.Property) (float64, bool) {
	v, ok := d.values[key{target, prop}]
	return v, ok
}

// ValueOr returns the current value of a property or def when it was never
// set.
func (d *Driver) ValueOr(target searchbar.Target, prop searchbar.Property, def float64) float64 {
	if v, ok := d.Value(target, prop); ok {
		return v
	}
	return def
}

// Visibility returns the visibility currently applied to target.
func (d *Driver) Visibility(target searchbar.Target) searchbar.Visibility {
	return searchbar.Visibility(d.ValueOr(target, searchbar.PropVisibility, float64(searchbar.Visible)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
