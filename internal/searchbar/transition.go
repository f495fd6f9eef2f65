package searchbar

import "time"

// Animation timings.
const (
	ClearButtonFadeDuration    = 500 * time.Millisecond
	MenuIconAnimDuration       = 250 * time.Millisecond
	SearchIconEntranceDuration = 500 * time.Millisecond
	NoneEntranceDuration       = 500 * time.Millisecond
	NoneEntranceDelay          = 150 * time.Millisecond
	NoneExitDuration           = 350 * time.Millisecond
	IconFadeDuration           = 300 * time.Millisecond
	ProgressFadeDuration       = 300 * time.Millisecond
)

// Morph progress endpoints of the hamburger/arrow glyph.
const (
	ProgressHamburger = 0.0
	ProgressArrow     = 1.0
)

// Target names a visual element of the bar.
type Target string

// Targets driven by the controller. Hosts may add their own (menu items,
// drawers) when they share the animator.
const (
	TargetLeftAction   Target = "left-action"
	TargetInputSection Target = "input-section"
	TargetClearButton  Target = "clear-button"
	TargetProgress     Target = "progress"
)

// Property is an animatable attribute of a target.
type Property string

// Properties.
const (
	PropAlpha        Property = "alpha"
	PropRotation     Property = "rotation"
	PropScale        Property = "scale"
	PropTranslationX Property = "translation-x"
	PropProgress     Property = "progress"
	// PropVisibility carries a Visibility value as float64. It is only ever
	// set discretely.
	PropVisibility Property = "visibility"
)

// Step animates one property of one target.
type Step struct {
	Target   Target
	Property Property
	// From is the start value; nil starts from the current value.
	From     *float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	// Discrete steps hold their current value until Delay+Duration has
	// elapsed and then jump to To.
	Discrete bool
}

// Sequence is a set of steps started together by one state change.
type Sequence struct {
	Name  string
	Steps []Step
}

// Total returns the time at which the last step of the sequence finishes.
func (s Sequence) Total() time.Duration {
	var total time.Duration
	for _, st := range s.Steps {
		if end := st.Delay + st.Duration; end > total {
			total = end
		}
	}
	return total
}

// Animator runs transition sequences. Implementations must let a newer
// Start or Set on a (target, property) pair supersede any in-flight step on
// the same pair.
type Animator interface {
	Start(seq Sequence)
	Set(target Target, prop Property, value float64)
}

func from(v float64) *float64 { return &v }

func tween(target Target, prop Property, start *float64, to float64, d, delay time.Duration) Step {
	return Step{Target: target, Property: prop, From: start, To: to, Duration: d, Delay: delay}
}

func hold(target Target, prop Property, to float64, after time.Duration) Step {
	return Step{Target: target, Property: prop, To: to, Delay: after, Discrete: true}
}

// instantAnimator is used when the host does not animate.
type instantAnimator struct{}

func (instantAnimator) Start(Sequence)                {}
func (instantAnimator) Set(Target, Property, float64) {}
