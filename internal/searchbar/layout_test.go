package searchbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffsets(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		focused bool
		want    Offsets
	}{
		{name: "no items unfocused", width: 0, focused: false, want: Offsets{-4, 18}},
		{name: "no items focused", width: 0, focused: true, want: Offsets{-4, 52}},
		{name: "negative width counts as zero", width: -30, focused: true, want: Offsets{-4, 52}},
		{name: "narrow menu keeps inset", width: 2, focused: false, want: Offsets{-4, 2}},
		{name: "wide menu unfocused", width: 100, focused: false, want: Offsets{-100, 100}},
		{name: "wide menu focused", width: 100, focused: true, want: Offsets{-100, 148}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOffsets(tt.width, tt.focused, nil))
		})
	}
}

func TestComputeOffsetsScalesDp(t *testing.T) {
	double := func(dp int) int { return dp * 2 }

	got := ComputeOffsets(0, true, double)

	assert.Equal(t, Offsets{ClearButtonTranslationX: -8, InputPaddingRight: 8 + 96}, got)
}

func TestComputeOffsetsMonotonic(t *testing.T) {
	for _, focused := range []bool{false, true} {
		prev := ComputeOffsets(0, focused, nil)
		for w := 1; w <= 300; w++ {
			cur := ComputeOffsets(w, focused, nil)
			assert.LessOrEqual(t, cur.ClearButtonTranslationX, prev.ClearButtonTranslationX, "width %d", w)
			assert.LessOrEqual(t, cur.ClearButtonTranslationX, 0)
			prev = cur
		}
	}
}

func TestComputeOffsetsIdempotent(t *testing.T) {
	a := ComputeOffsets(37, true, nil)
	b := ComputeOffsets(37, true, nil)
	assert.Equal(t, a, b)
}
