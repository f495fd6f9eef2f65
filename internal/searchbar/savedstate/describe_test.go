package savedstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	out := Describe(Record{
		Focused:        true,
		Query:          "pizza",
		LeftActionMode: 2,
		MenuID:         -1,
		QueryTextColor: 0xFF112233,
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, out, `query:             "pizza"`)
	assert.Contains(t, out, "search (2)")
	assert.Contains(t, out, "#FF112233")
	assert.Contains(t, out, "menu:              -1")
}

func TestDescribeInvalidMode(t *testing.T) {
	assert.Contains(t, Describe(Record{LeftActionMode: 9}), "invalid (9)")
}
