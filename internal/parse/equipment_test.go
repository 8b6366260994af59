package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEquipment(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "already normalized",
			raw:      "Projector, Whiteboard",
			expected: "Projector, Whiteboard",
		},
		{
			name:     "extra whitespace",
			raw:      "  Projector ,   Whiteboard  ",
			expected: "Projector, Whiteboard",
		},
		{
			name:     "inner whitespace collapsed",
			raw:      "HDMI   cable, Whiteboard",
			expected: "HDMI cable, Whiteboard",
		},
		{
			name:     "case insensitive duplicates removed",
			raw:      "Projector, projector, PROJECTOR, Whiteboard",
			expected: "Projector, Whiteboard",
		},
		{
			name:     "empty entries dropped",
			raw:      "Projector,, ,Whiteboard,",
			expected: "Projector, Whiteboard",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeEquipment(tc.raw))
		})
	}
}

func TestSplitEquipment(t *testing.T) {
	assert.Equal(t, []string{"Projector", "TV"}, SplitEquipment("Projector, TV"))
	assert.Nil(t, SplitEquipment(" , ,"))
}
