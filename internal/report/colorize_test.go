package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	yes, no := true, false

	text, color := YesNo(&yes)
	assert.Equal(t, "Yes", text)
	assert.Equal(t, colorGreen, color)

	text, color = YesNo(&no)
	assert.Equal(t, "No", text)
	assert.Equal(t, colorRed, color)

	text, color = YesNo(nil)
	assert.Equal(t, "N/A", text)
	assert.Equal(t, colorGrey, color)
}

func TestRatingBands(t *testing.T) {
	tests := []struct {
		value float64
		want  Color
	}{
		{-1, colorGrey},
		{0, colorGrey},
		{1, colorRed},
		{2, colorRed},
		{3, colorOrange},
		{4, colorOrange},
		{5, colorGreen},
		{10, colorGreen},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, Rating(tt.value), "rating(%v)", tt.value)
	}
}
