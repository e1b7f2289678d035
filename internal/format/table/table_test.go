package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"●", "alpha", "2"},
		{"○", "be", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"● alpha  2",
		"○ be    12",
	}, got)
}

func TestFormatDropsTrailingPadding(t *testing.T) {
	got := Format([][]string{{"a", "long"}, {"bb", "x"}}, nil)
	assert.Equal(t, []string{"a  long", "bb x"}, got)
}

func TestFormatEmpty(t *testing.T) {
	assert.Nil(t, Format(nil, nil))
}
