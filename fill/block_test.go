package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstWithinCeiling(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		ceiling int
		want    int
	}{
		{"skips empty levels", []int{0, 2, 70}, 40, 1},
		{"oversized nearest ancestor is skipped", []int{50, 12}, 40, 1},
		{"every level oversized fails closed", []int{70, 80, 90}, 40, -1},
		{"no interactive elements anywhere fails closed", []int{0, 0, 0}, 40, -1},
		{"exact ceiling qualifies", []int{40}, 40, 0},
		{"one past ceiling does not", []int{41}, 40, -1},
		{"empty counts", nil, 40, -1},
		{"radio ceiling admits larger blocks", []int{55}, 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstWithinCeiling(tt.counts, tt.ceiling))
		})
	}
}
