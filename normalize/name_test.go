package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		first     string
		last      string
		wantFirst string
		wantLast  string
	}{
		{"explicit fields win", "Someone Else", "Jane", "Doe", "Jane", "Doe"},
		{"explicit first only", "", "Jane", "", "Jane", ""},
		{"simple full name", "John Smith", "", "", "John", "Smith"},
		{"multi-word last name", "Ludwig van Beethoven", "", "", "Ludwig", "van Beethoven"},
		{"single token", "Prince", "", "", "Prince", ""},
		{"empty everything", "", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.full, tt.first, tt.last)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestIsAllCapsName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"JOHN SMITH", true},
		{"O'NEIL JR.", true},
		{"ANNA-MARIA O'NEIL", true},
		{"John Smith", false},
		{"JOHN Smith", false},
		{"X", false},
		{"JOHN", false},
		{"JOHN SMITH 3", false},
		{"", false},
		{"- -", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllCapsName(tt.in))
		})
	}
}

func TestProperCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JOHN SMITH", "John Smith"},
		{"ANNA-MARIA O'NEIL", "Anna-Maria O'Neil"},
		{"LUDWIG VAN BEETHOVEN", "Ludwig van Beethoven"},
		{"VAN HALEN", "Van Halen"},
		{"JOHN SMITH III", "John Smith III"},
		{"JOHN SMITH JR", "John Smith Jr."},
		{"JOHN SMITH JR.", "John Smith Jr."},
		{"MARIA DE LA CRUZ", "Maria de la Cruz"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ProperCase(tt.in))
		})
	}
}
