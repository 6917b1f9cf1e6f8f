package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseMask reads a mask drawn with '#' for set cells and '.' for clear
// cells, one row per line.
func parseMask(s string) *Mask {
	lines := strings.Fields(s)
	m := NewMask(len(lines), len(lines[0]))
	for i, line := range lines {
		for j, ch := range line {
			m.Set(i, j, ch == '#')
		}
	}
	return m
}

func (m *Mask) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			if m.At(i, j) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestMaskBounds(t *testing.T) {
	tests := []struct {
		name string
		mask string
		want Rect
	}{
		{
			name: "single cell",
			mask: `
				.....
				..#..
				.....`,
			want: Rect{Row0: 1, Row1: 2, Col0: 2, Col1: 3},
		},
		{
			name: "scattered",
			mask: `
				#....
				.....
				....#`,
			want: Rect{Row0: 0, Row1: 3, Col0: 0, Col1: 5},
		},
		{
			name: "empty",
			mask: `
				...
				...`,
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMask(tt.mask).Bounds()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name == "empty", got.Empty())
		})
	}
}

func TestDilate(t *testing.T) {
	tests := []struct {
		name string
		size int
		in   string
		want string
	}{
		{
			name: "size 1 copies",
			size: 1,
			in: `
				.....
				..#..
				.....`,
			want: `
				.....
				..#..
				.....`,
		},
		{
			name: "3x3 grows one cell each side",
			size: 3,
			in: `
				......
				......
				...#..
				......
				......`,
			want: `
				......
				..###.
				..###.
				..###.
				......`,
		},
		{
			name: "3x3 clipped at the border",
			size: 3,
			in: `
				#...
				....
				...#`,
			want: `
				##..
				####
				..##`,
		},
		{
			name: "even size grows less towards the end",
			size: 4,
			in: `
				......
				......
				...#..
				......
				......
				......`,
			want: `
				.####.
				.####.
				.####.
				.####.
				......
				......`,
		},
		{
			name: "8x8 covers a small grid",
			size: 8,
			in: `
				.....
				..#..
				.....`,
			want: `
				#####
				#####
				#####`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := parseMask(tt.in)
			before := in.String()

			got := Dilate(in, tt.size)
			assert.Equal(t, parseMask(tt.want).String(), got.String())
			assert.Equal(t, before, in.String(), "input mask changed")
		})
	}
}

func TestDilateEmpty(t *testing.T) {
	m := NewMask(0, 0)
	assert.Equal(t, 0, Dilate(m, 3).Count())

	blank := NewMask(4, 4)
	assert.Equal(t, 0, Dilate(blank, 8).Count())
}

func TestMaskCount(t *testing.T) {
	m := parseMask(`
		#.#
		.#.`)
	assert.Equal(t, 3, m.Count())
}
