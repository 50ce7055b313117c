package concatdoc

import "testing"

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 3},
		{"a\U0001F600b", 4}, // emoji is a surrogate pair
		{"\U0001F600\U0001F600", 4},
	}

	for _, tt := range tests {
		if got := utf16Len(tt.s); got != tt.want {
			t.Errorf("utf16Len(%q): expected %d, got %d", tt.s, tt.want, got)
		}
	}
}

func TestClampPosition(t *testing.T) {
	lens := []int{5, 0, 3} // e.g. "hello", "", "abc"

	tests := []struct {
		name string
		pos  Position
		want Position
	}{
		{"valid", Position{0, 3}, Position{0, 3}},
		{"line end", Position{0, 5}, Position{0, 5}},
		{"column past end", Position{0, 9}, Position{0, 5}},
		{"empty line", Position{1, 4}, Position{1, 0}},
		{"line past end", Position{7, 0}, Position{2, 3}},
		{"negative line", Position{-1, 2}, Position{0, 2}},
		{"negative column", Position{2, -3}, Position{2, 0}},
	}

	for _, tt := range tests {
		if got := clampPosition(lens, tt.pos); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestClampPositionEmptyTable(t *testing.T) {
	if got := clampPosition(nil, Position{3, 4}); got != (Position{}) {
		t.Errorf("Expected (0:0), got %v", got)
	}
}

func TestPosToOffset(t *testing.T) {
	lens := []int{5, 0, 3}

	tests := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{0, 5}, 5},
		{Position{1, 0}, 6},
		{Position{2, 0}, 7},
		{Position{2, 3}, 10},
		{Position{2, 99}, 10}, // clamped to line end
		{Position{9, 9}, 10},  // clamped to table end
	}

	for _, tt := range tests {
		if got := posToOffset(lens, tt.pos); got != tt.want {
			t.Errorf("posToOffset(%v): expected %d, got %d", tt.pos, tt.want, got)
		}
	}
}

func TestOffsetToPos(t *testing.T) {
	lens := []int{5, 0, 3}

	tests := []struct {
		off  int
		want Position
	}{
		{0, Position{0, 0}},
		{5, Position{0, 5}}, // end of line 0, not start of line 1
		{6, Position{1, 0}},
		{7, Position{2, 0}},
		{10, Position{2, 3}},
		{42, Position{2, 3}}, // clamped
		{-1, Position{0, 0}},
	}

	for _, tt := range tests {
		if got := offsetToPos(lens, tt.off); got != tt.want {
			t.Errorf("offsetToPos(%d): expected %v, got %v", tt.off, tt.want, got)
		}
	}
}

func TestPosOffsetRoundTrip(t *testing.T) {
	lens := []int{4, 0, 7, 2}
	total := 4 + 1 + 0 + 1 + 7 + 1 + 2

	for off := 0; off <= total; off++ {
		pos := offsetToPos(lens, off)
		if got := posToOffset(lens, pos); got != off {
			t.Errorf("Offset %d: round trip via %v gave %d", off, pos, got)
		}
	}
}

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 1}, Position{0, 2}, -1},
		{Position{1, 0}, Position{0, 9}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
		if tt.want == -1 && !tt.a.Before(tt.b) {
			t.Errorf("Expected %v before %v", tt.a, tt.b)
		}
		if tt.want == 1 && !tt.a.After(tt.b) {
			t.Errorf("Expected %v after %v", tt.a, tt.b)
		}
	}
}
