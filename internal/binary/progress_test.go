package binary

import (
	"testing"
)

func TestTransferAdvance_KnownTotal(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		chunks []int
		want   []int // percents emitted
	}{
		{
			name:   "single chunk",
			total:  100,
			chunks: []int{100},
			want:   []int{100},
		},
		{
			name:   "first chunk below ten reports zero",
			total:  1000,
			chunks: []int{5, 95, 900},
			want:   []int{0, 10, 100},
		},
		{
			name:   "duplicate milestones suppressed",
			total:  1000,
			chunks: []int{101, 1, 1, 1, 896},
			want:   []int{10, 100},
		},
		{
			name:   "floor division",
			total:  3,
			chunks: []int{1, 1, 1},
			want:   []int{30, 60, 100},
		},
		{
			name:   "every milestone",
			total:  100,
			chunks: []int{1, 10, 10, 10, 10, 10, 10, 10, 10, 10, 9},
			want:   []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		{
			name:   "overshoot clamps to 100 once",
			total:  10,
			chunks: []int{10, 5},
			want:   []int{100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTransfer("unused")
			tr.total = tt.total

			var got []int
			for _, n := range tt.chunks {
				if p, ok := tr.advance(n); ok {
					if p.Total != tt.total {
						t.Errorf("Total = %d, want %d", p.Total, tt.total)
					}
					got = append(got, p.Percent)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("emitted %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("emitted %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTransferAdvance_UnknownTotal(t *testing.T) {
	for _, total := range []int64{-1, 0} {
		tr := newTransfer("unused")
		tr.total = total

		for i, n := range []int{10, 20, 30} {
			p, ok := tr.advance(n)
			if !ok {
				t.Fatalf("chunk %d: no notification for unknown length", i)
			}
			if p.Known() || p.Percent != -1 || p.Total != -1 {
				t.Errorf("chunk %d: notification %+v carries a percentage", i, p)
			}
		}
		if tr.written != 60 {
			t.Errorf("written = %d, want 60", tr.written)
		}
	}
}

func TestNewTransferIsolated(t *testing.T) {
	a := newTransfer("a")
	a.total = 10
	a.advance(10)

	b := newTransfer("b")
	if b.lastPercent != -1 || b.written != 0 || b.depth != 0 {
		t.Errorf("new transfer inherited state: %+v", b)
	}
}
