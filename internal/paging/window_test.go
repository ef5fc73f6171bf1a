package paging_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/menu-catalog-service/internal/paging"
)

func TestComputeWindow_Scenarios(t *testing.T) {
	cases := []struct {
		name                  string
		current, total, group int
		wantStart, wantEnd    int
	}{
		{"first window clamped to total", 1, 3, 10, 1, 3},
		{"second window full", 11, 25, 10, 11, 20},
		{"empty result set", 1, 0, 10, 1, 1},
		{"last page of exact window", 20, 20, 10, 11, 20},
		{"last page of first window", 10, 25, 10, 1, 10},
		{"partial last window", 23, 25, 10, 21, 25},
		{"group of one", 7, 9, 1, 7, 7},
		{"page beyond data", 35, 25, 10, 31, 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := paging.ComputeWindow(tc.current, tc.total, tc.group)
			assert.Equal(t, paging.ButtonInfo{CurrentPage: tc.current, StartPage: tc.wantStart, EndPage: tc.wantEnd}, got)
		})
	}
}

func TestComputeWindow_Properties(t *testing.T) {
	for _, group := range []int{1, 3, 5, 10} {
		for total := 0; total <= 40; total++ {
			for current := 1; current <= 45; current++ {
				w := paging.ComputeWindow(current, total, group)
				require.LessOrEqual(t, w.StartPage, w.EndPage, "current=%d total=%d group=%d", current, total, group)
				require.Equal(t, 0, (w.StartPage-1)%group, "start not aligned: %+v", w)
				if total == 0 {
					require.Equal(t, w.StartPage, w.EndPage)
				}
				if total > 0 && current <= total {
					require.LessOrEqual(t, w.EndPage, total)
					require.GreaterOrEqual(t, current, w.StartPage)
					require.LessOrEqual(t, current, w.EndPage)
				}
			}
		}
	}
}

func TestComputeWindow_AdjacentWindowsAreContiguous(t *testing.T) {
	const group = 10
	left := paging.ComputeWindow(group, 100, group)
	right := paging.ComputeWindow(group+1, 100, group)
	assert.Equal(t, left.EndPage+1, right.StartPage)
	assert.Equal(t, 10, left.EndPage)
	assert.Equal(t, 11, right.StartPage)
}

func TestComputeWindow_ClampsOutOfDomainInputs(t *testing.T) {
	assert.Equal(t, paging.ButtonInfo{CurrentPage: 1, StartPage: 1, EndPage: 1}, paging.ComputeWindow(0, -3, 10))
	assert.Equal(t, paging.ButtonInfo{CurrentPage: 12, StartPage: 11, EndPage: 15}, paging.ComputeWindow(12, 15, 0))
	assert.Equal(t, paging.ButtonInfo{CurrentPage: 1, StartPage: 1, EndPage: 10}, paging.ComputeWindow(-4, 30, -1))
}

func TestComputeWindow_HugePagesDoNotOverflow(t *testing.T) {
	got := paging.ComputeWindow(math.MaxInt, math.MaxInt, 10)
	assert.Equal(t, math.MaxInt-6, got.StartPage)
	assert.Equal(t, math.MaxInt, got.EndPage)

	past := paging.ComputeWindow(math.MaxInt, 3, 10)
	assert.Equal(t, past.StartPage, past.EndPage)
}
