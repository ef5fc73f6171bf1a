// Package paging holds the pure page math shared by the list endpoints:
// turning a 1-based UI page into a store query and working out which
// page buttons a paging widget shows.
package paging

// DefaultGroupSize is the number of page buttons shown per window.
const DefaultGroupSize = 10

// ButtonInfo describes the run of page buttons a paging widget renders.
// All numbers are 1-based.
type ButtonInfo struct {
	CurrentPage int `json:"current_page"`
	StartPage   int `json:"start_page"`
	EndPage     int `json:"end_page"`
}

// ComputeWindow returns the button window containing currentPage.
//
// Windows are groupSize wide and aligned at k*groupSize+1, so with a group of
// 10 page 1 yields 1..10 and page 11 yields 11..20. The end of the window is
// clamped to totalPages. When the clamp would put the end before the start
// (an empty result set, or a page past the last one) the window collapses to
// a single button at StartPage.
//
// Inputs outside the documented domain are clamped: currentPage < 1 is read
// as 1, totalPages < 0 as 0 and groupSize < 1 as DefaultGroupSize.
func ComputeWindow(currentPage, totalPages, groupSize int) ButtonInfo {
	if currentPage < 1 {
		currentPage = 1
	}
	if totalPages < 0 {
		totalPages = 0
	}
	if groupSize < 1 {
		groupSize = DefaultGroupSize
	}

	// ceil(currentPage/groupSize) - 1 without going through floats
	windowIndex := (currentPage - 1) / groupSize
	start := windowIndex*groupSize + 1
	// min(start+groupSize-1, totalPages), written so the sum cannot overflow
	end := totalPages
	if start <= totalPages-groupSize+1 {
		end = start + groupSize - 1
	}
	if end < start {
		end = start
	}

	return ButtonInfo{CurrentPage: currentPage, StartPage: start, EndPage: end}
}
