package flows

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchLibrary Phase = iota
	ValidateFeeds
)

func (p Phase) String() string {
	switch p {
	case FetchLibrary:
		return "fetch_library"
	case ValidateFeeds:
		return "validate_feeds"
	default:
		return ""
	}
}

func fetchLibraryUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchLibrary,
		Step:    step,
		Total:   total,
		Message: "Fetching podcast library...",
	}
}

func validatingFeedUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ValidateFeeds,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Validating: %s...", step, total, title),
	}
}

func feedVerdictUpdate(step, total int, title string, healthy bool) ProgressUpdate {
	mark := "✓"
	if !healthy {
		mark = "✗"
	}
	return ProgressUpdate{
		Phase:   ValidateFeeds,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s", step, total, mark, title),
	}
}
