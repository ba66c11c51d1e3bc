package model

// Filter selects which gallery cards are shown
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Filters lists the gallery tabs in display order
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending}

// ParseFilter falls back to FilterAll for anything unrecognized
func ParseFilter(raw string) Filter {
	switch Filter(raw) {
	case FilterCompleted:
		return FilterCompleted
	case FilterPending:
		return FilterPending
	default:
		return FilterAll
	}
}

// Match reports whether an article with status s is shown under f
func (f Filter) Match(s Status) bool {
	switch f {
	case FilterCompleted:
		return s == StatusCompleted
	case FilterPending:
		return s != StatusCompleted
	default:
		return true
	}
}

// FilterArticles returns the subset of articles shown under f, preserving order
func FilterArticles(articles []Article, f Filter) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if f.Match(a.Status) {
			out = append(out, a)
		}
	}
	return out
}
