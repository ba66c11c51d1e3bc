package model

import "testing"

func TestFilterArticles(t *testing.T) {
	articles := []Article{
		{ID: "1", Status: StatusCompleted},
		{ID: "2", Status: StatusFailed},
		{ID: "3", Status: StatusResearching},
	}

	ids := func(list []Article) []string {
		var out []string
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"all", FilterAll, []string{"1", "2", "3"}},
		{"completed", FilterCompleted, []string{"1"}},
		{"pending is complement of completed", FilterPending, []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterArticles(articles, tt.filter))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}

	if len(articles) != 3 {
		t.Error("Expected input slice to be left untouched")
	}
}

func TestFilterArticlesEmpty(t *testing.T) {
	got := FilterArticles(nil, FilterCompleted)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		"all":       FilterAll,
		"completed": FilterCompleted,
		"pending":   FilterPending,
		"":          FilterAll,
		"failed":    FilterAll,
	}
	for raw, want := range tests {
		if got := ParseFilter(raw); got != want {
			t.Errorf("ParseFilter(%q) = %s, want %s", raw, got, want)
		}
	}
}
