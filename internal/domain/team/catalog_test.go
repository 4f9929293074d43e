package team

import "testing"

func TestNewCatalog_DeduplicatesByID(t *testing.T) {
	t.Parallel()

	out := NewCatalog([]Team{
		{ID: 1610612747, Name: "Los Angeles Lakers"},
		{ID: 1610612738, Name: "Boston Celtics"},
		{ID: 1610612747, Name: "LA Lakers (duplicate)"},
	})

	if len(out) != 2 {
		t.Fatalf("unexpected catalog size: got=%d want=2", len(out))
	}
	seen := make(map[int64]int)
	for _, item := range out {
		seen[item.ID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("team id %d appears %d times", id, count)
		}
	}
	if out[1].Name != "Los Angeles Lakers" {
		t.Fatalf("first occurrence should win dedup, got %q", out[1].Name)
	}
}

func TestNewCatalog_SortsByName(t *testing.T) {
	t.Parallel()

	out := NewCatalog([]Team{
		{ID: 3, Name: "Utah Jazz"},
		{ID: 1, Name: "Atlanta Hawks"},
		{ID: 2, Name: "Chicago Bulls"},
	})

	want := []string{"Atlanta Hawks", "Chicago Bulls", "Utah Jazz"}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("unexpected order at %d: got=%q want=%q", i, out[i].Name, name)
		}
	}
}

func TestNewCatalog_SkipsInvalidEntries(t *testing.T) {
	t.Parallel()

	out := NewCatalog([]Team{
		{ID: 0, Name: "No ID"},
		{ID: 5, Name: ""},
		{ID: 7, Name: "Valid Team"},
	})

	if len(out) != 1 || out[0].ID != 7 {
		t.Fatalf("expected only the valid entry, got %+v", out)
	}
}
