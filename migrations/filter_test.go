package migrations

import (
	"reflect"
	"testing"
)

func names(countries []SourceCountry) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

func TestAllowListFilter(t *testing.T) {
	countries := []SourceCountry{
		{ID: 1, Name: "India"},
		{ID: 2, Name: "Brazil"},
		{ID: 3, Name: "Korea South"},
		{ID: 4, Name: "NEPAL"},
		{ID: 5, Name: "India"},
		{ID: 6, Name: "Netherlands The"},
	}

	tests := []struct {
		name  string
		allow []string
		want  []string
	}{
		{"default style entries", []string{"india", "nepal", "korea south"}, []string{"India", "Korea South", "NEPAL", "India"}},
		{"order follows source", []string{"netherlands the", "india"}, []string{"India", "India", "Netherlands The"}},
		{"entries are folded too", []string{" Brazil "}, []string{"Brazil"}},
		{"no partial matches", []string{"ind", "korea"}, []string{}},
		{"empty list", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(NewAllowList(tt.allow).Filter(countries))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllowListUnicodeFolding(t *testing.T) {
	allow := NewAllowList([]string{"åland islands", "curaçao"})
	if !allow.Contains("Åland Islands") {
		t.Error("expected Åland Islands to match")
	}
	if !allow.Contains("CURAÇAO") {
		t.Error("expected CURAÇAO to match")
	}
}

func TestAllowListUnmatched(t *testing.T) {
	allow := NewAllowList([]string{"india", "atlantis", "India", "nepal", "lemuria"})
	if allow.Len() != 4 {
		t.Errorf("Len = %d, want 4", allow.Len())
	}

	got := allow.Unmatched([]SourceCountry{{Name: "India"}, {Name: "Nepal"}})
	want := []string{"atlantis", "lemuria"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unmatched = %q, want %q", got, want)
	}
}
