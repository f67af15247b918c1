package migrations

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllowList selects countries by lowercased name.
type AllowList struct {
	names map[string]struct{}
	order []string
}

func NewAllowList(names []string) AllowList {
	list := AllowList{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		key := foldName(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := list.names[key]; ok {
			continue
		}
		list.names[key] = struct{}{}
		list.order = append(list.order, key)
	}
	return list
}

func foldName(name string) string {
	return cases.Lower(language.Und).String(name)
}

func (a AllowList) Len() int {
	return len(a.order)
}

func (a AllowList) Contains(name string) bool {
	_, ok := a.names[foldName(name)]
	return ok
}

// Filter keeps allow-listed countries in source order.
func (a AllowList) Filter(countries []SourceCountry) []SourceCountry {
	kept := make([]SourceCountry, 0, len(a.order))
	for _, country := range countries {
		if a.Contains(country.Name) {
			kept = append(kept, country)
		}
	}
	return kept
}

// Unmatched returns the allow-list entries no country in the dataset matched.
func (a AllowList) Unmatched(countries []SourceCountry) []string {
	seen := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		seen[foldName(country.Name)] = struct{}{}
	}

	var missing []string
	for _, name := range a.order {
		if _, ok := seen[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
