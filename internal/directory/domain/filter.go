package domain

import (
	"sort"
	"strings"
)

// SearchFilters expresses the composite search criteria for startups.
type SearchFilters struct {
	Query        string
	Industries   []string
	HasOpenRoles bool
}

// Empty reports whether the filters are the identity filter.
func (f SearchFilters) Empty() bool {
	return strings.TrimSpace(f.Query) == "" && len(f.Industries) == 0 && !f.HasOpenRoles
}

// Matches applies the three filter tests to a single startup: query as a
// case-insensitive substring of name or description, at least one shared
// industry tag, and hiring status. All three must pass.
func (f SearchFilters) Matches(s Startup) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" {
		name := strings.ToLower(s.Name)
		description := strings.ToLower(s.Description)
		if !strings.Contains(name, query) && !strings.Contains(description, query) {
			return false
		}
	}

	if len(f.Industries) > 0 && !intersects(s.Industry, f.Industries) {
		return false
	}

	if f.HasOpenRoles && !s.Hiring() {
		return false
	}

	return true
}

// FilterStartups returns the subset of startups matching the filters,
// preserving the original relative order. It is a filter, not a ranking
// function, and is idempotent for a fixed set of filters.
func FilterStartups(startups []Startup, filters SearchFilters) []Startup {
	result := make([]Startup, 0, len(startups))
	for _, s := range startups {
		if filters.Matches(s) {
			result = append(result, s)
		}
	}
	return result
}

// CollectIndustries returns the lexicographically sorted union of every
// industry tag across the given startups, without duplicates.
func CollectIndustries(startups []Startup) []string {
	seen := make(map[string]struct{})
	industries := make([]string, 0)
	for _, s := range startups {
		for _, tag := range s.Industry {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			industries = append(industries, tag)
		}
	}
	sort.Strings(industries)
	return industries
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
