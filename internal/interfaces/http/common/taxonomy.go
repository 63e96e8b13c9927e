package common

import (
	"errors"
	"strings"
)

// SuggestedIndustries seeds the creation form's tag picker. Free-text tags
// beyond this list are accepted; the list only provides starting choices.
var SuggestedIndustries = []string{
	"AI",
	"Fintech",
	"Biotech",
	"Mobility",
	"SaaS",
	"Hardware",
	"E-commerce",
}

// NormalizeIndustryList trims and de-duplicates industry tags, preserving
// the caller's order. At least one tag must remain.
func NormalizeIndustryList(values []string) ([]string, error) {
	seen := make(map[string]struct{})
	result := make([]string, 0, len(values))
	for _, raw := range values {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	if len(result) == 0 {
		return nil, errors.New("at least one industry is required")
	}
	return result, nil
}
