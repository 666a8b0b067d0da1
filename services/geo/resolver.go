package geo

import (
	"context"
	"fmt"
	"strings"

	"stayhub/gds"
	"stayhub/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a destination cannot be resolved to
// provider country and city codes.
var ErrNotFound = fmt.Errorf("destination not found")

// Resolver turns a free-text destination into provider geo codes.
type Resolver interface {
	Resolve(ctx context.Context, destination string) (models.GeoCode, error)
}

// DefaultResolver implements Resolver against the provider's country and
// city lists. Results are resolved fresh per search; codes for one
// destination are never reused for another.
type DefaultResolver struct {
	GDS    *gds.Client
	Logger *zap.Logger
}

// Resolve splits the destination on its first comma ("City, Country") and
// fuzzy-matches each fragment against the provider lists. Without a comma
// the whole string is used for both lookups. Matching is a case-insensitive
// substring test in either direction; ties resolve by list order, which
// follows the provider's own (ambiguous) ordering.
func (r *DefaultResolver) Resolve(ctx context.Context, destination string) (models.GeoCode, error) {
	cityFragment, countryFragment := splitDestination(destination)

	countries, err := r.GDS.CountryList(ctx)
	if err != nil {
		return models.GeoCode{}, fmt.Errorf("failed to fetch country list: %w", err)
	}

	var countryCode string
	for _, c := range countries.CountryList {
		if fuzzyMatch(c.Name, countryFragment) {
			countryCode = c.Code
			r.Logger.Debug("country resolved",
				zap.String("fragment", countryFragment),
				zap.String("name", c.Name),
				zap.String("code", c.Code))
			break
		}
	}
	if countryCode == "" {
		return models.GeoCode{}, fmt.Errorf("country %q: %w", countryFragment, ErrNotFound)
	}

	cities, err := r.GDS.CityList(ctx, countryCode)
	if err != nil {
		return models.GeoCode{}, fmt.Errorf("failed to fetch city list for %s: %w", countryCode, err)
	}

	for _, c := range cities.CityList {
		if fuzzyMatch(c.CityName, cityFragment) {
			r.Logger.Debug("city resolved",
				zap.String("fragment", cityFragment),
				zap.String("name", c.CityName),
				zap.String("code", c.CityCode))
			return models.GeoCode{CountryCode: countryCode, CityCode: c.CityCode}, nil
		}
	}
	return models.GeoCode{}, fmt.Errorf("city %q: %w", cityFragment, ErrNotFound)
}

// splitDestination separates "City, Country" on the first comma. Without a
// comma the same token serves both lookups.
func splitDestination(destination string) (city, country string) {
	head, tail, found := strings.Cut(destination, ",")
	city = strings.TrimSpace(head)
	if !found {
		return city, city
	}
	return city, strings.TrimSpace(tail)
}

// fuzzyMatch is a bidirectional case-insensitive substring test.
func fuzzyMatch(name, fragment string) bool {
	if name == "" || fragment == "" {
		return false
	}
	n := strings.ToLower(name)
	f := strings.ToLower(fragment)
	return strings.Contains(n, f) || strings.Contains(f, n)
}
