package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

func TestTrip_StartedBy(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		from time.Time
		want bool
	}{
		{"yesterday", now.AddDate(0, 0, -1), true},
		{"exactly now", now, true},
		{"one second ahead", now.Add(time.Second), false},
		{"tomorrow", now.AddDate(0, 0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Trip{DateFrom: tc.from}.StartedBy(now))
		})
	}
}

func TestCountryNames(t *testing.T) {
	assert.Equal(t,
		[]domain.CountryName{{Name: "Austria"}, {Name: "Poland"}},
		domain.CountryNames([]string{"Austria", "Poland"}))
	assert.Empty(t, domain.CountryNames(nil))
	assert.NotNil(t, domain.CountryNames(nil), "listings render [] rather than null")
}
