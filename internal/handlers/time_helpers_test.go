package handlers

import (
	"testing"
	"time"

	"github.com/oficinahub/workshop-scheduler/internal/models"
	"github.com/oficinahub/workshop-scheduler/internal/timezone"
)

func TestLocationFromWorkshop(t *testing.T) {
	cases := []struct {
		name string
		shop *models.Workshop
		want string
	}{
		{"nil workshop", nil, timezone.DefaultTimezone},
		{"empty timezone", &models.Workshop{}, timezone.DefaultTimezone},
		{"unknown timezone", &models.Workshop{Timezone: "Mars/Olympus"}, timezone.DefaultTimezone},
		{"explicit timezone", &models.Workshop{Timezone: "Europe/Lisbon"}, "Europe/Lisbon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := locationFromWorkshop(tc.shop); got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseDateInWorkshop(t *testing.T) {
	shop := &models.Workshop{Timezone: "America/Sao_Paulo"}

	got, err := parseDateInWorkshop(shop, "2024-01-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 1, 3, 0, 0, 0, 0, locationFromWorkshop(shop))
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want.Format(time.RFC3339), got.Format(time.RFC3339))
	}

	if _, err := parseDateInWorkshop(shop, "03/01/2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}
