package handlers

import (
	"time"

	"github.com/oficinahub/workshop-scheduler/internal/models"
	"github.com/oficinahub/workshop-scheduler/internal/timezone"
)

// --------------------------------------------------
// Workshop-local time resolution
// --------------------------------------------------

func locationFromWorkshop(shop *models.Workshop) *time.Location {
	if shop == nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return timezone.Location(shop.Timezone)
}

func nowInWorkshop(shop *models.Workshop) time.Time {
	return time.Now().In(locationFromWorkshop(shop))
}

func parseDateInWorkshop(shop *models.Workshop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromWorkshop(shop),
	)
}
