package timezone

import (
	"roomcal/config"
	"roomcal/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var (
	appLocation *time.Location
)

func init() {
	appLocation = load(config.Get().App.Timezone)
}

// load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func load(name string) *time.Location {
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to " + defaultZone + ". Use IANA names like 'Asia/Bangkok'")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// GetLocation returns the application timezone, UTC when unset.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today is the calendar date that gets the today marker, as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.ISODateFormat)
}

// Timestamp stamps events published to the booking topic.
func Timestamp() string {
	return Now().Format(time.RFC3339)
}
