package weather

import "time"

const localTimeLayout = "2006-01-02 03:04 PM"

// ToLocalTime formats a UTC epoch in the zone given by utcOffset seconds.
// It returns nil for a nil epoch or when the result is not a four-digit year.
func ToLocalTime(epoch *int64, utcOffset int) *string {
	if epoch == nil {
		return nil
	}

	local := time.Unix(*epoch, 0).In(time.FixedZone("", utcOffset))
	if local.Year() < 1 || local.Year() > 9999 {
		return nil
	}

	s := local.Format(localTimeLayout)
	return &s
}
