package weather

import (
	"math"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const missing = "-"

// NormalizeCurrent maps a /weather payload onto the flat record. It never
// fails: absent numbers stay nil, absent names become "-".
func NormalizeCurrent(raw CurrentPayload) models.CurrentWeather {
	offset := intOr(raw.Timezone.v, 0)
	cond := firstCondition(raw.Weather)

	return models.CurrentWeather{
		City:        stringOr(raw.Name.v, missing),
		DateTime:    ToLocalTime(epoch(raw.Dt.v), offset),
		Temperature: raw.Main.Temp.v,
		FeelsLike:   raw.Main.FeelsLike.v,
		Description: stringOr(cond.Description.v, missing),
		Icon:        Describe(stringOr(cond.Icon.v, missing)).Glyph,
		Pressure:    toInt(raw.Main.Pressure.v),
		Humidity:    toInt(raw.Main.Humidity.v),
		Visibility:  toInt(raw.Visibility.v),
		WindSpeed:   raw.Wind.Speed.v,
		Sunrise:     ToLocalTime(epoch(raw.Sys.Sunrise.v), offset),
		Sunset:      ToLocalTime(epoch(raw.Sys.Sunset.v), offset),
		Longitude:   raw.Coord.Lon.v,
		Latitude:    raw.Coord.Lat.v,
		Timezone:    offset,
		Country:     stringOr(raw.Sys.Country.v, missing),
	}
}

// NormalizeForecast maps a /forecast payload onto location metadata plus
// one interval per list entry, keeping the provider's order. Sunrise and
// sunset come from the city block and are the same on every interval.
func NormalizeForecast(raw ForecastPayload) models.Forecast {
	offset := intOr(raw.City.Timezone.v, 0)

	location := models.ForecastLocation{
		City:      stringOr(raw.City.Name.v, missing),
		Latitude:  raw.City.Coord.Lat.v,
		Longitude: raw.City.Coord.Lon.v,
		Country:   stringOr(raw.City.Country.v, missing),
		Timezone:  offset,
	}

	sunrise := ToLocalTime(epoch(raw.City.Sunrise.v), offset)
	sunset := ToLocalTime(epoch(raw.City.Sunset.v), offset)

	intervals := make([]models.ForecastInterval, 0, len(raw.List))
	for _, item := range raw.List {
		cond := firstCondition(item.Weather)
		intervals = append(intervals, models.ForecastInterval{
			Date:        ToLocalTime(epoch(item.Dt.v), offset),
			Temperature: item.Main.Temp.v,
			FeelsLike:   item.Main.FeelsLike.v,
			Description: stringOr(cond.Description.v, missing),
			Icon:        Describe(stringOr(cond.Icon.v, missing)).Glyph,
			Pressure:    toInt(item.Main.Pressure.v),
			Humidity:    toInt(item.Main.Humidity.v),
			Visibility:  toInt(item.Visibility.v),
			WindSpeed:   item.Wind.Speed.v,
			Sunrise:     sunrise,
			Sunset:      sunset,
		})
	}

	return models.Forecast{Location: location, Intervals: intervals}
}

func firstCondition(list []conditionPayload) conditionPayload {
	if len(list) == 0 {
		return conditionPayload{}
	}
	return list[0]
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func intOr(f *float64, def int) int {
	if v := toInt(f); v != nil {
		return *v
	}
	return def
}

// toInt rounds f, or returns nil when it has no int value.
func toInt(f *float64) *int {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	r := math.Round(*f)
	if r >= math.MaxInt || r < math.MinInt {
		return nil
	}
	v := int(r)
	return &v
}

func epoch(f *float64) *int64 {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) ||
		*f > math.MaxInt64 || *f < math.MinInt64 {
		return nil
	}
	v := int64(*f)
	return &v
}
