package models

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	ErrNoLocation         = errors.New("no location provided")
	ErrInvalidCoordinates = errors.New("invalid latitude or longitude")
)

const (
	// MsgInvalidCoordinates is shown when typed coordinates are not numbers.
	MsgInvalidCoordinates = "Error: Invalid latitude or longitude."
	MsgNoLocation         = "No location provided. Please enter a city or latitude & longitude."
)

type QueryKind int

const (
	QueryNone QueryKind = iota
	QueryCity
	QueryCoordinates
)

// Coordinates are pointers so a key missing from a request body stays nil
// instead of decoding to 0.
type Coordinates struct {
	Latitude  *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// LocationQuery selects a place either by city name or by coordinates.
// A non-blank City takes precedence over Coordinates.
type LocationQuery struct {
	City        string       `json:"city,omitempty"`
	Coordinates *Coordinates `json:"coord,omitempty"`
}

func CityQuery(city string) LocationQuery {
	return LocationQuery{City: city}
}

func CoordinatesQuery(lat, lon float64) LocationQuery {
	return LocationQuery{Coordinates: &Coordinates{Latitude: &lat, Longitude: &lon}}
}

// Kind reports which variant of the query is active. Coordinates that are
// missing either value, out of range or not finite do not count.
func (q LocationQuery) Kind() QueryKind {
	if strings.TrimSpace(q.City) != "" {
		return QueryCity
	}
	if q.Coordinates == nil {
		return QueryNone
	}
	c := q.Coordinates
	if c.Latitude == nil || c.Longitude == nil {
		return QueryNone
	}
	lat, lon := *c.Latitude, *c.Longitude
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return QueryNone
	}
	if err := validate.Struct(c); err != nil {
		return QueryNone
	}
	return QueryCoordinates
}

func (q LocationQuery) Validate() error {
	if q.Kind() == QueryNone {
		return ErrNoLocation
	}
	return nil
}

// String renders the query for logs and metric labels.
func (q LocationQuery) String() string {
	switch q.Kind() {
	case QueryCity:
		return strings.TrimSpace(q.City)
	case QueryCoordinates:
		return strconv.FormatFloat(*q.Coordinates.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(*q.Coordinates.Longitude, 'f', -1, 64)
	default:
		return "-"
	}
}

// ParseLocation builds a query from form or prompt input. A non-blank city
// wins; otherwise both coordinates must parse as numbers. Blank input yields
// an empty query, which the fetch layer reports as no location.
func ParseLocation(city, lat, lon string) (LocationQuery, error) {
	if city = strings.TrimSpace(city); city != "" {
		return CityQuery(city), nil
	}

	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" && lon == "" {
		return LocationQuery{}, nil
	}

	latV, errLat := strconv.ParseFloat(lat, 64)
	lonV, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		return LocationQuery{}, ErrInvalidCoordinates
	}
	return CoordinatesQuery(latV, lonV), nil
}
