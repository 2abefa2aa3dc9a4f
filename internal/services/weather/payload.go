package weather

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// optFloat and optString hold one provider leaf. A missing, null or
// wrongly typed value leaves them empty instead of failing the decode.
type optFloat struct{ v *float64 }

func (o *optFloat) UnmarshalJSON(data []byte) error {
	var f float64
	if isNull(data) || json.Unmarshal(data, &f) != nil {
		return nil
	}
	o.v = &f
	return nil
}

type optString struct{ v *string }

func (o *optString) UnmarshalJSON(data []byte) error {
	var s string
	if isNull(data) || json.Unmarshal(data, &s) != nil {
		return nil
	}
	o.v = &s
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

type conditionPayload struct {
	Description optString `json:"description"`
	Icon        optString `json:"icon"`
}

type mainPayload struct {
	Temp      optFloat `json:"temp"`
	FeelsLike optFloat `json:"feels_like"`
	Pressure  optFloat `json:"pressure"`
	Humidity  optFloat `json:"humidity"`
}

type windPayload struct {
	Speed optFloat `json:"speed"`
}

type coordPayload struct {
	Lat optFloat `json:"lat"`
	Lon optFloat `json:"lon"`
}

// CurrentPayload mirrors the /weather response.
type CurrentPayload struct {
	Name       optString          `json:"name"`
	Dt         optFloat           `json:"dt"`
	Timezone   optFloat           `json:"timezone"`
	Visibility optFloat           `json:"visibility"`
	Main       mainPayload        `json:"main"`
	Weather    []conditionPayload `json:"weather"`
	Wind       windPayload        `json:"wind"`
	Coord      coordPayload       `json:"coord"`
	Sys        struct {
		Country optString `json:"country"`
		Sunrise optFloat  `json:"sunrise"`
		Sunset  optFloat  `json:"sunset"`
	} `json:"sys"`
}

type forecastEntryPayload struct {
	Dt         optFloat           `json:"dt"`
	Visibility optFloat           `json:"visibility"`
	Main       mainPayload        `json:"main"`
	Weather    []conditionPayload `json:"weather"`
	Wind       windPayload        `json:"wind"`
}

// ForecastPayload mirrors the /forecast response.
type ForecastPayload struct {
	City struct {
		Name     optString    `json:"name"`
		Country  optString    `json:"country"`
		Timezone optFloat     `json:"timezone"`
		Sunrise  optFloat     `json:"sunrise"`
		Sunset   optFloat     `json:"sunset"`
		Coord    coordPayload `json:"coord"`
	} `json:"city"`
	List []forecastEntryPayload `json:"list"`
}

// decodePayload reads one JSON document into v. A block of the wrong shape,
// e.g. "main" sent as a string, is skipped; only malformed JSON is an error.
func decodePayload(r io.Reader, v any) error {
	err := json.NewDecoder(r).Decode(v)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return err
	}
	return nil
}
