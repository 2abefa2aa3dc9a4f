package models

// CurrentWeather is the normalized current-conditions record. Pointer fields
// are nil when the provider omitted them.
type CurrentWeather struct {
	City        string   `json:"city"`
	DateTime    *string  `json:"date_time"`
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feels_like"`
	Description string   `json:"weather_description"`
	Icon        string   `json:"weather_icon"`
	Pressure    *int     `json:"pressure"`
	Humidity    *int     `json:"humidity"`
	Visibility  *int     `json:"visibility"`
	WindSpeed   *float64 `json:"wind_speed"`
	Sunrise     *string  `json:"sunrise"`
	Sunset      *string  `json:"sunset"`
	Longitude   *float64 `json:"long"`
	Latitude    *float64 `json:"lat"`
	Timezone    int      `json:"timezone"`
	Country     string   `json:"country"`
}

type ForecastLocation struct {
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
	Timezone  int      `json:"timezone"`
}

// ForecastInterval is one 3-hour step. Sunrise and Sunset repeat the
// location's daily values on every interval of a response.
type ForecastInterval struct {
	Date        *string  `json:"date"`
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feels_like"`
	Description string   `json:"weather_description"`
	Icon        string   `json:"weather_icon"`
	Pressure    *int     `json:"pressure"`
	Humidity    *int     `json:"humidity"`
	Visibility  *int     `json:"visibility"`
	WindSpeed   *float64 `json:"wind_speed"`
	Sunrise     *string  `json:"sunrise"`
	Sunset      *string  `json:"sunset"`
}

type Forecast struct {
	Location  ForecastLocation   `json:"city"`
	Intervals []ForecastInterval `json:"forecast"`
}
