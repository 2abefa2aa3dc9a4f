package weather

// FallbackGlyph is shown for condition codes missing from the table.
const FallbackGlyph = "☁️"

type Condition struct {
	Description string `json:"description"`
	Glyph       string `json:"glyph"`
}

var conditions = map[string]Condition{
	"01d": {Description: "clear sky", Glyph: "☀️"},
	"01n": {Description: "clear sky", Glyph: "🌙"},
	"02d": {Description: "few clouds", Glyph: "🌤️"},
	"02n": {Description: "few clouds", Glyph: "☁️🌙"},
	"03d": {Description: "scattered clouds", Glyph: "☁️"},
	"03n": {Description: "scattered clouds", Glyph: "☁️🌙"},
	"04d": {Description: "broken clouds", Glyph: "☁️"},
	"04n": {Description: "broken clouds", Glyph: "☁️🌙"},
	"09d": {Description: "shower rain", Glyph: "🌧️"},
	"09n": {Description: "shower rain", Glyph: "🌧️"},
	"10d": {Description: "rain", Glyph: "🌦️"},
	"10n": {Description: "rain", Glyph: "🌧️"},
	"11d": {Description: "thunderstorm", Glyph: "⛈️"},
	"11n": {Description: "thunderstorm", Glyph: "⛈️"},
	"13d": {Description: "snow", Glyph: "❄️"},
	"13n": {Description: "snow", Glyph: "❄️"},
	"50d": {Description: "mist", Glyph: "🌫️"},
	"50n": {Description: "mist", Glyph: "🌫️"},
}

// Describe looks up a provider condition code such as "10n". Unknown codes
// get an empty description and FallbackGlyph.
func Describe(code string) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return Condition{Glyph: FallbackGlyph}
}
