package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const (
	banner = `Welcome to "One Weather"`

	modePrompt     = "> Enter 'current' to see real_time_weather, 'forecast' to see 5 days forecast or 'batch' for several cities (Enter 'q' to exit) : "
	locationPrompt = "> Enter City name OR type 'coord' for latitude & longitude : "
	lonPrompt      = "> Enter longitude: "
	latPrompt      = "> Enter latitude: "
	citiesPrompt   = "> Enter city names separated by commas: "
	invalidMode    = "Enter valid response. Try again"

	missing = "-"
)

var errInputClosed = errors.New("input closed")

type weatherService interface {
	Current(ctx context.Context, q models.LocationQuery) models.Outcome[models.CurrentWeather]
	Forecast(ctx context.Context, q models.LocationQuery) models.Outcome[models.Forecast]
	CurrentMany(ctx context.Context, queries []models.LocationQuery) []models.BatchResult
}

// Console is the interactive text front end.
type Console struct {
	service weatherService
	in      *bufio.Scanner
	out     io.Writer
	logger  zerolog.Logger
}

func New(svc weatherService, in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		service: svc,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.With().Str("component", "Console").Logger(),
	}
}

// Run prompts until the user quits, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.println(banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		mode, ok := c.ask(modePrompt)
		if !ok {
			return c.in.Err()
		}

		switch strings.TrimSpace(mode) {
		case "current":
			c.current(ctx)
		case "forecast":
			c.forecast(ctx)
		case "batch":
			c.batch(ctx)
		case "q":
			c.logger.Debug().Msg("console closed by user")
			return nil
		default:
			c.println(invalidMode)
		}
	}
}

func (c *Console) current(ctx context.Context) {
	q, ok := c.location()
	if !ok {
		return
	}

	out := c.service.Current(ctx, q)
	if !out.Success {
		c.println(out.Message())
		return
	}
	c.printCurrent(*out.Data)
}

func (c *Console) forecast(ctx context.Context) {
	q, ok := c.location()
	if !ok {
		return
	}

	out := c.service.Forecast(ctx, q)
	if !out.Success {
		c.println(out.Message())
		return
	}
	c.printForecast(*out.Data)
}

func (c *Console) batch(ctx context.Context) {
	line, ok := c.ask(citiesPrompt)
	if !ok {
		return
	}

	var queries []models.LocationQuery
	for _, city := range strings.Split(line, ",") {
		if city = strings.TrimSpace(city); city != "" {
			queries = append(queries, models.CityQuery(city))
		}
	}
	if len(queries) == 0 {
		c.println(models.MsgNoLocation)
		return
	}

	for _, r := range c.service.CurrentMany(ctx, queries) {
		c.println("== " + r.Query.String())
		if !r.Outcome.Success {
			c.println(r.Outcome.Message())
			continue
		}
		c.printCurrent(*r.Outcome.Data)
	}
}

// askLocation reads a city, or longitude then latitude after "coord".
func (c *Console) askLocation() (models.LocationQuery, error) {
	location, ok := c.ask(locationPrompt)
	if !ok {
		return models.LocationQuery{}, errInputClosed
	}
	location = strings.TrimSpace(location)

	if !strings.EqualFold(location, "coord") {
		return models.CityQuery(location), nil
	}

	lon, okLon := c.ask(lonPrompt)
	lat, okLat := c.ask(latPrompt)
	if !okLon || !okLat {
		return models.LocationQuery{}, errInputClosed
	}

	lonV, errLon := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	latV, errLat := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if errLon != nil || errLat != nil {
		return models.LocationQuery{}, models.ErrInvalidCoordinates
	}
	return models.CoordinatesQuery(latV, lonV), nil
}

func (c *Console) location() (models.LocationQuery, bool) {
	q, err := c.askLocation()
	switch {
	case errors.Is(err, errInputClosed):
		return q, false
	case err != nil:
		c.println(models.MsgInvalidCoordinates)
		return q, false
	}
	return q, true
}

func (c *Console) ask(prompt string) (string, bool) {
	_, _ = fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) printCurrent(w models.CurrentWeather) {
	rows := [][2]string{
		{"city", w.City},
		{"date_time", str(w.DateTime)},
		{"temperature", float(w.Temperature)},
		{"feels_like", float(w.FeelsLike)},
		{"weather_description", w.Description},
		{"weather_icon", w.Icon},
		{"pressure", integer(w.Pressure)},
		{"humidity", integer(w.Humidity)},
		{"visibility", integer(w.Visibility)},
		{"wind_speed", float(w.WindSpeed)},
		{"sunrise", str(w.Sunrise)},
		{"sunset", str(w.Sunset)},
		{"long", float(w.Longitude)},
		{"lat", float(w.Latitude)},
		{"timezone", strconv.Itoa(w.Timezone)},
		{"country", w.Country},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(c.out, "\t\t%s: %s\n", r[0], r[1])
	}
}

func (c *Console) printForecast(f models.Forecast) {
	loc := f.Location
	_, _ = fmt.Fprintf(c.out, "%s, %s (lat %s, lon %s, timezone %d)\n",
		loc.City, loc.Country, float(loc.Latitude), float(loc.Longitude), loc.Timezone)

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "date\ttemperature\tfeels_like\tweather_description\tweather_icon\t"+
		"pressure\thumidity\tvisibility\twind_speed\tsunrise\tsunset")
	for _, in := range f.Intervals {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			str(in.Date), float(in.Temperature), float(in.FeelsLike), in.Description, in.Icon,
			integer(in.Pressure), integer(in.Humidity), integer(in.Visibility), float(in.WindSpeed),
			str(in.Sunrise), str(in.Sunset))
	}
	if err := tw.Flush(); err != nil {
		c.logger.Error().Err(err).Msg("failed to write forecast table")
	}
}

func str(s *string) string {
	if s == nil {
		return missing
	}
	return *s
}

func integer(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

func float(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
