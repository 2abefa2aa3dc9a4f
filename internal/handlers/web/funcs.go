package web

import (
	"html/template"
	"strconv"
	"time"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const (
	missing     = "-"
	recordTime  = "2006-01-02 03:04 PM"
	longDateFmt = "Monday, 02 Jan 2006 03:04 PM"
	clockFmt    = "03:04 PM"
)

var funcs = template.FuncMap{
	"text":     text,
	"int":      intText,
	"float":    floatText,
	"round":    roundText,
	"clock":    clock,
	"longDate": longDate,
	"head":     head,
}

func text(s *string) string {
	if s == nil {
		return missing
	}
	return *s
}

func intText(v *int) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

func floatText(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func roundText(v *float64) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

func clock(s *string) string {
	return reformat(s, clockFmt)
}

func longDate(s *string) string {
	return reformat(s, longDateFmt)
}

// reformat re-renders a record timestamp. Anything unparsable is shown as is.
func reformat(s *string, layout string) string {
	if s == nil {
		return missing
	}
	t, err := time.Parse(recordTime, *s)
	if err != nil {
		return *s
	}
	return t.Format(layout)
}

func head(items []models.ForecastInterval, n int) []models.ForecastInterval {
	if len(items) < n {
		return items
	}
	return items[:n]
}
