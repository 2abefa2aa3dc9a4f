package models

// Outcome is what every fetch returns to presentation code: either Data or
// Error is set, never both.
type Outcome[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

func Succeeded[T any](data T) Outcome[T] {
	return Outcome[T]{Success: true, Data: &data}
}

func Failed[T any](message string) Outcome[T] {
	return Outcome[T]{Success: false, Error: &message}
}

// Message returns the error text of a failed outcome, or "" on success.
func (o Outcome[T]) Message() string {
	if o.Error == nil {
		return ""
	}
	return *o.Error
}

type BatchResult struct {
	Query   LocationQuery           `json:"query"`
	Outcome Outcome[CurrentWeather] `json:"outcome"`
}
