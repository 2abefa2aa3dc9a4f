package weather

type ErrorResponse struct {
	Error string `json:"error"`
}
