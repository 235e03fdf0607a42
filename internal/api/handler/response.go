package handler

// errorResponse is the JSON body returned on handler-level failures.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}
