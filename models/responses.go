package models

// ErrorResponse is the JSON body written for every non-2xx response.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure. It never
	// contains internal error text for server-side failures.
	Detail string `json:"detail"`
}

// HealthResponse is the body returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}
