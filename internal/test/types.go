package test

// RouteRequest is the body for the route preview endpoint.
type RouteRequest struct {
	Text string `json:"text"`
}

// RouteResponse shows how a turn would be routed.
type RouteResponse struct {
	Text            string `json:"text"`
	Intent          string `json:"intent,omitempty"`
	Reply           string `json:"reply,omitempty"`
	Delegated       bool   `json:"delegated"`
	Question        string `json:"question,omitempty"`
	BrainConfigured bool   `json:"brain_configured"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
