// Package domain defines the core domain models for the escalate router.
package domain

// Route represents the dispatch path chosen for a prompt.
type Route string

const (
	// RouteFront sends the prompt to the small/fast model.
	RouteFront Route = "front"
	// RouteBack sends the prompt to the large/capable model.
	RouteBack Route = "back"
	// RouteSearch augments the prompt with web-search results and sends it
	// to the large model.
	RouteSearch Route = "search"
)

// EventType represents the type of a dispatch event.
type EventType string

const (
	EventTypeDispatchStarted EventType = "dispatch_started"
	EventTypeSearchDone      EventType = "search_done"
	EventTypeDispatchDone    EventType = "dispatch_done"
)

// DispatchStartedPayload is the payload for a dispatch_started event.
type DispatchStartedPayload struct {
	Route  Route  `json:"route"`
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

// SearchDonePayload is the payload for a search_done event.
type SearchDonePayload struct {
	ResultCount int    `json:"result_count"`
	Degraded    bool   `json:"degraded"`
	LatencyMs   int64  `json:"latency_ms"`
	Reason      string `json:"reason,omitempty"`
}

// DispatchDonePayload is the payload for a dispatch_done event.
type DispatchDonePayload struct {
	Route            Route  `json:"route"`
	Model            string `json:"model"`
	LatencyMs        int64  `json:"latency_ms"`
	Degraded         bool   `json:"degraded"`
	Reason           string `json:"reason,omitempty"`
	PromptTokens     int    `json:"prompt_tokens,omitempty"`
	CompletionTokens int    `json:"completion_tokens,omitempty"`
}
