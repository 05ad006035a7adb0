package routing

// RouteInput is one end-user message to answer.
type RouteInput struct {
	Message string
}

// RouteOutput describes a successful routing decision: which pair served
// the request and what came back.
type RouteOutput struct {
	Reply        string
	CredentialID string
	ModelID      string
	// Attempts counts provider calls made, admitted denials excluded.
	Attempts  int
	LatencyMs int64
}
