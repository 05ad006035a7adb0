package http

import "github.com/elhenawym124-ops/chatai-sub002/internal/routing"

// --- Request DTOs ---

type respondReq struct {
	CompanyID string `json:"-"`
	Message   string `json:"message" binding:"required,max=8000"`
}

func (r respondReq) toInput() routing.RouteInput {
	return routing.RouteInput{Message: r.Message}
}

// --- Response DTOs ---

type respondResp struct {
	Reply     string `json:"reply"`
	Model     string `json:"model"`
	Attempts  int    `json:"attempts"`
	LatencyMs int64  `json:"latencyMs"`
}

func newRespondResp(out routing.RouteOutput) respondResp {
	return respondResp{
		Reply:     out.Reply,
		Model:     out.ModelID,
		Attempts:  out.Attempts,
		LatencyMs: out.LatencyMs,
	}
}

type testResp struct {
	OK       bool   `json:"ok"`
	Model    string `json:"model,omitempty"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
