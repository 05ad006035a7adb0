package http

import "github.com/elhenawym124-ops/chatai-sub002/internal/usage"

type modelStatsResp struct {
	Model         string `json:"model"`
	TotalRequests int    `json:"totalRequests"`
	SuccessCount  int    `json:"successCount"`
}

type statsResp struct {
	Period        string           `json:"period"`
	TotalRequests int              `json:"totalRequests"`
	SuccessCount  int              `json:"successCount"`
	FailureRate   float64          `json:"failureRate"`
	PerModel      []modelStatsResp `json:"perModel"`
}

func newStatsResp(stats usage.Stats) statsResp {
	resp := statsResp{
		Period:        string(stats.Period),
		TotalRequests: stats.TotalRequests,
		SuccessCount:  stats.SuccessCount,
		FailureRate:   stats.FailureRate,
		PerModel:      make([]modelStatsResp, 0, len(stats.PerModel)),
	}
	for _, ms := range stats.PerModel {
		resp.PerModel = append(resp.PerModel, modelStatsResp{
			Model:         ms.ModelID,
			TotalRequests: ms.TotalRequests,
			SuccessCount:  ms.SuccessCount,
		})
	}
	return resp
}
