package http

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/gemini"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	CompanyID   string `json:"-"`
	Name        string `json:"name"   binding:"required,max=120"`
	APIKey      string `json:"apiKey" binding:"required"`
	Description string `json:"description" binding:"max=500"`
}

func (r createReq) toInput() credential.CreateInput {
	return credential.CreateInput{
		CompanyID:   r.CompanyID,
		DisplayName: r.Name,
		Secret:      r.APIKey,
		Description: r.Description,
	}
}

type setModelReq struct {
	Model string `json:"model" binding:"required"`
}

// --- Response DTOs ---

type credentialResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	APIKey      string `json:"apiKey"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
	Priority    int    `json:"priority"`
	CreatedAt   string `json:"createdAt"`
}

func newCredentialResp(c credential.Credential) credentialResp {
	return credentialResp{
		ID:          c.ID,
		Name:        c.DisplayName,
		APIKey:      c.MaskedSecret(),
		Description: c.Description,
		Enabled:     c.Enabled,
		Priority:    c.Priority,
		CreatedAt:   c.CreatedAt.Format(response.DateTimeFormat),
	}
}

type createResp struct {
	Credential    credentialResp `json:"credential"`
	ModelsCreated int            `json:"modelsCreated"`
}

type modelResp struct {
	Model               string `json:"model"`
	Enabled             bool   `json:"enabled"`
	Priority            int    `json:"priority"`
	QuotaLimit          int    `json:"quotaLimit"`
	QuotaUsed           int    `json:"quotaUsed"`
	WindowResetAt       string `json:"windowResetAt"`
	LastUsedAt          string `json:"lastUsedAt,omitempty"`
	ConsecutiveFailures int    `json:"consecutiveFailures"`
}

func newModelResp(m credential.Model) modelResp {
	resp := modelResp{
		Model:               m.ModelID,
		Enabled:             m.Enabled,
		Priority:            m.Priority,
		QuotaLimit:          m.QuotaLimit,
		QuotaUsed:           m.QuotaUsed,
		WindowResetAt:       m.WindowResetAt.Format(response.DateTimeFormat),
		ConsecutiveFailures: m.ConsecutiveFailures,
	}
	if !m.LastUsedAt.IsZero() {
		resp.LastUsedAt = m.LastUsedAt.Format(response.DateTimeFormat)
	}
	return resp
}

type listItemResp struct {
	credentialResp
	Models []modelResp `json:"models"`
}

func newListResp(items []credential.WithModels) []listItemResp {
	out := make([]listItemResp, 0, len(items))
	for _, item := range items {
		resp := listItemResp{credentialResp: newCredentialResp(item.Credential)}
		for _, m := range item.Models {
			resp.Models = append(resp.Models, newModelResp(m))
		}
		out = append(out, resp)
	}
	return out
}

type availableModelsResp struct {
	Models         []string        `json:"models"`
	ModelsDetailed []modelInfoResp `json:"modelsDetailed"`
}

type modelInfoResp struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Description  string `json:"description"`
	DefaultQuota int    `json:"defaultQuota"`
}

func newAvailableModelsResp(infos []gemini.ModelInfo) availableModelsResp {
	resp := availableModelsResp{Models: make([]string, 0, len(infos))}
	for _, info := range infos {
		resp.Models = append(resp.Models, info.ID)
		resp.ModelsDetailed = append(resp.ModelsDetailed, modelInfoResp{
			ID:           info.ID,
			DisplayName:  info.DisplayName,
			Description:  info.Description,
			DefaultQuota: info.DefaultQuota,
		})
	}
	return resp
}
