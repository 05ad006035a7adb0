package http

import (
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
)

// --- Request DTOs ---

type updatePromptsReq struct {
	CompanyID         string `json:"-"`
	PersonalityPrompt string `json:"personalityPrompt" binding:"max=10000"`
	ResponsePrompt    string `json:"responsePrompt"    binding:"max=10000"`
}

func (r updatePromptsReq) toInput() prompt.UpdatePromptsInput {
	return prompt.UpdatePromptsInput{
		CompanyID:         r.CompanyID,
		PersonalityPrompt: r.PersonalityPrompt,
		ResponsePrompt:    r.ResponsePrompt,
	}
}

type settingsReq struct {
	CompanyID            string `json:"-"`
	PromptPriority       string `json:"promptPriority"     binding:"required"`
	PatternsPriority     string `json:"patternsPriority"   binding:"required"`
	ConflictResolution   string `json:"conflictResolution" binding:"required"`
	EnforcePersonality   bool   `json:"enforcePersonality"`
	EnforceLanguageStyle bool   `json:"enforceLanguageStyle"`
	AutoDetectConflicts  bool   `json:"autoDetectConflicts"`
	ConflictReports      bool   `json:"conflictReports"`
}

func (r settingsReq) toInput() prompt.UpdateSettingsInput {
	return prompt.UpdateSettingsInput{
		Settings: prompt.PrioritySettings{
			CompanyID:            r.CompanyID,
			PromptPriority:       prompt.Priority(r.PromptPriority),
			PatternsPriority:     prompt.Priority(r.PatternsPriority),
			ConflictResolution:   prompt.ResolutionPolicy(r.ConflictResolution),
			EnforcePersonality:   r.EnforcePersonality,
			EnforceLanguageStyle: r.EnforceLanguageStyle,
			AutoDetectConflicts:  r.AutoDetectConflicts,
			ConflictReports:      r.ConflictReports,
		},
	}
}

type testPatternReq struct {
	Type      string   `json:"type" binding:"required"`
	Preferred []string `json:"preferred"`
	Avoided   []string `json:"avoided"`
	Tone      string   `json:"tone"`
	Length    string   `json:"length"`
}

type testConflictReq struct {
	CompanyID string           `json:"-"`
	Prompt    string           `json:"prompt"`
	Patterns  []testPatternReq `json:"patterns"`
}

func (r testConflictReq) toInput() prompt.TestConflictInput {
	patterns := make([]prompt.TestPattern, len(r.Patterns))
	for i, p := range r.Patterns {
		patterns[i] = prompt.TestPattern{
			Type:      p.Type,
			Preferred: p.Preferred,
			Avoided:   p.Avoided,
			Tone:      p.Tone,
			Length:    p.Length,
		}
	}
	return prompt.TestConflictInput{
		CompanyID: r.CompanyID,
		Prompt:    r.Prompt,
		Patterns:  patterns,
	}
}

// --- Response DTOs ---

type promptsResp struct {
	PersonalityPrompt string    `json:"personalityPrompt"`
	ResponsePrompt    string    `json:"responsePrompt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func newPromptsResp(ps prompt.PromptSet) promptsResp {
	return promptsResp{
		PersonalityPrompt: ps.PersonalityPrompt,
		ResponsePrompt:    ps.ResponsePrompt,
		UpdatedAt:         ps.UpdatedAt,
	}
}

type settingsResp struct {
	PromptPriority       string `json:"promptPriority"`
	PatternsPriority     string `json:"patternsPriority"`
	ConflictResolution   string `json:"conflictResolution"`
	EnforcePersonality   bool   `json:"enforcePersonality"`
	EnforceLanguageStyle bool   `json:"enforceLanguageStyle"`
	AutoDetectConflicts  bool   `json:"autoDetectConflicts"`
	ConflictReports      bool   `json:"conflictReports"`
}

func newSettingsResp(s prompt.PrioritySettings) settingsResp {
	return settingsResp{
		PromptPriority:       string(s.PromptPriority),
		PatternsPriority:     string(s.PatternsPriority),
		ConflictResolution:   string(s.ConflictResolution),
		EnforcePersonality:   s.EnforcePersonality,
		EnforceLanguageStyle: s.EnforceLanguageStyle,
		AutoDetectConflicts:  s.AutoDetectConflicts,
		ConflictReports:      s.ConflictReports,
	}
}

type conflictItemResp struct {
	Description string `json:"description"`
}

type recommendationResp struct {
	Action string `json:"action"`
}

type testConflictResp struct {
	HasConflicts    bool                 `json:"hasConflicts"`
	ConflictsCount  int                  `json:"conflictsCount"`
	Severity        string               `json:"severity"`
	Conflicts       []conflictItemResp   `json:"conflicts"`
	Recommendations []recommendationResp `json:"recommendations"`
}

func newTestConflictResp(report prompt.Report) testConflictResp {
	conflicts := make([]conflictItemResp, len(report.Conflicts))
	for i, c := range report.Conflicts {
		conflicts[i] = conflictItemResp{Description: c.Description()}
	}
	recommendations := make([]recommendationResp, len(report.Recommendations))
	for i, rec := range report.Recommendations {
		recommendations[i] = recommendationResp{Action: rec}
	}
	return testConflictResp{
		HasConflicts:    report.HasConflicts,
		ConflictsCount:  len(report.Conflicts),
		Severity:        string(report.MaxSeverity()),
		Conflicts:       conflicts,
		Recommendations: recommendations,
	}
}
