package domain

import "context"

// MatchResult is a screening verdict. It is shown to the recruiter and not stored.
type MatchResult struct {
	Score          int      `json:"score"`
	Strengths      []string `json:"strengths"`
	Recommendation string   `json:"recommendation"`
	Mocked         bool     `json:"mocked"`
}

// Screener scores a resume against posting requirements.
type Screener interface {
	ScoreCandidate(ctx context.Context, resume []byte, requirements string) (*MatchResult, error)
}

type ScreeningUsecase interface {
	ScreenApplication(ctx context.Context, applicationID int64) (*ScreeningReport, error)
}

// ScreeningReport pairs a verdict with the application it was computed for.
type ScreeningReport struct {
	ApplicationID int64        `json:"application_id"`
	Label         string       `json:"label"`
	Result        *MatchResult `json:"result"`
}
