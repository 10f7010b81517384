package models

// AnalysisResult is returned by the ATS analysis endpoint and never stored.
type AnalysisResult struct {
	ATSScore    float64  `json:"ats_score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	Summary     string   `json:"summary"`
}
