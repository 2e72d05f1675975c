package model

// AnalysisResult is the structured reading of a diary entry returned by the model.
type AnalysisResult struct {
	Summary string   `json:"summary"`
	Flow    []string `json:"flow"`
	Tips    string   `json:"tips"`
}
