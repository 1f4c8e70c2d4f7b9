package domain

import "encoding/json"

// Severity levels for bias flags and recommendation priorities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// PendingMitigation marks a baseline report whose mitigated counterpart has
// not been requested yet. Serialized as an explicit null so clients can tell
// "not computed" apart from "not applicable" (mitigated reports omit the key).
var PendingMitigation = json.RawMessage(`null`)

// BiasReport is the full analysis payload for one (scenario, variant) pair.
// All values are illustrative demo fixtures, not live model evaluation.
type BiasReport struct {
	Scenario     Scenario                `json:"scenario"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description,omitempty"`
	OverallScore float64                 `json:"overall_score"`
	Groups       map[string]GroupMetrics `json:"groups"`
	Metrics      FairnessMetrics         `json:"metrics"`
	Flags        []BiasFlag              `json:"flags"`

	// Baseline variant only.
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
	MitigatedResults json.RawMessage  `json:"mitigated_results,omitempty"`

	// Mitigated variant only.
	Improvement *Improvement `json:"improvement,omitempty"`
}

// GroupMetrics holds per-demographic-group classifier performance.
type GroupMetrics struct {
	Group           string          `json:"group"`
	SampleSize      int             `json:"sample_size"`
	Accuracy        float64         `json:"accuracy"`
	TPR             float64         `json:"tpr"`
	FPR             float64         `json:"fpr"`
	Precision       float64         `json:"precision"`
	ConfusionMatrix ConfusionMatrix `json:"confusion_matrix"`
}

type ConfusionMatrix struct {
	TN int `json:"tn"`
	FP int `json:"fp"`
	FN int `json:"fn"`
	TP int `json:"tp"`
}

// Total is the number of samples the matrix accounts for.
func (m ConfusionMatrix) Total() int {
	return m.TN + m.FP + m.FN + m.TP
}

// FairnessMetrics are disparity measures between groups, 0 = perfectly fair.
type FairnessMetrics struct {
	StatisticalParity float64 `json:"statistical_parity"`
	EqualizedOddsTPR  float64 `json:"equalized_odds_tpr"`
	EqualizedOddsFPR  float64 `json:"equalized_odds_fpr"`
	PredictiveParity  float64 `json:"predictive_parity"`
}

type BiasFlag struct {
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
	Value    float64 `json:"value"`
}

type Recommendation struct {
	Priority            string `json:"priority"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	ExpectedImprovement int    `json:"expected_improvement"`
	ImplementationCost  string `json:"implementation_cost"`
	Timeline            string `json:"timeline"`
}

// Improvement summarizes the before/after effect of a mitigation run.
type Improvement struct {
	BiasScoreChange            float64 `json:"bias_score_change"`
	AccuracyDisparityReduction float64 `json:"accuracy_disparity_reduction"`
	Message                    string  `json:"message"`
}
