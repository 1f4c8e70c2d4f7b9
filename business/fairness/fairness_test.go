package fairness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairmed/domain"
)

func cardioBaselineGroups() map[string]domain.GroupMetrics {
	return map[string]domain.GroupMetrics{
		"Male": {
			Group:           "Male",
			SampleSize:      700,
			Accuracy:        0.85,
			TPR:             0.87,
			FPR:             0.13,
			Precision:       0.84,
			ConfusionMatrix: domain.ConfusionMatrix{TN: 305, FP: 45, FN: 45, TP: 305},
		},
		"Female": {
			Group:           "Female",
			SampleSize:      300,
			Accuracy:        0.72,
			TPR:             0.70,
			FPR:             0.28,
			Precision:       0.68,
			ConfusionMatrix: domain.ConfusionMatrix{TN: 108, FP: 42, FN: 42, TP: 108},
		},
	}
}

func TestImpliedRates(t *testing.T) {
	rates := ImpliedRates(domain.ConfusionMatrix{TN: 108, FP: 42, FN: 42, TP: 108})

	assert.InDelta(t, 0.72, rates.Accuracy, 1e-9)
	assert.InDelta(t, 0.72, rates.TPR, 1e-9)
	assert.InDelta(t, 0.28, rates.FPR, 1e-9)
	assert.InDelta(t, 0.72, rates.Precision, 1e-9)
}

func TestImpliedRates_EmptyMatrix(t *testing.T) {
	rates := ImpliedRates(domain.ConfusionMatrix{})

	assert.Zero(t, rates.Accuracy)
	assert.Zero(t, rates.TPR)
	assert.Zero(t, rates.FPR)
	assert.Zero(t, rates.Precision)
}

func TestDisparities_MatchPublishedCardiovascularMetrics(t *testing.T) {
	metrics, err := Disparities(cardioBaselineGroups())
	require.NoError(t, err)

	assert.InDelta(t, 0.13, metrics.StatisticalParity, 1e-9)
	assert.InDelta(t, 0.17, metrics.EqualizedOddsTPR, 1e-9)
	assert.InDelta(t, 0.15, metrics.EqualizedOddsFPR, 1e-9)
	assert.InDelta(t, 0.16, metrics.PredictiveParity, 1e-9)
}

func TestDisparities_RequiresTwoGroups(t *testing.T) {
	_, err := Disparities(map[string]domain.GroupMetrics{
		"only": {Group: "only", SampleSize: 10},
	})
	assert.Error(t, err)
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name      string
		metrics   domain.FairnessMetrics
		wantTypes []string
	}{
		{
			name:      "all below threshold",
			metrics:   domain.FairnessMetrics{StatisticalParity: 0.02, EqualizedOddsTPR: 0.03, EqualizedOddsFPR: 0.02, PredictiveParity: 0.02},
			wantTypes: []string{},
		},
		{
			name:      "accuracy gap only",
			metrics:   domain.FairnessMetrics{StatisticalParity: 0.13, EqualizedOddsTPR: 0.04, EqualizedOddsFPR: 0.04, PredictiveParity: 0.05},
			wantTypes: []string{"accuracy_disparity"},
		},
		{
			name:      "everything over threshold",
			metrics:   domain.FairnessMetrics{StatisticalParity: 0.30, EqualizedOddsTPR: 0.30, EqualizedOddsFPR: 0.30, PredictiveParity: 0.31},
			wantTypes: []string{"accuracy_disparity", "tpr_disparity", "fpr_disparity", "precision_disparity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DeriveFlags(tt.metrics, FlagThreshold)

			gotTypes := make([]string, 0, len(flags))
			for _, f := range flags {
				gotTypes = append(gotTypes, f.Type)
			}
			assert.Equal(t, tt.wantTypes, gotTypes)
		})
	}
}

func TestDeriveFlags_SeverityScalesWithGap(t *testing.T) {
	flags := DeriveFlags(domain.FairnessMetrics{StatisticalParity: 0.30}, FlagThreshold)
	require.Len(t, flags, 1)
	assert.Equal(t, domain.SeverityHigh, flags[0].Severity)

	flags = DeriveFlags(domain.FairnessMetrics{StatisticalParity: 0.06}, FlagThreshold)
	require.Len(t, flags, 1)
	assert.Equal(t, domain.SeverityLow, flags[0].Severity)

	flags = DeriveFlags(domain.FairnessMetrics{StatisticalParity: 0.09}, FlagThreshold)
	require.Len(t, flags, 1)
	assert.Equal(t, domain.SeverityMedium, flags[0].Severity)
}

func validReport() domain.BiasReport {
	return domain.BiasReport{
		Scenario:     domain.ScenarioCardiovascular,
		OverallScore: 62.0,
		Groups:       cardioBaselineGroups(),
		Metrics: domain.FairnessMetrics{
			StatisticalParity: 0.13,
			EqualizedOddsTPR:  0.17,
			EqualizedOddsFPR:  0.15,
			PredictiveParity:  0.16,
		},
	}
}

func TestCheck_AcceptsConsistentReport(t *testing.T) {
	assert.NoError(t, Check(validReport()))
}

func TestCheck_RejectsBadMatrixSum(t *testing.T) {
	report := validReport()
	g := report.Groups["Male"]
	g.ConfusionMatrix.TP++
	report.Groups["Male"] = g

	err := Check(report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confusion matrix sums to")
}

func TestCheck_RejectsDriftedMetrics(t *testing.T) {
	report := validReport()
	report.Metrics.StatisticalParity = 0.25

	err := Check(report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disagree with derived")
}

func TestCheck_RejectsRateFarFromMatrix(t *testing.T) {
	report := validReport()
	g := report.Groups["Male"]
	g.Accuracy = 0.99
	report.Groups["Male"] = g
	// Keep the published gap consistent with the edited stated rates so the
	// rate-drift rule is the one that fires.
	report.Metrics.StatisticalParity = 0.99 - 0.72

	err := Check(report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drifts from matrix-implied")
}

func TestCheck_RejectsMitigatedReportOverThreshold(t *testing.T) {
	report := validReport()
	report.Improvement = &domain.Improvement{Message: "done"}

	err := Check(report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bias flags")
}

func TestCheck_RejectsScoreOutOfRange(t *testing.T) {
	report := validReport()
	report.OverallScore = 120

	err := Check(report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
