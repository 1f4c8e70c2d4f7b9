// Package fairness recomputes disparity metrics from report fixtures.
//
// The catalog ships hand-authored demo numbers. This package keeps them
// honest: stated per-group rates must agree with what the confusion matrices
// imply, and the published fairness metrics must equal the max-min gaps over
// the stated rates.
package fairness

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"fairmed/domain"
)

const (
	// FlagThreshold is the disparity above which a bias flag is raised.
	FlagThreshold = 0.05

	// rateTolerance bounds how far a stated (rounded, presentation-grade)
	// rate may drift from the rate implied by the confusion matrix.
	rateTolerance = 0.05

	// metricEpsilon bounds float noise when comparing published metrics
	// against gaps recomputed from the same stated rates.
	metricEpsilon = 1e-9
)

// Rates are the classifier performance rates implied by a confusion matrix.
type Rates struct {
	Accuracy  float64
	TPR       float64
	FPR       float64
	Precision float64
}

// ImpliedRates derives performance rates from raw confusion counts.
func ImpliedRates(m domain.ConfusionMatrix) Rates {
	return Rates{
		Accuracy:  ratio(m.TN+m.TP, m.Total()),
		TPR:       ratio(m.TP, m.TP+m.FN),
		FPR:       ratio(m.FP, m.FP+m.TN),
		Precision: ratio(m.TP, m.TP+m.FP),
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Disparities computes the four fairness metrics as the max-min gap of each
// stated rate across groups.
func Disparities(groups map[string]domain.GroupMetrics) (domain.FairnessMetrics, error) {
	if len(groups) < 2 {
		return domain.FairnessMetrics{}, fmt.Errorf("need at least two groups, got %d", len(groups))
	}

	var accuracy, tpr, fpr, precision []float64
	for _, g := range groups {
		accuracy = append(accuracy, g.Accuracy)
		tpr = append(tpr, g.TPR)
		fpr = append(fpr, g.FPR)
		precision = append(precision, g.Precision)
	}

	sp, err := gap(accuracy)
	if err != nil {
		return domain.FairnessMetrics{}, err
	}
	tprGap, err := gap(tpr)
	if err != nil {
		return domain.FairnessMetrics{}, err
	}
	fprGap, err := gap(fpr)
	if err != nil {
		return domain.FairnessMetrics{}, err
	}
	pp, err := gap(precision)
	if err != nil {
		return domain.FairnessMetrics{}, err
	}

	return domain.FairnessMetrics{
		StatisticalParity: sp,
		EqualizedOddsTPR:  tprGap,
		EqualizedOddsFPR:  fprGap,
		PredictiveParity:  pp,
	}, nil
}

func gap(values []float64) (float64, error) {
	max, err := stats.Max(values)
	if err != nil {
		return 0, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return 0, err
	}
	return max - min, nil
}

// DeriveFlags raises a flag for every disparity above the threshold.
// Severity scales with how far past the threshold the gap is.
func DeriveFlags(metrics domain.FairnessMetrics, threshold float64) []domain.BiasFlag {
	checks := []struct {
		flagType string
		label    string
		value    float64
	}{
		{"accuracy_disparity", "Accuracy", metrics.StatisticalParity},
		{"tpr_disparity", "True Positive Rate", metrics.EqualizedOddsTPR},
		{"fpr_disparity", "False Positive Rate", metrics.EqualizedOddsFPR},
		{"precision_disparity", "Precision", metrics.PredictiveParity},
	}

	flags := make([]domain.BiasFlag, 0)
	for _, c := range checks {
		if c.value <= threshold {
			continue
		}
		flags = append(flags, domain.BiasFlag{
			Type:     c.flagType,
			Severity: severityFor(c.value, threshold),
			Message:  fmt.Sprintf("%s varies by %.1f%% across groups (threshold: %.0f%%)", c.label, c.value*100, threshold*100),
			Value:    c.value,
		})
	}
	return flags
}

func severityFor(value, threshold float64) string {
	switch {
	case value > 2*threshold:
		return domain.SeverityHigh
	case value > 1.5*threshold:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// Check validates a single report fixture. It returns the first integrity
// violation found, or nil when the fixture is internally consistent.
func Check(report domain.BiasReport) error {
	if report.OverallScore < 0 || report.OverallScore > 100 {
		return fmt.Errorf("%s: overall score %.1f out of range [0,100]", report.Scenario, report.OverallScore)
	}

	for label, g := range report.Groups {
		if g.SampleSize <= 0 {
			return fmt.Errorf("%s/%s: non-positive sample size %d", report.Scenario, label, g.SampleSize)
		}
		if total := g.ConfusionMatrix.Total(); total != g.SampleSize {
			return fmt.Errorf("%s/%s: confusion matrix sums to %d, sample size is %d", report.Scenario, label, total, g.SampleSize)
		}

		implied := ImpliedRates(g.ConfusionMatrix)
		stated := Rates{Accuracy: g.Accuracy, TPR: g.TPR, FPR: g.FPR, Precision: g.Precision}
		if err := compareRates(stated, implied); err != nil {
			return fmt.Errorf("%s/%s: %w", report.Scenario, label, err)
		}
	}

	derived, err := Disparities(report.Groups)
	if err != nil {
		return fmt.Errorf("%s: %w", report.Scenario, err)
	}
	if !metricsEqual(report.Metrics, derived) {
		return fmt.Errorf("%s: published metrics %+v disagree with derived %+v", report.Scenario, report.Metrics, derived)
	}

	// A mitigated report claims convergence: nothing may trip the threshold.
	if report.Improvement != nil {
		if flags := DeriveFlags(derived, FlagThreshold); len(flags) > 0 {
			return fmt.Errorf("%s: mitigated report still derives %d bias flags", report.Scenario, len(flags))
		}
		if len(report.Flags) != 0 {
			return fmt.Errorf("%s: mitigated report carries %d flags", report.Scenario, len(report.Flags))
		}
	}

	return nil
}

func compareRates(stated, implied Rates) error {
	pairs := []struct {
		name            string
		stated, implied float64
	}{
		{"accuracy", stated.Accuracy, implied.Accuracy},
		{"tpr", stated.TPR, implied.TPR},
		{"fpr", stated.FPR, implied.FPR},
		{"precision", stated.Precision, implied.Precision},
	}
	for _, p := range pairs {
		if p.stated < 0 || p.stated > 1 {
			return fmt.Errorf("%s %.3f out of range [0,1]", p.name, p.stated)
		}
		if math.Abs(p.stated-p.implied) > rateTolerance {
			return fmt.Errorf("%s stated %.3f drifts from matrix-implied %.3f", p.name, p.stated, p.implied)
		}
	}
	return nil
}

func metricsEqual(a, b domain.FairnessMetrics) bool {
	return math.Abs(a.StatisticalParity-b.StatisticalParity) < metricEpsilon &&
		math.Abs(a.EqualizedOddsTPR-b.EqualizedOddsTPR) < metricEpsilon &&
		math.Abs(a.EqualizedOddsFPR-b.EqualizedOddsFPR) < metricEpsilon &&
		math.Abs(a.PredictiveParity-b.PredictiveParity) < metricEpsilon
}
