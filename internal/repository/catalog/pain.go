package catalog

import "fairmed/domain"

// Pain assessment using age as a proxy for tolerance: systematic
// underestimation for elderly patients.
func painBaseline() domain.BiasReport {
	return domain.BiasReport{
		Scenario:     domain.ScenarioPain,
		Title:        "Pain Management Algorithm - Age Bias",
		Description:  "AI uses age as proxy for pain tolerance, undertreating elderly patients",
		OverallScore: 58.5,
		Groups: map[string]domain.GroupMetrics{
			"Age 18-40": {
				Group:           "Age 18-40",
				SampleSize:      400,
				Accuracy:        0.82,
				TPR:             0.84,
				FPR:             0.16,
				Precision:       0.81,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 168, FP: 32, FN: 32, TP: 168},
			},
			"Age 41-64": {
				Group:           "Age 41-64",
				SampleSize:      350,
				Accuracy:        0.78,
				TPR:             0.76,
				FPR:             0.22,
				Precision:       0.74,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 137, FP: 38, FN: 42, TP: 133},
			},
			"Age 65+": {
				Group:           "Age 65+",
				SampleSize:      250,
				Accuracy:        0.68,
				TPR:             0.65,
				FPR:             0.32,
				Precision:       0.67,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 85, FP: 40, FN: 44, TP: 81},
			},
		},
		Metrics: domain.FairnessMetrics{
			StatisticalParity: 0.14,
			EqualizedOddsTPR:  0.19,
			EqualizedOddsFPR:  0.16,
			PredictiveParity:  0.14,
		},
		Flags: []domain.BiasFlag{
			{
				Type:     "accuracy_disparity",
				Severity: domain.SeverityHigh,
				Message:  "Accuracy varies by 14.0% across age groups (threshold: 5%)",
				Value:    0.14,
			},
		},
		Recommendations: []domain.Recommendation{
			{
				Priority:            domain.SeverityHigh,
				Title:               "Remove Age as Direct Feature",
				Description:         "Eliminate age-based assumptions about pain tolerance",
				ExpectedImprovement: 35,
				ImplementationCost:  "€5,000",
				Timeline:            "1-2 weeks",
			},
		},
		MitigatedResults: domain.PendingMitigation,
	}
}

// After removing age as a feature: age disparity drops 14% -> 2%.
func painMitigated() domain.BiasReport {
	return domain.BiasReport{
		Scenario:     domain.ScenarioPain,
		Title:        "Pain Management Algorithm - After Mitigation",
		OverallScore: 88.7,
		Groups: map[string]domain.GroupMetrics{
			"Age 18-40": {
				Group:           "Age 18-40",
				SampleSize:      400,
				Accuracy:        0.80,
				TPR:             0.81,
				FPR:             0.19,
				Precision:       0.79,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 162, FP: 38, FN: 38, TP: 162},
			},
			"Age 41-64": {
				Group:           "Age 41-64",
				SampleSize:      350,
				Accuracy:        0.79,
				TPR:             0.80,
				FPR:             0.20,
				Precision:       0.78,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 140, FP: 35, FN: 35, TP: 140},
			},
			"Age 65+": {
				Group:           "Age 65+",
				SampleSize:      250,
				Accuracy:        0.78,
				TPR:             0.79,
				FPR:             0.21,
				Precision:       0.77,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 99, FP: 26, FN: 26, TP: 99},
			},
		},
		Metrics: domain.FairnessMetrics{
			StatisticalParity: 0.02,
			EqualizedOddsTPR:  0.02,
			EqualizedOddsFPR:  0.02,
			PredictiveParity:  0.02,
		},
		Flags: []domain.BiasFlag{},
		Improvement: &domain.Improvement{
			BiasScoreChange:            30.2,
			AccuracyDisparityReduction: 0.12,
			Message:                    "Age bias eliminated - fair pain assessment across all ages",
		},
	}
}
