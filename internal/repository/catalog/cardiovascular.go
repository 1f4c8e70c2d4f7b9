package catalog

import "fairmed/domain"

// Heart disease prediction undertrained on female patients: the
// sensitivity-gap-by-subgroup pattern.
func cardiovascularBaseline() domain.BiasReport {
	return domain.BiasReport{
		Scenario:     domain.ScenarioCardiovascular,
		Title:        "Cardiovascular Disease Predictor - Gender Bias",
		Description:  "AI model undertrained on female patients, leading to underdiagnosis",
		OverallScore: 62.0,
		Groups: map[string]domain.GroupMetrics{
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
		},
		Metrics: domain.FairnessMetrics{
			StatisticalParity: 0.13,
			EqualizedOddsTPR:  0.17,
			EqualizedOddsFPR:  0.15,
			PredictiveParity:  0.16,
		},
		Flags: []domain.BiasFlag{
			{
				Type:     "accuracy_disparity",
				Severity: domain.SeverityHigh,
				Message:  "Accuracy varies by 13.0% between genders (threshold: 5%)",
				Value:    0.13,
			},
		},
		Recommendations: []domain.Recommendation{
			{
				Priority:            domain.SeverityHigh,
				Title:               "Balance Training Dataset",
				Description:         "Increase female patient representation to 50%",
				ExpectedImprovement: 30,
				ImplementationCost:  "€12,000",
				Timeline:            "3-4 weeks",
			},
		},
		MitigatedResults: domain.PendingMitigation,
	}
}

// After dataset balancing: gender disparity drops 13% -> 2%.
func cardiovascularMitigated() domain.BiasReport {
	return domain.BiasReport{
		Scenario:     domain.ScenarioCardiovascular,
		Title:        "Cardiovascular Disease Predictor - After Mitigation",
		OverallScore: 92.0,
		Groups: map[string]domain.GroupMetrics{
			"Male": {
				Group:           "Male",
				SampleSize:      700,
				Accuracy:        0.83,
				TPR:             0.84,
				FPR:             0.16,
				Precision:       0.82,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 294, FP: 56, FN: 56, TP: 294},
			},
			"Female": {
				Group:           "Female",
				SampleSize:      300,
				Accuracy:        0.81,
				TPR:             0.82,
				FPR:             0.18,
				Precision:       0.80,
				ConfusionMatrix: domain.ConfusionMatrix{TN: 123, FP: 27, FN: 27, TP: 123},
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
			BiasScoreChange:            30.0,
			AccuracyDisparityReduction: 0.11,
			Message:                    "Gender bias eliminated - equitable performance achieved",
		},
	}
}
