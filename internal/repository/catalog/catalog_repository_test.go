package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fairmed/domain"
)

func TestNewRepository_FixturesVerify(t *testing.T) {
	if _, err := NewRepository(); err != nil {
		t.Fatalf("catalog construction failed: %v", err)
	}
}

func TestRepository_EveryScenarioHasBothVariants(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("catalog construction failed: %v", err)
	}

	ctx := context.Background()

	for _, scenario := range repo.Scenarios() {
		baseline, err := repo.GetBaseline(ctx, scenario)
		if err != nil {
			t.Fatalf("baseline %s: %v", scenario, err)
		}
		mitigated, err := repo.GetMitigated(ctx, scenario)
		if err != nil {
			t.Fatalf("mitigated %s: %v", scenario, err)
		}

		if baseline.Scenario != scenario {
			t.Errorf("%s: baseline report labeled %s", scenario, baseline.Scenario)
		}
		if mitigated.Scenario != scenario {
			t.Errorf("%s: mitigated report labeled %s", scenario, mitigated.Scenario)
		}

		if mitigated.OverallScore <= baseline.OverallScore {
			t.Errorf("%s: mitigated score %.1f not above baseline %.1f",
				scenario, mitigated.OverallScore, baseline.OverallScore)
		}

		if len(mitigated.Flags) != 0 {
			t.Errorf("%s: mitigated report has %d flags, want none", scenario, len(mitigated.Flags))
		}
		if mitigated.Improvement == nil {
			t.Errorf("%s: mitigated report missing improvement summary", scenario)
		}
		if len(mitigated.Recommendations) != 0 {
			t.Errorf("%s: mitigated report carries recommendations", scenario)
		}

		if len(baseline.Recommendations) == 0 {
			t.Errorf("%s: baseline report has no recommendations", scenario)
		}
		if baseline.Improvement != nil {
			t.Errorf("%s: baseline report carries an improvement summary", scenario)
		}
		if !bytes.Equal(baseline.MitigatedResults, domain.PendingMitigation) {
			t.Errorf("%s: baseline mitigated_results marker is %q", scenario, baseline.MitigatedResults)
		}
	}
}

func TestRepository_ConfusionMatricesSumToSampleSize(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("catalog construction failed: %v", err)
	}

	ctx := context.Background()

	for _, scenario := range repo.Scenarios() {
		for name, get := range map[string]func(context.Context, domain.Scenario) (domain.BiasReport, error){
			"baseline":  repo.GetBaseline,
			"mitigated": repo.GetMitigated,
		} {
			report, err := get(ctx, scenario)
			if err != nil {
				t.Fatalf("%s %s: %v", name, scenario, err)
			}
			for label, group := range report.Groups {
				if total := group.ConfusionMatrix.Total(); total != group.SampleSize {
					t.Errorf("%s %s/%s: matrix sums to %d, sample size %d",
						name, scenario, label, total, group.SampleSize)
				}
			}
		}
	}
}

func TestRepository_UnknownScenario(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("catalog construction failed: %v", err)
	}

	ctx := context.Background()

	if _, err := repo.GetBaseline(ctx, domain.Scenario("oncology")); !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("GetBaseline(oncology) = %v, want ErrScenarioNotFound", err)
	}
	if _, err := repo.GetMitigated(ctx, domain.Scenario("oncology")); !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("GetMitigated(oncology) = %v, want ErrScenarioNotFound", err)
	}
}

// The baseline payload must serialize its pending-mitigation marker as an
// explicit null, not drop the key.
func TestRepository_BaselineSerializesPendingMarker(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("catalog construction failed: %v", err)
	}

	baseline, err := repo.GetBaseline(context.Background(), domain.ScenarioDermatology)
	if err != nil {
		t.Fatalf("baseline dermatology: %v", err)
	}

	raw, err := json.Marshal(baseline)
	if err != nil {
		t.Fatalf("marshal baseline: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal baseline: %v", err)
	}

	marker, ok := decoded["mitigated_results"]
	if !ok {
		t.Fatal("baseline payload is missing mitigated_results")
	}
	if string(marker) != "null" {
		t.Errorf("mitigated_results = %s, want null", marker)
	}
}
