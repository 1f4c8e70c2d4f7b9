package domain

// Scenario identifies one of the fixed medical-bias case studies.
type Scenario string

const (
	ScenarioDermatology    Scenario = "dermatology"
	ScenarioCardiovascular Scenario = "cardiovascular"
	ScenarioPain           Scenario = "pain"
)

// DefaultScenario is used when a request omits the scenario field.
const DefaultScenario = ScenarioDermatology

// Scenarios lists every valid scenario in presentation order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioDermatology, ScenarioCardiovascular, ScenarioPain}
}

// ScenarioOrDefault maps the empty string to DefaultScenario. It does not
// validate membership; request validation and the catalog lookup own that.
func ScenarioOrDefault(s string) Scenario {
	if s == "" {
		return DefaultScenario
	}
	return Scenario(s)
}
