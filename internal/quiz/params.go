package quiz

import "fmt"

// ProjectType is the market research project methodology.
type ProjectType string

const (
	ProjectATU              ProjectType = "ATU"
	ProjectATUPCA           ProjectType = "ATU PCA"
	ProjectHCPPT            ProjectType = "HCP PT"
	ProjectPET              ProjectType = "PET"
	ProjectQual             ProjectType = "Qual"
	ProjectRT               ProjectType = "RT"
	ProjectDigitalTracker   ProjectType = "Digital Tracker"
	ProjectDemandEstimation ProjectType = "Demand Estimation"
	ProjectSegmentation     ProjectType = "Segmentation"
)

// ProjectTypes lists the supported methodologies.
var ProjectTypes = []ProjectType{
	ProjectATU, ProjectATUPCA, ProjectHCPPT, ProjectPET, ProjectQual,
	ProjectRT, ProjectDigitalTracker, ProjectDemandEstimation, ProjectSegmentation,
}

// ClientScenario describes the engagement stage with the client.
type ClientScenario string

const (
	ScenarioNewClientBaseline      ClientScenario = "new_client_baseline"
	ScenarioExistingClientFollowup ClientScenario = "existing_client_followup"
	ScenarioExistingClientBaseline ClientScenario = "existing_client_new_baseline"
)

// ClientScenarios lists the supported scenarios.
var ClientScenarios = []ClientScenario{
	ScenarioNewClientBaseline,
	ScenarioExistingClientFollowup,
	ScenarioExistingClientBaseline,
}

// Experience level bounds. The level is an ordinal self-assessment that
// drives the difficulty mix.
const (
	MinExperienceLevel = 1
	MaxExperienceLevel = 7
)

// Question count bounds for one session.
const (
	DefaultQuestionCount = 15
	MinQuestionCount     = 10
	MaxQuestionCount     = 40
)

// ExperienceLevels maps each level to its description.
var ExperienceLevels = map[int]string{
	1: "Completely new to project & therapy area",
	2: "Limited knowledge - familiar with basic therapy area concepts",
	3: "Some knowledge but need development for project specifics",
	4: "Moderate understanding with limited client/project exposure",
	5: "Good working knowledge with some client familiarity",
	6: "Advanced knowledge - subject matter expert level",
	7: "Expert level - internal SME with extensive client/project experience",
}

// Parameters holds the contextual inputs collected before a session.
// Immutable once a session starts.
type Parameters struct {
	ProjectName          string         `json:"project_name"`
	ClientName           string         `json:"client_name"`
	TherapyArea          string         `json:"therapy_area"`
	SecondaryTherapyArea string         `json:"secondary_therapy_area,omitempty"`
	Indication           string         `json:"indication"`
	ProjectType          ProjectType    `json:"project_type"`
	ClientScenario       ClientScenario `json:"client_scenario"`
	ExperienceLevel      int            `json:"experience_level"`
	ProductNames         []string       `json:"product_names,omitempty"`
	ContextText          string         `json:"-"`
}

// ConfigurationError reports invalid static input, e.g. an experience
// level outside [1,7].
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Msg)
}

// Validate checks the parameters for structural validity.
func (p Parameters) Validate() error {
	if p.ExperienceLevel < MinExperienceLevel || p.ExperienceLevel > MaxExperienceLevel {
		return &ConfigurationError{
			Field: "experience_level",
			Msg:   fmt.Sprintf("must be between %d and %d, got %d", MinExperienceLevel, MaxExperienceLevel, p.ExperienceLevel),
		}
	}
	if p.TherapyArea == "" {
		return &ConfigurationError{Field: "therapy_area", Msg: "must not be empty"}
	}
	if p.ProjectType != "" && !validProjectType(p.ProjectType) {
		return &ConfigurationError{
			Field: "project_type",
			Msg:   fmt.Sprintf("unknown project type %q", p.ProjectType),
		}
	}
	if p.ClientScenario != "" && !validClientScenario(p.ClientScenario) {
		return &ConfigurationError{
			Field: "client_scenario",
			Msg:   fmt.Sprintf("unknown client scenario %q", p.ClientScenario),
		}
	}
	return nil
}

func validProjectType(t ProjectType) bool {
	for _, pt := range ProjectTypes {
		if pt == t {
			return true
		}
	}
	return false
}

func validClientScenario(s ClientScenario) bool {
	for _, cs := range ClientScenarios {
		if cs == s {
			return true
		}
	}
	return false
}
