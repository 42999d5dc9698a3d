// Package schema has the models, enums and input boundary helpers for all parts of crs.
package schema

// LanguageAbility holds the four CLB-equivalent channel levels (0-10) of one official language.
type LanguageAbility struct {
	Speaking  int `json:"speaking" yaml:"speaking" toml:"speaking"`
	Listening int `json:"listening" yaml:"listening" toml:"listening"`
	Reading   int `json:"reading" yaml:"reading" toml:"reading"`
	Writing   int `json:"writing" yaml:"writing" toml:"writing"`
}

// Channels returns the four levels in speaking, listening, reading, writing order.
func (l LanguageAbility) Channels() [4]int {
	return [4]int{l.Speaking, l.Listening, l.Reading, l.Writing}
}

// Min returns the lowest of the four channel levels.
func (l LanguageAbility) Min() int {
	return min(l.Speaking, l.Listening, l.Reading, l.Writing)
}

// ApplicantInput is the full set of attributes the scoring engine reads.
type ApplicantInput struct {
	HasSpouse                    bool                  `json:"hasSpouse" yaml:"hasSpouse" toml:"hasSpouse"`
	Age                          int                   `json:"age" yaml:"age" toml:"age"`
	EducationLevel               EducationLevel        `json:"educationLevel" yaml:"educationLevel" toml:"educationLevel"`
	FirstLanguage                LanguageAbility       `json:"firstLanguage" yaml:"firstLanguage" toml:"firstLanguage"`
	SecondLanguage               LanguageAbility       `json:"secondLanguage" yaml:"secondLanguage" toml:"secondLanguage"`
	CanadianWorkExperience       int                   `json:"canadianWorkExperience" yaml:"canadianWorkExperience" toml:"canadianWorkExperience"`
	ForeignWorkExperience        int                   `json:"foreignWorkExperience" yaml:"foreignWorkExperience" toml:"foreignWorkExperience"`
	CertificateOfQualification   bool                  `json:"certificateOfQualification" yaml:"certificateOfQualification" toml:"certificateOfQualification"`
	SpouseEducationLevel         EducationLevel        `json:"spouseEducationLevel" yaml:"spouseEducationLevel" toml:"spouseEducationLevel"`
	SpouseLanguage               LanguageAbility       `json:"spouseLanguage" yaml:"spouseLanguage" toml:"spouseLanguage"`
	SpouseCanadianWorkExperience int                   `json:"spouseCanadianWorkExperience" yaml:"spouseCanadianWorkExperience" toml:"spouseCanadianWorkExperience"`
	HasSiblingInCanada           bool                  `json:"hasSiblingInCanada" yaml:"hasSiblingInCanada" toml:"hasSiblingInCanada"`
	FrenchLanguage               FrenchTier            `json:"frenchLanguage" yaml:"frenchLanguage" toml:"frenchLanguage"`
	CanadianEducation            CanadianEducationTier `json:"canadianEducation" yaml:"canadianEducation" toml:"canadianEducation"`
	ProvincialNomination         bool                  `json:"provincialNomination" yaml:"provincialNomination" toml:"provincialNomination"`
}

// ScoreBreakdown holds the eight component scores and their total.
type ScoreBreakdown struct {
	Age                    int `json:"age" yaml:"age" toml:"age"`
	Education              int `json:"education" yaml:"education" toml:"education"`
	FirstLanguage          int `json:"firstLanguage" yaml:"firstLanguage" toml:"firstLanguage"`
	SecondLanguage         int `json:"secondLanguage" yaml:"secondLanguage" toml:"secondLanguage"`
	CanadianWorkExperience int `json:"canadianWorkExperience" yaml:"canadianWorkExperience" toml:"canadianWorkExperience"`
	SpouseFactors          int `json:"spouseFactors" yaml:"spouseFactors" toml:"spouseFactors"`
	SkillTransferability   int `json:"skillTransferability" yaml:"skillTransferability" toml:"skillTransferability"`
	AdditionalPoints       int `json:"additionalPoints" yaml:"additionalPoints" toml:"additionalPoints"`
	Total                  int `json:"total" yaml:"total" toml:"total"`
}

// Sum adds up the eight components without looking at Total.
func (b ScoreBreakdown) Sum() int {
	return b.Age + b.Education + b.FirstLanguage + b.SecondLanguage +
		b.CanadianWorkExperience + b.SpouseFactors + b.SkillTransferability + b.AdditionalPoints
}

// Component returns the score stored under the given key. ComponentTotal returns Total.
func (b ScoreBreakdown) Component(key ComponentKey) int {
	switch key {
	case ComponentAge:
		return b.Age
	case ComponentEducation:
		return b.Education
	case ComponentFirstLanguage:
		return b.FirstLanguage
	case ComponentSecondLanguage:
		return b.SecondLanguage
	case ComponentCanadianWork:
		return b.CanadianWorkExperience
	case ComponentSpouseFactors:
		return b.SpouseFactors
	case ComponentSkillTransfer:
		return b.SkillTransferability
	case ComponentAdditionalPoints:
		return b.AdditionalPoints
	case ComponentTotal:
		return b.Total
	default:
		return 0
	}
}

// TransferabilityBreakdown exposes every skill transferability sub-rule.
type TransferabilityBreakdown struct {
	EducationLanguage   int `json:"educationLanguage"`
	EducationCanadian   int `json:"educationCanadian"`
	EducationPair       int `json:"educationPair"` // capped at 50
	ForeignLanguage     int `json:"foreignLanguage"`
	ForeignCanadian     int `json:"foreignCanadian"`
	ForeignPair         int `json:"foreignPair"` // capped at 50
	CertificateLanguage int `json:"certificateLanguage"`
	Total               int `json:"total"` // capped at 100
}

// ProfileInput is the persisted form of a profile: a name plus raw inputs.
type ProfileInput struct {
	Name   string         `json:"name" yaml:"name" toml:"name"`
	Inputs ApplicantInput `json:"inputs" yaml:"inputs" toml:"inputs"`
}

// Profile is a named ApplicantInput with its derived scores.
type Profile struct {
	Name       string         `json:"name" yaml:"name" toml:"name"`
	Inputs     ApplicantInput `json:"inputs" yaml:"inputs" toml:"inputs"`
	Scores     ScoreBreakdown `json:"scores" yaml:"scores" toml:"scores"`
	TotalScore int            `json:"totalScore" yaml:"totalScore" toml:"totalScore"`
}

// ToInput drops the derived scores.
func (p Profile) ToInput() ProfileInput {
	return ProfileInput{Name: p.Name, Inputs: p.Inputs}
}

// ScoreBand is one entry of the interpretation guide.
type ScoreBand struct {
	Label       string `json:"label"`
	Min         int    `json:"min"`
	Max         int    `json:"max"` // inclusive; -1 means no upper bound
	Range       string `json:"range"`
	Description string `json:"description"`
}

// Contains reports whether the total falls inside the band.
func (b ScoreBand) Contains(total int) bool {
	if total < b.Min {
		return false
	}
	return b.Max < 0 || total <= b.Max
}

// Band labels.
const (
	BandVeryHigh = "Very High"
	BandGood     = "Good"
	BandModerate = "Moderate"
	BandPossible = "Possible"
	BandLow      = "Low"
)

// ScoreBands is the fixed interpretation guide, highest band first.
var ScoreBands = []ScoreBand{
	{Label: BandVeryHigh, Min: 600, Max: -1, Range: "600+", Description: "Very high chance of invitation in most draws"},
	{Label: BandGood, Min: 520, Max: 599, Range: "520-600", Description: "Good chance in general draws"},
	{Label: BandModerate, Min: 470, Max: 519, Range: "470-520", Description: "Moderate chance in CEC-specific draws"},
	{Label: BandPossible, Min: 410, Max: 469, Range: "410-470", Description: "Possible in category-based or program-specific draws"},
	{Label: BandLow, Min: 0, Max: 409, Range: "Below 410", Description: "Consider Provincial Nominee Program (PNP) or alternative pathways"},
}

// GuideTitle heads the interpretation guide.
const GuideTitle = "Interpretation Guide for 2025"

// GuideNote follows the interpretation guide bands.
const GuideNote = "Note: As of March 25, 2025, arranged employment no longer provides additional CRS points."

// DefaultApplicantInput returns the documented starting input for a new profile.
func DefaultApplicantInput() ApplicantInput {
	return ApplicantInput{
		HasSpouse:            false,
		Age:                  30,
		EducationLevel:       EducationBachelors,
		FirstLanguage:        LanguageAbility{Speaking: 10, Listening: 10, Reading: 10, Writing: 10},
		SpouseEducationLevel: EducationNone,
		FrenchLanguage:       FrenchNone,
		CanadianEducation:    CanadianEducationNone,
	}
}

// DefaultProfileInputs returns the three seeded profiles.
func DefaultProfileInputs() []ProfileInput {
	out := make([]ProfileInput, len(DefaultProfileNames))
	for i, name := range DefaultProfileNames {
		out[i] = ProfileInput{Name: name, Inputs: DefaultApplicantInput()}
	}
	return out
}
