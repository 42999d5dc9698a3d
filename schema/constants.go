package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the backend for profile storage.
	DatabaseBackend string

	// EducationLevel represents the highest completed education credential.
	EducationLevel string

	// FrenchTier represents the French-language bonus tier.
	FrenchTier string

	// CanadianEducationTier represents the Canadian post-secondary credential bonus tier.
	CanadianEducationTier string

	// ComponentKey names one of the eight score components.
	ComponentKey string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	TOMLOut    OutputMode = "toml"
	ParquetOut OutputMode = "parquet"
	PDFOut     OutputMode = "pdf"
)

// All profile store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	RedisBackend      DatabaseBackend = "redis"
	NoneBackend       DatabaseBackend = "none"
)

// Education levels, shared by the applicant and the spouse.
const (
	EducationNone      EducationLevel = "none"
	EducationSecondary EducationLevel = "secondary"
	EducationOneYear   EducationLevel = "oneyear"
	EducationTwoYear   EducationLevel = "twoyear"
	EducationBachelors EducationLevel = "bachelors"
	EducationTwoOrMore EducationLevel = "twoormore"
	EducationMasters   EducationLevel = "masters"
	EducationPhD       EducationLevel = "phd"
)

// French-language tiers.
const (
	FrenchNone                FrenchTier = "none"
	FrenchHighWithLowEnglish  FrenchTier = "high-french-low-english"
	FrenchHighWithHighEnglish FrenchTier = "high-french-high-english"
)

// Canadian education credential tiers.
const (
	CanadianEducationNone      CanadianEducationTier = "none"
	CanadianEducationShort     CanadianEducationTier = "one-or-two-years"
	CanadianEducationThreePlus CanadianEducationTier = "three-years-or-more"
)

// Score component keys in display order.
const (
	ComponentAge              ComponentKey = "age"
	ComponentEducation        ComponentKey = "education"
	ComponentFirstLanguage    ComponentKey = "firstLanguage"
	ComponentSecondLanguage   ComponentKey = "secondLanguage"
	ComponentCanadianWork     ComponentKey = "canadianWorkExperience"
	ComponentSpouseFactors    ComponentKey = "spouseFactors"
	ComponentSkillTransfer    ComponentKey = "skillTransferability"
	ComponentAdditionalPoints ComponentKey = "additionalPoints"
	ComponentTotal            ComponentKey = "total"
)

// MaxProfiles is the size limit of a comparison set.
const MaxProfiles = 3

// RuleSetVersion identifies the point tables encoded in core/algo.
const RuleSetVersion = "2025-03"

// DefaultReportFile is the file name used by the report command when none is given.
const DefaultReportFile = "CRS_Calculator_Results.pdf"

// AllComponents lists the eight score components in display order.
var AllComponents = []ComponentKey{
	ComponentAge,
	ComponentEducation,
	ComponentFirstLanguage,
	ComponentSecondLanguage,
	ComponentCanadianWork,
	ComponentSpouseFactors,
	ComponentSkillTransfer,
	ComponentAdditionalPoints,
}

// ComponentLabels maps each component key to its display label.
var ComponentLabels = map[ComponentKey]string{
	ComponentAge:              "Age",
	ComponentEducation:        "Education",
	ComponentFirstLanguage:    "First Language",
	ComponentSecondLanguage:   "Second Language",
	ComponentCanadianWork:     "Canadian Work Experience",
	ComponentSpouseFactors:    "Spouse Factors",
	ComponentSkillTransfer:    "Skill Transferability",
	ComponentAdditionalPoints: "Additional Points",
	ComponentTotal:            "Total Score",
}

// DefaultProfileNames are the names of the seeded comparison set.
var DefaultProfileNames = []string{"Profile 1", "Profile 2", "Profile 3"}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	TOMLOut:    {},
	ParquetOut: {},
	PDFOut:     {},
}

// ValidDatabaseBackends lists all valid profile store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	RedisBackend:      {},
	NoneBackend:       {},
}

// ValidEducationLevels lists all valid education levels.
var ValidEducationLevels = map[EducationLevel]struct{}{
	EducationNone:      {},
	EducationSecondary: {},
	EducationOneYear:   {},
	EducationTwoYear:   {},
	EducationBachelors: {},
	EducationTwoOrMore: {},
	EducationMasters:   {},
	EducationPhD:       {},
}

// ValidFrenchTiers lists all valid French-language tiers.
var ValidFrenchTiers = map[FrenchTier]struct{}{
	FrenchNone:                {},
	FrenchHighWithLowEnglish:  {},
	FrenchHighWithHighEnglish: {},
}

// ValidCanadianEducationTiers lists all valid Canadian education tiers.
var ValidCanadianEducationTiers = map[CanadianEducationTier]struct{}{
	CanadianEducationNone:      {},
	CanadianEducationShort:     {},
	CanadianEducationThreePlus: {},
}

// EducationLabels are the human-readable names used on report detail pages.
var EducationLabels = map[EducationLevel]string{
	EducationNone:      "Less than secondary school",
	EducationSecondary: "Secondary diploma",
	EducationOneYear:   "One-year program",
	EducationTwoYear:   "Two-year program",
	EducationBachelors: "Bachelor's degree or 3+ year program",
	EducationTwoOrMore: "Two or more credentials, one 3+ years",
	EducationMasters:   "Master's or professional degree",
	EducationPhD:       "Doctoral (PhD)",
}

// FrenchLabels are the human-readable names of the French tiers.
var FrenchLabels = map[FrenchTier]string{
	FrenchNone:                "None",
	FrenchHighWithLowEnglish:  "NCLC 7+ French, CLB 4 or lower English",
	FrenchHighWithHighEnglish: "NCLC 7+ French, CLB 5+ English",
}

// CanadianEducationLabels are the human-readable names of the Canadian education tiers.
var CanadianEducationLabels = map[CanadianEducationTier]string{
	CanadianEducationNone:      "None",
	CanadianEducationShort:     "1-2 year credential",
	CanadianEducationThreePlus: "3+ year credential",
}

// IsHigherEducation reports whether the level is above a two-year credential.
func (e EducationLevel) IsHigherEducation() bool {
	switch e {
	case EducationBachelors, EducationTwoOrMore, EducationMasters, EducationPhD:
		return true
	default:
		return false
	}
}
