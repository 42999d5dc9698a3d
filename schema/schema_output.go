package schema

import "time"

// EnrichedProfile adds presentation data to a Profile.
type EnrichedProfile struct {
	Rank int    `json:"rank"`
	Band string `json:"band"`
	Profile
}

// BandFor returns the interpretation guide band a total falls in.
func BandFor(total int) ScoreBand {
	for _, b := range ScoreBands {
		if b.Contains(total) {
			return b
		}
	}
	return ScoreBands[len(ScoreBands)-1]
}

// GetPlainLabel returns the band label for a total.
func GetPlainLabel(total int) string {
	return BandFor(total).Label
}

// EnrichProfiles adds rank and band label to an already ranked list of profiles.
func EnrichProfiles(profiles []Profile) []EnrichedProfile {
	output := make([]EnrichedProfile, len(profiles))
	for i, p := range profiles {
		output[i] = EnrichedProfile{
			Rank:    i + 1,
			Band:    GetPlainLabel(p.TotalScore),
			Profile: p,
		}
	}
	return output
}

// ComparisonRow is one category line of the comparison table.
type ComparisonRow struct {
	Key    ComponentKey `json:"key"`
	Label  string       `json:"label"`
	Values []int        `json:"values"`
}

// ComparisonRenderModel is the category-by-profile comparison table.
type ComparisonRenderModel struct {
	Profiles []string        `json:"profiles"`
	Rows     []ComparisonRow `json:"rows"`
	Bands    []string        `json:"bands"`
	Leader   string          `json:"leader,omitempty"`
}

// BuildComparisonModel lays out the eight components plus the total for each profile.
func BuildComparisonModel(profiles []Profile) ComparisonRenderModel {
	model := ComparisonRenderModel{
		Profiles: make([]string, len(profiles)),
		Bands:    make([]string, len(profiles)),
	}
	best := -1
	for i, p := range profiles {
		model.Profiles[i] = p.Name
		model.Bands[i] = GetPlainLabel(p.TotalScore)
		if best < 0 || p.TotalScore > profiles[best].TotalScore {
			best = i
		}
	}
	if best >= 0 {
		model.Leader = profiles[best].Name
	}

	keys := append(append([]ComponentKey{}, AllComponents...), ComponentTotal)
	for _, key := range keys {
		row := ComparisonRow{Key: key, Label: ComponentLabels[key], Values: make([]int, len(profiles))}
		for i, p := range profiles {
			row.Values[i] = p.Scores.Component(key)
		}
		model.Rows = append(model.Rows, row)
	}
	return model
}

// ProfileDetail is one detail page of the report.
type ProfileDetail struct {
	Name       string      `json:"name"`
	TotalScore int         `json:"totalScore"`
	Band       string      `json:"band"`
	Rows       [][2]string `json:"rows"`
}

// ReportRenderModel holds everything the paginated report prints.
type ReportRenderModel struct {
	Title       string                `json:"title"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Comparison  ComparisonRenderModel `json:"comparison"`
	GuideTitle  string                `json:"guideTitle"`
	Bands       []ScoreBand           `json:"bands"`
	GuideNote   string                `json:"guideNote"`
	Details     []ProfileDetail       `json:"details"`
}

// ReportTitle is the heading of the paginated report.
const ReportTitle = "Canada CRS Calculator Results"

// BuildReportModel assembles the report for a set of evaluated profiles.
func BuildReportModel(profiles []Profile, generatedAt time.Time) ReportRenderModel {
	model := ReportRenderModel{
		Title:       ReportTitle,
		GeneratedAt: generatedAt,
		Comparison:  BuildComparisonModel(profiles),
		GuideTitle:  GuideTitle,
		Bands:       ScoreBands,
		GuideNote:   GuideNote,
	}
	for _, p := range profiles {
		model.Details = append(model.Details, ProfileDetail{
			Name:       p.Name,
			TotalScore: p.TotalScore,
			Band:       GetPlainLabel(p.TotalScore),
			Rows:       p.Inputs.DetailRows(),
		})
	}
	return model
}

// BandsRenderModel is the output of the bands command.
type BandsRenderModel struct {
	Title string      `json:"title"`
	Bands []ScoreBand `json:"bands"`
	Note  string      `json:"note"`
}

// ScoreRenderModel is the output of the score command.
type ScoreRenderModel struct {
	Name            string                    `json:"name"`
	Inputs          ApplicantInput            `json:"inputs"`
	Scores          ScoreBreakdown            `json:"scores"`
	TotalScore      int                       `json:"totalScore"`
	Band            ScoreBand                 `json:"band"`
	Transferability *TransferabilityBreakdown `json:"transferability,omitempty"`
}

// BuildScoreModel wraps one evaluated profile. A nil explanation omits the sub-rule table.
func BuildScoreModel(p Profile, explain *TransferabilityBreakdown) ScoreRenderModel {
	return ScoreRenderModel{
		Name:            p.Name,
		Inputs:          p.Inputs,
		Scores:          p.Scores,
		TotalScore:      p.TotalScore,
		Band:            BandFor(p.TotalScore),
		Transferability: explain,
	}
}

// TransferabilityRow is one labelled line of the skill transferability explanation.
type TransferabilityRow struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Rows lists the sub-rules, pair caps and total in display order.
func (t TransferabilityBreakdown) Rows() []TransferabilityRow {
	return []TransferabilityRow{
		{"educationLanguage", "Education + Language", t.EducationLanguage},
		{"educationCanadian", "Education + Canadian Work", t.EducationCanadian},
		{"educationPair", "Education Subtotal (max 50)", t.EducationPair},
		{"foreignLanguage", "Foreign Work + Language", t.ForeignLanguage},
		{"foreignCanadian", "Foreign + Canadian Work", t.ForeignCanadian},
		{"foreignPair", "Foreign Work Subtotal (max 50)", t.ForeignPair},
		{"certificateLanguage", "Certificate + Language", t.CertificateLanguage},
		{"total", "Skill Transferability (max 100)", t.Total},
	}
}

// BuildBandsModel returns the interpretation guide.
func BuildBandsModel() BandsRenderModel {
	return BandsRenderModel{Title: GuideTitle, Bands: ScoreBands, Note: GuideNote}
}
