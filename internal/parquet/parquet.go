// Package parquet exports evaluated CRS profiles to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/crs/schema"
	"github.com/parquet-go/parquet-go"
)

// ProfileScoreRow is one evaluated profile flattened into columns.
type ProfileScoreRow struct {
	// ProfileName is the name of the profile in the comparison set
	ProfileName string `parquet:"profile_name,snappy"`

	// ExportTime is when the export ran (stored as TIMESTAMP with nanosecond precision)
	ExportTime time.Time `parquet:"export_time,snappy"`

	// RuleSet identifies the point tables used for scoring
	RuleSet string `parquet:"rule_set,snappy"`

	// Raw inputs
	Age                        int32  `parquet:"age,snappy"`
	HasSpouse                  bool   `parquet:"has_spouse,snappy"`
	EducationLevel             string `parquet:"education_level,snappy"`
	FirstLanguageSpeaking      int32  `parquet:"first_language_speaking,snappy"`
	FirstLanguageListening     int32  `parquet:"first_language_listening,snappy"`
	FirstLanguageReading       int32  `parquet:"first_language_reading,snappy"`
	FirstLanguageWriting       int32  `parquet:"first_language_writing,snappy"`
	SecondLanguageSpeaking     int32  `parquet:"second_language_speaking,snappy"`
	SecondLanguageListening    int32  `parquet:"second_language_listening,snappy"`
	SecondLanguageReading      int32  `parquet:"second_language_reading,snappy"`
	SecondLanguageWriting      int32  `parquet:"second_language_writing,snappy"`
	CanadianWorkExperience     int32  `parquet:"canadian_work_experience,snappy"`
	ForeignWorkExperience      int32  `parquet:"foreign_work_experience,snappy"`
	CertificateOfQualification bool   `parquet:"certificate_of_qualification,snappy"`
	HasSiblingInCanada         bool   `parquet:"has_sibling_in_canada,snappy"`
	FrenchLanguage             string `parquet:"french_language,snappy"`
	CanadianEducation          string `parquet:"canadian_education,snappy"`
	ProvincialNomination       bool   `parquet:"provincial_nomination,snappy"`

	// Spouse inputs are null when the applicant has no spouse
	SpouseEducationLevel         *string `parquet:"spouse_education_level,optional,snappy"`
	SpouseLanguageMin            *int32  `parquet:"spouse_language_min,optional,snappy"`
	SpouseCanadianWorkExperience *int32  `parquet:"spouse_canadian_work_experience,optional,snappy"`

	// Component scores
	ScoreAge                  int32 `parquet:"score_age,snappy"`
	ScoreEducation            int32 `parquet:"score_education,snappy"`
	ScoreFirstLanguage        int32 `parquet:"score_first_language,snappy"`
	ScoreSecondLanguage       int32 `parquet:"score_second_language,snappy"`
	ScoreCanadianWork         int32 `parquet:"score_canadian_work,snappy"`
	ScoreSpouseFactors        int32 `parquet:"score_spouse_factors,snappy"`
	ScoreSkillTransferability int32 `parquet:"score_skill_transferability,snappy"`
	ScoreAdditionalPoints     int32 `parquet:"score_additional_points,snappy"`

	// TotalScore is the sum of the eight components
	TotalScore int32 `parquet:"total_score,snappy"`

	// BandLabel is the interpretation guide band of the total
	BandLabel string `parquet:"band_label,snappy"`
}

// ProfileScoreRows flattens evaluated profiles, stamping each row with the export time.
func ProfileScoreRows(profiles []schema.Profile, exportTime time.Time) []ProfileScoreRow {
	rows := make([]ProfileScoreRow, len(profiles))
	for i, p := range profiles {
		in, s := p.Inputs, p.Scores
		row := ProfileScoreRow{
			ProfileName:                p.Name,
			ExportTime:                 exportTime,
			RuleSet:                    schema.RuleSetVersion,
			Age:                        int32(in.Age),
			HasSpouse:                  in.HasSpouse,
			EducationLevel:             string(in.EducationLevel),
			FirstLanguageSpeaking:      int32(in.FirstLanguage.Speaking),
			FirstLanguageListening:     int32(in.FirstLanguage.Listening),
			FirstLanguageReading:       int32(in.FirstLanguage.Reading),
			FirstLanguageWriting:       int32(in.FirstLanguage.Writing),
			SecondLanguageSpeaking:     int32(in.SecondLanguage.Speaking),
			SecondLanguageListening:    int32(in.SecondLanguage.Listening),
			SecondLanguageReading:      int32(in.SecondLanguage.Reading),
			SecondLanguageWriting:      int32(in.SecondLanguage.Writing),
			CanadianWorkExperience:     int32(in.CanadianWorkExperience),
			ForeignWorkExperience:      int32(in.ForeignWorkExperience),
			CertificateOfQualification: in.CertificateOfQualification,
			HasSiblingInCanada:         in.HasSiblingInCanada,
			FrenchLanguage:             string(in.FrenchLanguage),
			CanadianEducation:          string(in.CanadianEducation),
			ProvincialNomination:       in.ProvincialNomination,
			ScoreAge:                   int32(s.Age),
			ScoreEducation:             int32(s.Education),
			ScoreFirstLanguage:         int32(s.FirstLanguage),
			ScoreSecondLanguage:        int32(s.SecondLanguage),
			ScoreCanadianWork:          int32(s.CanadianWorkExperience),
			ScoreSpouseFactors:         int32(s.SpouseFactors),
			ScoreSkillTransferability:  int32(s.SkillTransferability),
			ScoreAdditionalPoints:      int32(s.AdditionalPoints),
			TotalScore:                 int32(p.TotalScore),
			BandLabel:                  schema.GetPlainLabel(p.TotalScore),
		}
		if in.HasSpouse {
			education := string(in.SpouseEducationLevel)
			langMin := int32(in.SpouseLanguage.Min())
			work := int32(in.SpouseCanadianWorkExperience)
			row.SpouseEducationLevel = &education
			row.SpouseLanguageMin = &langMin
			row.SpouseCanadianWorkExperience = &work
		}
		rows[i] = row
	}
	return rows
}

// WriteProfileScoresParquet writes a slice of ProfileScoreRow structs to a Parquet file.
func WriteProfileScoresParquet(data []ProfileScoreRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ProfileScoreRow struct tags
	writer := parquet.NewGenericWriter[ProfileScoreRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
