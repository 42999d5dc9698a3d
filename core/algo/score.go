// Package algo holds the CRS point tables and the pure scoring functions built on them.
package algo

import "github.com/huangsam/crs/schema"

// Evaluate scores every component of the input and returns the breakdown with its total.
// It reads nothing but its argument. Values outside a table's domain score zero.
func Evaluate(in schema.ApplicantInput) schema.ScoreBreakdown {
	b := schema.ScoreBreakdown{
		Age:                    AgePoints(in.Age, in.HasSpouse),
		Education:              EducationPoints(in.EducationLevel, in.HasSpouse),
		FirstLanguage:          FirstLanguagePoints(in.FirstLanguage, in.HasSpouse),
		SecondLanguage:         SecondLanguagePoints(in.SecondLanguage, in.HasSpouse),
		CanadianWorkExperience: CanadianWorkPoints(in.CanadianWorkExperience, in.HasSpouse),
		SpouseFactors:          SpousePoints(in),
		SkillTransferability:   ExplainTransferability(in).Total,
		AdditionalPoints:       AdditionalPoints(in),
	}
	b.Total = b.Sum()
	return b
}

// AgePoints returns the age component.
func AgePoints(age int, hasSpouse bool) int {
	if age < minScoredAge || age > maxScoredAge {
		return 0
	}
	return ageTable[age-minScoredAge].pick(hasSpouse)
}

// EducationPoints returns the education component.
func EducationPoints(level schema.EducationLevel, hasSpouse bool) int {
	return educationTable[level].pick(hasSpouse)
}

// FirstLanguagePoints sums the per-channel first official language points.
func FirstLanguagePoints(l schema.LanguageAbility, hasSpouse bool) int {
	total := 0
	for _, level := range l.Channels() {
		if level < 0 || level > schema.MaxCLBLevel {
			continue
		}
		total += firstLanguageTable[level].pick(hasSpouse)
	}
	return total
}

// SecondLanguagePoints sums the per-channel second official language points, capped
// at 22 with a spouse and 24 without.
func SecondLanguagePoints(l schema.LanguageAbility, hasSpouse bool) int {
	total := 0
	for _, level := range l.Channels() {
		if level < 0 || level > schema.MaxCLBLevel {
			continue
		}
		total += secondLanguageTable[level]
	}
	return min(total, secondLanguageCap.pick(hasSpouse))
}

// CanadianWorkPoints returns the Canadian work experience component.
func CanadianWorkPoints(years int, hasSpouse bool) int {
	if years <= 0 {
		return 0
	}
	return canadianWorkTable[min(years, len(canadianWorkTable)-1)].pick(hasSpouse)
}

// spouseLanguageChannel maps one spouse CLB level to points.
func spouseLanguageChannel(level int) int {
	switch {
	case level <= 4:
		return 0
	case level <= 6:
		return 1
	case level <= 8:
		return 3
	default:
		return 5
	}
}

// SpousePoints returns the spouse factors component, zero without a spouse.
func SpousePoints(in schema.ApplicantInput) int {
	if !in.HasSpouse {
		return 0
	}
	total := spouseEducationTable[in.SpouseEducationLevel]
	for _, level := range in.SpouseLanguage.Channels() {
		total += spouseLanguageChannel(level)
	}
	if years := in.SpouseCanadianWorkExperience; years > 0 {
		total += spouseCanadianWorkTable[min(years, len(spouseCanadianWorkTable)-1)]
	}
	return total
}

// clbTier returns full for min-CLB >= 9, partial for >= 7 and zero otherwise.
func clbTier(minCLB, full, partial int) int {
	switch {
	case minCLB >= transferabilityHighCLB:
		return full
	case minCLB >= transferabilityModerateCLB:
		return partial
	default:
		return 0
	}
}

// ExplainTransferability evaluates the five skill transferability sub-rules.
func ExplainTransferability(in schema.ApplicantInput) schema.TransferabilityBreakdown {
	var t schema.TransferabilityBreakdown
	minCLB := in.FirstLanguage.Min()
	canadian := in.CanadianWorkExperience
	foreign := in.ForeignWorkExperience

	if in.EducationLevel.IsHigherEducation() {
		t.EducationLanguage = clbTier(minCLB, 50, 25)
		switch {
		case canadian >= 2:
			t.EducationCanadian = 50
		case canadian >= 1:
			t.EducationCanadian = 25
		}
	}
	t.EducationPair = min(t.EducationLanguage+t.EducationCanadian, transferabilityPairCap)

	switch {
	case foreign >= 3:
		t.ForeignLanguage = clbTier(minCLB, 50, 25)
	case foreign >= 1:
		t.ForeignLanguage = clbTier(minCLB, 25, 12)
	}
	switch {
	case foreign >= 3 && canadian >= 2:
		t.ForeignCanadian = 50
	case foreign >= 3 && canadian >= 1:
		t.ForeignCanadian = 25
	case foreign >= 1 && canadian >= 2:
		t.ForeignCanadian = 25
	case foreign >= 1 && canadian >= 1:
		t.ForeignCanadian = 12
	}
	t.ForeignPair = min(t.ForeignLanguage+t.ForeignCanadian, transferabilityPairCap)

	if in.CertificateOfQualification {
		t.CertificateLanguage = clbTier(minCLB, 50, 25)
	}

	t.Total = min(t.EducationPair+t.ForeignPair+t.CertificateLanguage, transferabilityOverallCap)
	return t
}

// AdditionalPoints sums the bonus awards. There is no overall cap.
func AdditionalPoints(in schema.ApplicantInput) int {
	total := frenchPoints[in.FrenchLanguage] + canadianEducationPoints[in.CanadianEducation]
	if in.HasSiblingInCanada {
		total += siblingPoints
	}
	if in.ProvincialNomination {
		total += nominationPoints
	}
	return total
}
