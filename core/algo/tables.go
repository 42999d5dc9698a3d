package algo

import "github.com/huangsam/crs/schema"

// points holds the with-spouse and single variants of one table cell.
type points struct {
	spouse int
	single int
}

func (p points) pick(hasSpouse bool) int {
	if hasSpouse {
		return p.spouse
	}
	return p.single
}

// Age table bounds. Ages outside [minScoredAge, maxScoredAge] earn nothing.
const (
	minScoredAge = 18
	maxScoredAge = 44
)

// ageTable is indexed by age - minScoredAge.
var ageTable = [maxScoredAge - minScoredAge + 1]points{
	{90, 99},   // 18
	{95, 105},  // 19
	{100, 110}, // 20
	{100, 110}, // 21
	{100, 110}, // 22
	{100, 110}, // 23
	{100, 110}, // 24
	{100, 110}, // 25
	{100, 110}, // 26
	{100, 110}, // 27
	{100, 110}, // 28
	{100, 110}, // 29
	{95, 105},  // 30
	{90, 99},   // 31
	{85, 94},   // 32
	{80, 88},   // 33
	{75, 83},   // 34
	{70, 77},   // 35
	{65, 72},   // 36
	{60, 66},   // 37
	{55, 61},   // 38
	{50, 55},   // 39
	{45, 50},   // 40
	{35, 39},   // 41
	{25, 28},   // 42
	{15, 17},   // 43
	{5, 6},     // 44
}

var educationTable = map[schema.EducationLevel]points{
	schema.EducationNone:      {0, 0},
	schema.EducationSecondary: {28, 30},
	schema.EducationOneYear:   {84, 90},
	schema.EducationTwoYear:   {91, 98},
	schema.EducationBachelors: {112, 120},
	schema.EducationTwoOrMore: {119, 128},
	schema.EducationMasters:   {126, 135},
	schema.EducationPhD:       {140, 150},
}

// firstLanguageTable is indexed by CLB level, per channel.
var firstLanguageTable = [schema.MaxCLBLevel + 1]points{
	{0, 0},   // 0
	{0, 0},   // 1
	{0, 0},   // 2
	{0, 0},   // 3
	{6, 6},   // 4
	{6, 6},   // 5
	{8, 9},   // 6
	{16, 17}, // 7
	{22, 23}, // 8
	{29, 31}, // 9
	{32, 34}, // 10
}

// secondLanguageTable is indexed by CLB level, per channel. Same for both variants.
var secondLanguageTable = [schema.MaxCLBLevel + 1]int{0, 0, 0, 0, 0, 1, 1, 3, 3, 6, 6}

// Second official language caps.
var secondLanguageCap = points{spouse: 22, single: 24}

// Canadian work experience is indexed by years; anything above the last row uses it.
var canadianWorkTable = [6]points{
	{0, 0},
	{35, 40},
	{46, 53},
	{56, 64},
	{63, 72},
	{70, 80},
}

var spouseEducationTable = map[schema.EducationLevel]int{
	schema.EducationNone:      0,
	schema.EducationSecondary: 2,
	schema.EducationOneYear:   6,
	schema.EducationTwoYear:   7,
	schema.EducationBachelors: 8,
	schema.EducationTwoOrMore: 9,
	schema.EducationMasters:   10,
	schema.EducationPhD:       10,
}

var spouseCanadianWorkTable = [6]int{0, 5, 7, 8, 9, 10}

// Additional point awards.
const (
	siblingPoints              = 15
	nominationPoints           = 600
	transferabilityPairCap     = 50
	transferabilityOverallCap  = 100
	transferabilityHighCLB     = 9
	transferabilityModerateCLB = 7
)

var frenchPoints = map[schema.FrenchTier]int{
	schema.FrenchNone:                0,
	schema.FrenchHighWithLowEnglish:  25,
	schema.FrenchHighWithHighEnglish: 50,
}

var canadianEducationPoints = map[schema.CanadianEducationTier]int{
	schema.CanadianEducationNone:      0,
	schema.CanadianEducationShort:     15,
	schema.CanadianEducationThreePlus: 30,
}
