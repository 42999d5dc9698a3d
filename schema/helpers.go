package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Errors shared by the store, the document codecs and the CLI.
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrTooManyProfiles   = fmt.Errorf("a comparison set holds at most %d profiles", MaxProfiles)
	ErrDuplicateProfile  = errors.New("duplicate profile name")
	ErrEmptyProfileName  = errors.New("profile name cannot be empty")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Input boundary limits.
const (
	MaxAge      = 120
	MaxCLBLevel = 10
)

// Field keys accepted by SetField, in form order.
var FieldKeys = []string{
	"hasSpouse",
	"age",
	"educationLevel",
	"firstLanguage.speaking",
	"firstLanguage.listening",
	"firstLanguage.reading",
	"firstLanguage.writing",
	"secondLanguage.speaking",
	"secondLanguage.listening",
	"secondLanguage.reading",
	"secondLanguage.writing",
	"canadianWorkExperience",
	"foreignWorkExperience",
	"certificateOfQualification",
	"spouseEducationLevel",
	"spouseLanguage.speaking",
	"spouseLanguage.listening",
	"spouseLanguage.reading",
	"spouseLanguage.writing",
	"spouseCanadianWorkExperience",
	"hasSiblingInCanada",
	"frenchLanguage",
	"canadianEducation",
	"provincialNomination",
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (l LanguageAbility) normalize() LanguageAbility {
	return LanguageAbility{
		Speaking:  clamp(l.Speaking, 0, MaxCLBLevel),
		Listening: clamp(l.Listening, 0, MaxCLBLevel),
		Reading:   clamp(l.Reading, 0, MaxCLBLevel),
		Writing:   clamp(l.Writing, 0, MaxCLBLevel),
	}
}

// Normalize clamps every integer into its documented range and resets unknown
// enum values to their "none" member. Work experience keeps values above five;
// the scoring tables map those to the top tier.
func (in ApplicantInput) Normalize() ApplicantInput {
	out := in
	out.Age = clamp(in.Age, 0, MaxAge)
	out.FirstLanguage = in.FirstLanguage.normalize()
	out.SecondLanguage = in.SecondLanguage.normalize()
	out.SpouseLanguage = in.SpouseLanguage.normalize()
	out.CanadianWorkExperience = max(in.CanadianWorkExperience, 0)
	out.ForeignWorkExperience = max(in.ForeignWorkExperience, 0)
	out.SpouseCanadianWorkExperience = max(in.SpouseCanadianWorkExperience, 0)
	if _, ok := ValidEducationLevels[out.EducationLevel]; !ok {
		out.EducationLevel = EducationNone
	}
	if _, ok := ValidEducationLevels[out.SpouseEducationLevel]; !ok {
		out.SpouseEducationLevel = EducationNone
	}
	if _, ok := ValidFrenchTiers[out.FrenchLanguage]; !ok {
		out.FrenchLanguage = FrenchNone
	}
	if _, ok := ValidCanadianEducationTiers[out.CanadianEducation]; !ok {
		out.CanadianEducation = CanadianEducationNone
	}
	return out
}

// SetField applies a single "key=value" style mutation and returns the normalized result.
// The receiver is left untouched so a rejected edit never corrupts the caller's copy.
func (in ApplicantInput) SetField(key, value string) (ApplicantInput, error) {
	out := in
	value = strings.TrimSpace(value)

	if group, channel, ok := strings.Cut(key, "."); ok {
		var target *LanguageAbility
		switch group {
		case "firstLanguage":
			target = &out.FirstLanguage
		case "secondLanguage":
			target = &out.SecondLanguage
		case "spouseLanguage":
			target = &out.SpouseLanguage
		default:
			return in, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
		level, err := parseIntField(key, value)
		if err != nil {
			return in, err
		}
		switch channel {
		case "speaking":
			target.Speaking = level
		case "listening":
			target.Listening = level
		case "reading":
			target.Reading = level
		case "writing":
			target.Writing = level
		default:
			return in, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
		return out.Normalize(), nil
	}

	var err error
	switch key {
	case "hasSpouse":
		out.HasSpouse, err = parseBoolField(key, value)
	case "certificateOfQualification":
		out.CertificateOfQualification, err = parseBoolField(key, value)
	case "hasSiblingInCanada":
		out.HasSiblingInCanada, err = parseBoolField(key, value)
	case "provincialNomination":
		out.ProvincialNomination, err = parseBoolField(key, value)
	case "age":
		out.Age, err = parseIntField(key, value)
	case "canadianWorkExperience":
		out.CanadianWorkExperience, err = parseIntField(key, value)
	case "foreignWorkExperience":
		out.ForeignWorkExperience, err = parseIntField(key, value)
	case "spouseCanadianWorkExperience":
		out.SpouseCanadianWorkExperience, err = parseIntField(key, value)
	case "educationLevel":
		out.EducationLevel, err = parseEnumField(key, value, ValidEducationLevels)
	case "spouseEducationLevel":
		out.SpouseEducationLevel, err = parseEnumField(key, value, ValidEducationLevels)
	case "frenchLanguage":
		out.FrenchLanguage, err = parseEnumField(key, value, ValidFrenchTiers)
	case "canadianEducation":
		out.CanadianEducation, err = parseEnumField(key, value, ValidCanadianEducationTiers)
	default:
		return in, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if err != nil {
		return in, err
	}
	return out.Normalize(), nil
}

// ParseAssignment splits "key=value".
func ParseAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return key, strings.TrimSpace(value), nil
}

func parseBoolField(key, value string) (bool, error) {
	b, err := ParseBoolString(value)
	if err != nil {
		return false, fmt.Errorf("%w for %s: %v", ErrInvalidFieldValue, key, err)
	}
	return b, nil
}

func parseIntField(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w for %s: %q is not an integer", ErrInvalidFieldValue, key, value)
	}
	return n, nil
}

func parseEnumField[T ~string](key, value string, valid map[T]struct{}) (T, error) {
	v := T(strings.ToLower(value))
	if _, ok := valid[v]; ok {
		return v, nil
	}
	options := make([]string, 0, len(valid))
	for k := range valid {
		options = append(options, string(k))
	}
	slices.Sort(options)
	return "", fmt.Errorf("%w for %s: %q (expected one of %s)", ErrInvalidFieldValue, key, value, strings.Join(options, ", "))
}

// ValidateProfileSet checks the names of a comparison set.
func ValidateProfileSet(profiles []ProfileInput) error {
	if len(profiles) > MaxProfiles {
		return fmt.Errorf("%w (got %d)", ErrTooManyProfiles, len(profiles))
	}
	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return ErrEmptyProfileName
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProfile, name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// FindProfile returns the index of the named profile, or -1.
func FindProfile[T interface{ ProfileInput | Profile }](profiles []T, name string) int {
	for i, p := range profiles {
		var n string
		switch v := any(p).(type) {
		case ProfileInput:
			n = v.Name
		case Profile:
			n = v.Name
		}
		if strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// yesNo renders a boolean the way report detail pages show it.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatLanguage renders a language ability as "S:x, L:x, R:x, W:x".
func FormatLanguage(l LanguageAbility) string {
	return fmt.Sprintf("S:%d, L:%d, R:%d, W:%d", l.Speaking, l.Listening, l.Reading, l.Writing)
}

func labelOr[T ~string](labels map[T]string, v T) string {
	if s, ok := labels[v]; ok {
		return s
	}
	return string(v)
}

// DetailRows lists every raw input field as label/value pairs. Spouse rows are
// only included when the applicant has a spouse.
func (in ApplicantInput) DetailRows() [][2]string {
	rows := [][2]string{
		{"Age", strconv.Itoa(in.Age)},
		{"Has Spouse", yesNo(in.HasSpouse)},
		{"Education Level", labelOr(EducationLabels, in.EducationLevel)},
		{"First Language", FormatLanguage(in.FirstLanguage)},
		{"Second Language", FormatLanguage(in.SecondLanguage)},
		{"Canadian Work Experience", fmt.Sprintf("%d years", in.CanadianWorkExperience)},
		{"Foreign Work Experience", fmt.Sprintf("%d years", in.ForeignWorkExperience)},
		{"Certificate of Qualification", yesNo(in.CertificateOfQualification)},
		{"Has Sibling in Canada", yesNo(in.HasSiblingInCanada)},
		{"French Language Proficiency", labelOr(FrenchLabels, in.FrenchLanguage)},
		{"Canadian Education", labelOr(CanadianEducationLabels, in.CanadianEducation)},
		{"Provincial Nomination", yesNo(in.ProvincialNomination)},
	}
	if in.HasSpouse {
		rows = append(rows,
			[2]string{"Spouse Education Level", labelOr(EducationLabels, in.SpouseEducationLevel)},
			[2]string{"Spouse Language", FormatLanguage(in.SpouseLanguage)},
			[2]string{"Spouse Canadian Work Experience", fmt.Sprintf("%d years", in.SpouseCanadianWorkExperience)},
		)
	}
	return rows
}
