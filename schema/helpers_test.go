package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{" no ", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	in := ApplicantInput{
		Age:                          -3,
		EducationLevel:               "diploma",
		FirstLanguage:                LanguageAbility{Speaking: 12, Listening: -1, Reading: 10, Writing: 5},
		SecondLanguage:               LanguageAbility{Speaking: 99},
		CanadianWorkExperience:       -2,
		ForeignWorkExperience:        7,
		SpouseEducationLevel:         "",
		SpouseCanadianWorkExperience: 9,
		FrenchLanguage:               "fluent",
		CanadianEducation:            "phd",
	}

	out := in.Normalize()
	assert.Equal(t, 0, out.Age)
	assert.Equal(t, EducationNone, out.EducationLevel)
	assert.Equal(t, LanguageAbility{Speaking: 10, Listening: 0, Reading: 10, Writing: 5}, out.FirstLanguage)
	assert.Equal(t, 10, out.SecondLanguage.Speaking)
	assert.Equal(t, 0, out.CanadianWorkExperience)
	assert.Equal(t, 7, out.ForeignWorkExperience)
	assert.Equal(t, 9, out.SpouseCanadianWorkExperience)
	assert.Equal(t, EducationNone, out.SpouseEducationLevel)
	assert.Equal(t, FrenchNone, out.FrenchLanguage)
	assert.Equal(t, CanadianEducationNone, out.CanadianEducation)

	// Input struct is a value; the original stays as it was.
	assert.Equal(t, -3, in.Age)
}

func TestNormalizeKeepsValidInput(t *testing.T) {
	in := DefaultApplicantInput()
	assert.Equal(t, in, in.Normalize())

	in.Age = 150
	assert.Equal(t, MaxAge, in.Normalize().Age)
}

func TestSetField(t *testing.T) {
	base := DefaultApplicantInput()

	tests := []struct {
		key   string
		value string
		check func(t *testing.T, got ApplicantInput)
	}{
		{"age", "35", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 35, got.Age) }},
		{"hasSpouse", "yes", func(t *testing.T, got ApplicantInput) { assert.True(t, got.HasSpouse) }},
		{"educationLevel", "PhD", func(t *testing.T, got ApplicantInput) { assert.Equal(t, EducationPhD, got.EducationLevel) }},
		{"firstLanguage.reading", "7", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 7, got.FirstLanguage.Reading) }},
		{"secondLanguage.writing", "15", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 10, got.SecondLanguage.Writing) }},
		{"spouseLanguage.listening", "6", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 6, got.SpouseLanguage.Listening) }},
		{"canadianWorkExperience", "8", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 8, got.CanadianWorkExperience) }},
		{"foreignWorkExperience", "-1", func(t *testing.T, got ApplicantInput) { assert.Equal(t, 0, got.ForeignWorkExperience) }},
		{"frenchLanguage", "high-french-high-english", func(t *testing.T, got ApplicantInput) {
			assert.Equal(t, FrenchHighWithHighEnglish, got.FrenchLanguage)
		}},
		{"canadianEducation", "three-years-or-more", func(t *testing.T, got ApplicantInput) {
			assert.Equal(t, CanadianEducationThreePlus, got.CanadianEducation)
		}},
		{"provincialNomination", "true", func(t *testing.T, got ApplicantInput) { assert.True(t, got.ProvincialNomination) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := base.SetField(tt.key, tt.value)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSetFieldErrors(t *testing.T) {
	base := DefaultApplicantInput()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"unknown field", "salary", "100", ErrUnknownField},
		{"unknown language group", "thirdLanguage.reading", "5", ErrUnknownField},
		{"unknown channel", "firstLanguage.typing", "5", ErrUnknownField},
		{"non integer age", "age", "thirty", ErrInvalidFieldValue},
		{"bad boolean", "hasSpouse", "perhaps", ErrInvalidFieldValue},
		{"bad enum", "educationLevel", "diploma", ErrInvalidFieldValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.SetField(tt.key, tt.value)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, base, got, "rejected edits must return the original input")
		})
	}
}

func TestFieldKeysAreSettable(t *testing.T) {
	base := DefaultApplicantInput()
	for _, key := range FieldKeys {
		value := "1"
		switch key {
		case "educationLevel", "spouseEducationLevel", "frenchLanguage", "canadianEducation":
			value = "none"
		}
		_, err := base.SetField(key, value)
		assert.NoError(t, err, key)
	}
}

func TestParseAssignment(t *testing.T) {
	key, value, err := ParseAssignment(" age = 31 ")
	require.NoError(t, err)
	assert.Equal(t, "age", key)
	assert.Equal(t, "31", value)

	_, _, err = ParseAssignment("age")
	assert.Error(t, err)

	_, _, err = ParseAssignment("=5")
	assert.Error(t, err)
}

func TestValidateProfileSet(t *testing.T) {
	assert.NoError(t, ValidateProfileSet(DefaultProfileInputs()))
	assert.NoError(t, ValidateProfileSet(nil))

	four := append(DefaultProfileInputs(), ProfileInput{Name: "Profile 4"})
	assert.ErrorIs(t, ValidateProfileSet(four), ErrTooManyProfiles)

	dup := []ProfileInput{{Name: "A"}, {Name: "A "}}
	assert.ErrorIs(t, ValidateProfileSet(dup), ErrDuplicateProfile)

	empty := []ProfileInput{{Name: "  "}}
	assert.ErrorIs(t, ValidateProfileSet(empty), ErrEmptyProfileName)
}

func TestFindProfile(t *testing.T) {
	inputs := DefaultProfileInputs()
	assert.Equal(t, 1, FindProfile(inputs, "profile 2"))
	assert.Equal(t, -1, FindProfile(inputs, "Profile 9"))

	profiles := []Profile{{Name: "Alpha"}, {Name: "Beta"}}
	assert.Equal(t, 1, FindProfile(profiles, "Beta"))
}

func TestDetailRows(t *testing.T) {
	in := DefaultApplicantInput()
	in.ForeignWorkExperience = 1
	rows := in.DetailRows()
	require.Len(t, rows, 12)
	assert.Equal(t, [2]string{"Age", "30"}, rows[0])
	assert.Equal(t, [2]string{"First Language", "S:10, L:10, R:10, W:10"}, rows[3])
	assert.Equal(t, [2]string{"Canadian Work Experience", "0 years"}, rows[5])
	assert.Equal(t, [2]string{"Foreign Work Experience", "1 years"}, rows[6])

	// Experience is listed as entered, not as its scoring tier.
	for _, years := range []int{0, 2, 7} {
		in.ForeignWorkExperience = years
		assert.Equal(t, fmt.Sprintf("%d years", years), in.DetailRows()[6][1])
	}

	in.HasSpouse = true
	assert.Len(t, in.DetailRows(), 15)
}

func FuzzSetField(f *testing.F) {
	f.Add("age", "30")
	f.Add("firstLanguage.speaking", "11")
	f.Add("educationLevel", "masters")
	f.Add("hasSpouse", "maybe")
	f.Fuzz(func(t *testing.T, key, value string) {
		got, err := DefaultApplicantInput().SetField(key, value)
		if err != nil {
			return
		}
		// Accepted edits are always normalized.
		if got != got.Normalize() {
			t.Fatalf("SetField(%q, %q) returned a non-normalized input", key, value)
		}
	})
}
