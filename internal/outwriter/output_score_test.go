package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/huangsam/crs/core/algo"
	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScoreText(t *testing.T) {
	p := sampleProfiles()[0]

	tests := []struct {
		name        string
		explain     bool
		detail      bool
		contains    []string
		notContains []string
	}{
		{
			name:        "breakdown only",
			contains:    []string{"Single", "Skill Transferability", "Total Score", "411", "Outlook: Possible (410-470)"},
			notContains: []string{"Education Subtotal (max 50)", "First Language Proficiency"},
		},
		{
			name:     "with explanation",
			explain:  true,
			contains: []string{"Education + Language", "Education Subtotal (max 50)", "Skill Transferability (max 100)"},
		},
		{
			name:     "with detail",
			detail:   true,
			contains: []string{"Education Level", "S:10, L:10, R:10, W:10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var explain *schema.TransferabilityBreakdown
			if tt.explain {
				e := algo.ExplainTransferability(p.Inputs)
				explain = &e
			}
			cfg := plainConfig(schema.TextOut)
			cfg.Detail = tt.detail

			var buf bytes.Buffer
			require.NoError(t, writeScoreText(&buf, schema.BuildScoreModel(p, explain), cfg))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteScoreCSV(t *testing.T) {
	p := sampleProfiles()[0]
	explain := algo.ExplainTransferability(p.Inputs)

	var buf bytes.Buffer
	require.NoError(t, writeScoreCSV(&buf, schema.BuildScoreModel(p, &explain)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(schema.AllComponents)+1+len(explain.Rows()))
	assert.Equal(t, []string{"profile", "component", "points"}, records[0])
	assert.Equal(t, []string{"Single", "total", "411"}, records[len(schema.AllComponents)+1])
	assert.Equal(t, []string{"Single", "transferability.educationLanguage", "50"}, records[len(schema.AllComponents)+2])
}
