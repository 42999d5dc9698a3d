package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/crs/core/algo"
	"github.com/huangsam/crs/internal/profiledoc"
	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProfileListTable(t *testing.T) {
	ranked := schema.EnrichProfiles(algo.RankProfiles(sampleProfiles()))

	var buf bytes.Buffer
	require.NoError(t, writeProfileListTable(&buf, ranked, plainConfig(schema.TextOut)))

	output := buf.String()
	assert.Less(t, strings.Index(output, "Nominated"), strings.Index(output, "Single"))
	assert.Contains(t, output, schema.BandVeryHigh)
}

func TestWriteProfileListCSV(t *testing.T) {
	ranked := schema.EnrichProfiles(algo.RankProfiles(sampleProfiles()))

	var buf bytes.Buffer
	require.NoError(t, writeProfileListCSV(&buf, ranked))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"rank", "name", "total", "band"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Nominated", records[1][1])
}

func TestWriteProfileDocumentRoundTrip(t *testing.T) {
	profiles := sampleProfiles()

	for _, ext := range []string{".json", ".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profiles"+ext)
			format, err := profiledoc.FormatFromPath(path)
			require.NoError(t, err)
			require.NoError(t, WriteProfileDocument(profiles, format, path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			decoded, err := profiledoc.Decode(path, data)
			require.NoError(t, err)
			require.Len(t, decoded, len(profiles))
			for i, p := range profiles {
				assert.Equal(t, p.ToInput(), decoded[i])
			}
		})
	}
}
