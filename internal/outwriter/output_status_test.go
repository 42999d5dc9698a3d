package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStoreStatusToFile(t *testing.T) {
	status := schema.StoreStatus{Backend: "none", Connected: true, Location: "memory", TotalProfiles: 2, RuleSet: schema.RuleSetVersion}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "status.json")
	cfg := plainConfig(schema.JSONOut)
	cfg.OutputFile = jsonPath
	require.NoError(t, WriteStoreStatus(status, cfg))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded schema.StoreStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.TotalProfiles)
	assert.Equal(t, schema.RuleSetVersion, decoded.RuleSet)

	textPath := filepath.Join(dir, "status.txt")
	cfg = plainConfig(schema.TextOut)
	cfg.OutputFile = textPath
	require.NoError(t, NewOutWriter().WriteStoreStatus(status, cfg))

	data, err = os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Store Backend: none")
	assert.Contains(t, string(data), "Total Profiles: 2")
}
