// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints one profile's breakdown using the configured output format.
func (ow *OutWriter) WriteScore(model schema.ScoreRenderModel, cfg *contract.Config) error {
	return WriteScore(model, cfg)
}

// WriteComparison prints the comparison table using the configured output format.
func (ow *OutWriter) WriteComparison(profiles []schema.Profile, cfg *contract.Config) error {
	return WriteComparison(profiles, cfg)
}

// WriteProfiles prints the ranked profile list using the configured output format.
func (ow *OutWriter) WriteProfiles(profiles []schema.Profile, cfg *contract.Config) error {
	return WriteProfileList(profiles, cfg)
}

// WriteDocument exports profiles as a JSON, YAML or TOML document.
func (ow *OutWriter) WriteDocument(profiles []schema.Profile, format schema.OutputMode, outputFile string) error {
	return WriteProfileDocument(profiles, format, outputFile)
}

// WriteReport renders the paginated report.
func (ow *OutWriter) WriteReport(profiles []schema.Profile, cfg *contract.Config, generatedAt time.Time) error {
	return WriteReport(profiles, cfg, generatedAt)
}

// WriteBands prints the interpretation guide.
func (ow *OutWriter) WriteBands(cfg *contract.Config) error {
	return WriteBands(cfg)
}

// WriteStoreStatus prints profile store status.
func (ow *OutWriter) WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return WriteStoreStatus(status, cfg)
}
