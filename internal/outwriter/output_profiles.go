package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/profiledoc"
	"github.com/huangsam/crs/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteProfileList prints ranked profiles with their total and band.
func WriteProfileList(profiles []schema.Profile, cfg *contract.Config) error {
	enriched := schema.EnrichProfiles(profiles)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enriched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileListCSV(w, enriched)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileListTable(w, enriched, cfg)
		}, "Wrote table")
	}
}

func writeProfileListTable(w io.Writer, profiles []schema.EnrichedProfile, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Total", "Outlook"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := bandLabeler(cfg)
	nameWidth := GetMaxTableNameWidth(cfg, 1)
	var data [][]string
	for _, p := range profiles {
		data = append(data, []string{
			strconv.Itoa(p.Rank),
			contract.TruncateName(p.Name, nameWidth),
			strconv.Itoa(p.TotalScore),
			label(p.TotalScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeProfileListCSV(w io.Writer, profiles []schema.EnrichedProfile) error {
	return writeCSVWithHeader(w, []string{"rank", "name", "total", "band"}, func(csvWriter *csv.Writer) error {
		for _, p := range profiles {
			if err := csvWriter.Write([]string{strconv.Itoa(p.Rank), p.Name, strconv.Itoa(p.TotalScore), p.Band}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// WriteProfileDocument exports evaluated profiles as a JSON, YAML or TOML document.
func WriteProfileDocument(profiles []schema.Profile, format schema.OutputMode, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		return profiledoc.Encode(w, format, profiles)
	}, fmt.Sprintf("Wrote %s profiles", format))
}
