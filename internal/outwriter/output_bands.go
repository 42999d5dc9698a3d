package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteBands prints the interpretation guide in the configured format.
func WriteBands(cfg *contract.Config) error {
	model := schema.BuildBandsModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBandsCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBandsText(w, model, cfg)
		}, "Wrote text")
	}
}

func writeBandsText(w io.Writer, model schema.BandsRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", model.Title); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Score", "Outlook", "Meaning"})

	label := bandLabeler(cfg)
	var data [][]string
	for _, b := range model.Bands {
		data = append(data, []string{b.Range, label(b.Min), b.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", model.Note)
	return err
}

func writeBandsCSV(w io.Writer, model schema.BandsRenderModel) error {
	return writeCSVWithHeader(w, []string{"label", "min", "max", "range", "description"}, func(csvWriter *csv.Writer) error {
		for _, b := range model.Bands {
			maxStr := ""
			if b.Max >= 0 {
				maxStr = strconv.Itoa(b.Max)
			}
			if err := csvWriter.Write([]string{b.Label, strconv.Itoa(b.Min), maxStr, b.Range, b.Description}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
