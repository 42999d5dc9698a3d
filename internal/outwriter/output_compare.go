package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteComparison prints the category-by-profile comparison in the configured format.
func WriteComparison(profiles []schema.Profile, cfg *contract.Config) error {
	model := schema.BuildComparisonModel(profiles)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, profiles, model, cfg)
		}, "Wrote table")
	}
}

// writeComparisonTable renders one column per profile and one row per category.
func writeComparisonTable(w io.Writer, profiles []schema.Profile, model schema.ComparisonRenderModel, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)

	nameWidth := GetMaxTableNameWidth(cfg, len(model.Profiles))
	headers := []string{"Category"}
	for _, name := range model.Profiles {
		headers = append(headers, contract.TruncateName(name, nameWidth))
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	bold := emphasis(cfg)
	var data [][]string
	for _, row := range model.Rows {
		line := []string{row.Label}
		for _, v := range row.Values {
			if row.Key == schema.ComponentTotal {
				line = append(line, bold(v))
			} else {
				line = append(line, strconv.Itoa(v))
			}
		}
		data = append(data, line)
	}

	label := bandLabeler(cfg)
	bandRow := []string{"Outlook"}
	for _, p := range profiles {
		bandRow = append(bandRow, label(p.TotalScore))
	}
	data = append(data, bandRow)

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if model.Leader != "" && len(profiles) > 1 {
		if _, err := fmt.Fprintf(w, "Highest score: %s\n", model.Leader); err != nil {
			return err
		}
	}

	if cfg.Detail {
		for _, p := range profiles {
			if err := writeDetailTable(w, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeDetailTable lists the raw inputs of one profile.
func writeDetailTable(w io.Writer, p schema.Profile) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", p.Name); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	var data [][]string
	for _, row := range p.Inputs.DetailRows() {
		data = append(data, []string{row[0], row[1]})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeComparisonCSV writes one line per category with a column per profile.
func writeComparisonCSV(w io.Writer, model schema.ComparisonRenderModel) error {
	header := append([]string{"category"}, model.Profiles...)
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, row := range model.Rows {
			line := []string{string(row.Key)}
			for _, v := range row.Values {
				line = append(line, strconv.Itoa(v))
			}
			if err := csvWriter.Write(line); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		line := append([]string{"band"}, model.Bands...)
		if err := csvWriter.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
		return nil
	})
}
