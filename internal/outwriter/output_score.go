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

// WriteScore prints one profile's score breakdown in the configured format.
func WriteScore(model schema.ScoreRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreText(w, model, cfg)
		}, "Wrote table")
	}
}

func writeScoreText(w io.Writer, model schema.ScoreRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", model.Name); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Component", "Points"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	bold := emphasis(cfg)
	var data [][]string
	for _, key := range schema.AllComponents {
		data = append(data, []string{schema.ComponentLabels[key], strconv.Itoa(model.Scores.Component(key))})
	}
	data = append(data, []string{schema.ComponentLabels[schema.ComponentTotal], bold(model.TotalScore)})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	label := bandLabeler(cfg)
	if _, err := fmt.Fprintf(w, "Outlook: %s (%s) %s\n", label(model.TotalScore), model.Band.Range, model.Band.Description); err != nil {
		return err
	}

	if cfg.Detail {
		if err := writeDetailTable(w, schema.Profile{Name: "Inputs", Inputs: model.Inputs}); err != nil {
			return err
		}
	}

	if model.Transferability == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nSkill Transferability\n"); err != nil {
		return err
	}
	explain := tablewriter.NewWriter(w)
	explain.Header([]string{"Rule", "Points"})
	explain.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var rows [][]string
	for _, row := range model.Transferability.Rows() {
		rows = append(rows, []string{row.Label, strconv.Itoa(row.Points)})
	}
	if err := explain.Bulk(rows); err != nil {
		return err
	}
	return explain.Render()
}

func writeScoreCSV(w io.Writer, model schema.ScoreRenderModel) error {
	return writeCSVWithHeader(w, []string{"profile", "component", "points"}, func(csvWriter *csv.Writer) error {
		keys := append(append([]schema.ComponentKey{}, schema.AllComponents...), schema.ComponentTotal)
		for _, key := range keys {
			if err := csvWriter.Write([]string{model.Name, string(key), strconv.Itoa(model.Scores.Component(key))}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		if model.Transferability == nil {
			return nil
		}
		for _, row := range model.Transferability.Rows() {
			if err := csvWriter.Write([]string{model.Name, "transferability." + row.Key, strconv.Itoa(row.Points)}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
