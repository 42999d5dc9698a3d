// Package core has the orchestration logic behind every crs command:
// loading and mutating the profile set, scoring, ranking and rendering.
package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/crs/core/algo"
	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/iocache"
	"github.com/huangsam/crs/internal/outwriter"
	"github.com/huangsam/crs/internal/parquet"
	"github.com/huangsam/crs/internal/profiledoc"
	"github.com/huangsam/crs/schema"
	"go.uber.org/zap"
)

// writer renders every command result.
var writer = outwriter.NewOutWriter()

// GetScoreResult evaluates one profile. With cfg.InputFile set the profile comes from
// that document instead of the store. An empty name picks the first profile.
func GetScoreResult(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) (schema.ScoreRenderModel, error) {
	var profiles []schema.Profile
	if cfg.InputFile != "" {
		inputs, err := readProfileDocument(cfg.InputFile)
		if err != nil {
			return schema.ScoreRenderModel{}, err
		}
		profiles = EvaluateProfiles(inputs)
	} else {
		loaded, err := LoadProfiles(ctx, mgr)
		if err != nil {
			return schema.ScoreRenderModel{}, err
		}
		profiles = loaded
	}
	if len(profiles) == 0 {
		return schema.ScoreRenderModel{}, fmt.Errorf("%w: no profiles available", schema.ErrProfileNotFound)
	}

	p := profiles[0]
	if name != "" {
		selected, err := SelectProfiles(profiles, []string{name})
		if err != nil {
			return schema.ScoreRenderModel{}, err
		}
		p = selected[0]
	}

	var explain *schema.TransferabilityBreakdown
	if cfg.Explain {
		t := algo.ExplainTransferability(p.Inputs)
		explain = &t
	}
	return schema.BuildScoreModel(p, explain), nil
}

// EvaluateInput normalizes and scores an input that is not part of the stored set.
func EvaluateInput(name string, in schema.ApplicantInput, explain bool) schema.ScoreRenderModel {
	if strings.TrimSpace(name) == "" {
		name = "Input"
	}
	p := BuildProfile(schema.ProfileInput{Name: name, Inputs: in.Normalize()})
	var t *schema.TransferabilityBreakdown
	if explain {
		e := algo.ExplainTransferability(p.Inputs)
		t = &e
	}
	return schema.BuildScoreModel(p, t)
}

// GetComparisonResults loads the named profiles (all when none are named) ranked by total.
func GetComparisonResults(ctx context.Context, mgr contract.StoreManager, names []string) ([]schema.Profile, error) {
	profiles, err := LoadProfiles(ctx, mgr)
	if err != nil {
		return nil, err
	}
	selected, err := SelectProfiles(profiles, names)
	if err != nil {
		return nil, err
	}
	return algo.RankProfiles(selected), nil
}

// ExecuteScore prints the breakdown of one profile.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	if err := contract.ValidateOutputFor(cfg, "score", schema.TextOut, schema.CSVOut, schema.JSONOut); err != nil {
		return err
	}
	model, err := GetScoreResult(ctx, cfg, mgr, name)
	if err != nil {
		return err
	}
	return writer.WriteScore(model, cfg)
}

// ExecuteCompare prints the ranked side-by-side comparison.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, names []string) error {
	if err := contract.ValidateOutputFor(cfg, "compare", schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut); err != nil {
		return err
	}
	ranked, err := GetComparisonResults(ctx, mgr, names)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return exportParquet(ctx, cfg, ranked)
	}
	return writer.WriteComparison(ranked, cfg)
}

// ExecuteReport renders the paginated results document for the stored set.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, names []string) error {
	if err := contract.ValidateOutputFor(cfg, "report", schema.TextOut, schema.PDFOut, schema.JSONOut); err != nil {
		return err
	}
	profiles, err := LoadProfiles(ctx, mgr)
	if err != nil {
		return err
	}
	selected, err := SelectProfiles(profiles, names)
	if err != nil {
		return err
	}
	return writer.WriteReport(selected, cfg, generatedAt(ctx))
}

// ExecuteBands prints the interpretation guide.
func ExecuteBands(_ context.Context, cfg *contract.Config) error {
	if err := contract.ValidateOutputFor(cfg, "bands", schema.TextOut, schema.CSVOut, schema.JSONOut); err != nil {
		return err
	}
	return writer.WriteBands(cfg)
}

// exportParquet writes evaluated profiles to the configured output file.
func exportParquet(ctx context.Context, cfg *contract.Config, profiles []schema.Profile) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	rows := parquet.ProfileScoreRows(profiles, generatedAt(ctx))
	if err := parquet.WriteProfileScoresParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	contract.Logger().Debug("exported parquet", zap.String("path", cfg.OutputFile), zap.Int("rows", len(rows)))
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	return nil
}

// ExecuteProfilesList prints the stored profiles ranked by total.
func ExecuteProfilesList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if err := contract.ValidateOutputFor(cfg, "profiles list", schema.TextOut, schema.CSVOut, schema.JSONOut); err != nil {
		return err
	}
	ranked, err := GetComparisonResults(ctx, mgr, nil)
	if err != nil {
		return err
	}
	return writer.WriteProfiles(ranked, cfg)
}

// ExecuteProfileShow prints the breakdown and every raw input of one stored profile.
func ExecuteProfileShow(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	showCfg := cfg.Clone()
	showCfg.Detail = true
	showCfg.InputFile = ""
	return ExecuteScore(ctx, showCfg, mgr, name)
}

// ExecuteProfileSet applies key=value assignments to a stored profile and prints its new breakdown.
func ExecuteProfileSet(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string, assignments []string) error {
	if len(assignments) == 0 {
		return fmt.Errorf("at least one key=value assignment is required (fields: %s)", strings.Join(schema.FieldKeys, ", "))
	}
	pairs := make([][2]string, len(assignments))
	for i, a := range assignments {
		key, value, err := schema.ParseAssignment(a)
		if err != nil {
			return err
		}
		pairs[i] = [2]string{key, value}
	}
	if err := contract.ValidateOutputFor(cfg, "profiles set", schema.TextOut, schema.CSVOut, schema.JSONOut); err != nil {
		return err
	}

	p, err := SetProfileFields(ctx, mgr, name, pairs)
	if err != nil {
		return err
	}
	var explain *schema.TransferabilityBreakdown
	if cfg.Explain {
		t := algo.ExplainTransferability(p.Inputs)
		explain = &t
	}
	return writer.WriteScore(schema.BuildScoreModel(p, explain), cfg)
}

// listAfter prints the set that a mutation produced.
func listAfter(cfg *contract.Config, profiles []schema.Profile, err error) error {
	if err != nil {
		return err
	}
	return writer.WriteProfiles(algo.RankProfiles(profiles), cfg)
}

// ExecuteProfileRename renames a stored profile.
func ExecuteProfileRename(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, oldName, newName string) error {
	profiles, err := RenameProfile(ctx, mgr, oldName, newName)
	return listAfter(cfg, profiles, err)
}

// ExecuteProfileAdd appends a profile with default inputs.
func ExecuteProfileAdd(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	profiles, err := AddProfile(ctx, mgr, name)
	return listAfter(cfg, profiles, err)
}

// ExecuteProfileRemove deletes a stored profile.
func ExecuteProfileRemove(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	profiles, err := RemoveProfile(ctx, mgr, name)
	return listAfter(cfg, profiles, err)
}

// ExecuteProfilesReset restores the three default profiles.
func ExecuteProfilesReset(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	profiles, err := ResetProfiles(ctx, mgr)
	return listAfter(cfg, profiles, err)
}

// ExecuteProfilesImport replaces the stored set with a JSON, YAML or TOML document.
func ExecuteProfilesImport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, path string) error {
	profiles, err := ImportProfiles(ctx, mgr, path)
	return listAfter(cfg, profiles, err)
}

// exportFormat resolves the document format of an export. An explicit
// --output wins; otherwise the output file extension decides, defaulting to JSON.
func exportFormat(cfg *contract.Config) (schema.OutputMode, error) {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut, schema.TOMLOut, schema.ParquetOut:
		return cfg.Output, nil
	case schema.TextOut:
		if cfg.OutputFile == "" {
			return schema.JSONOut, nil
		}
		return profiledoc.FormatFromPath(cfg.OutputFile)
	default:
		return "", fmt.Errorf("profiles export does not support output format '%s'. must be json, yaml, toml, parquet", cfg.Output)
	}
}

// ExecuteProfilesExport writes the stored set with its scores as a document or parquet file.
func ExecuteProfilesExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	format, err := exportFormat(cfg)
	if err != nil {
		return err
	}
	profiles, err := LoadProfiles(ctx, mgr)
	if err != nil {
		return err
	}
	if format == schema.ParquetOut {
		return exportParquet(ctx, cfg, profiles)
	}
	return writer.WriteDocument(profiles, format, cfg.OutputFile)
}

// ExecuteStoreStatus prints status information about the configured store.
func ExecuteStoreStatus(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if err := contract.ValidateOutputFor(cfg, "store status", schema.TextOut, schema.JSONOut); err != nil {
		return err
	}
	store, err := getStore(mgr)
	if err != nil {
		return err
	}
	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	return writer.WriteStoreStatus(status, cfg)
}

// ExecuteStoreClear removes all persisted profiles for the configured backend.
func ExecuteStoreClear(ctx context.Context, cfg *contract.Config) error {
	dbPath := cfg.StoreDBConnect
	if cfg.StoreBackend == schema.SQLiteBackend && dbPath == "" {
		dbPath = contract.GetDBFilePath()
	}
	if err := iocache.ClearStore(ctx, cfg.StoreBackend, dbPath, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	contract.Logger().Info("cleared profile store", zap.String("backend", string(cfg.StoreBackend)))
	return nil
}

// ExecuteStoreMigrate migrates the SQL profile tables to the configured target version.
func ExecuteStoreMigrate(_ context.Context, cfg *contract.Config) error {
	return iocache.MigrateProfiles(cfg.StoreBackend, cfg.StoreDBConnect, cfg.TargetVersion)
}
