// Package profiledoc reads and writes profile sets as JSON, YAML or TOML documents.
package profiledoc

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/huangsam/crs/schema"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.schema.json
var documentSchema string

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Document is the on-disk shape of an exported profile set.
type Document struct {
	Profiles []schema.Profile `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (schema.OutputMode, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schema.JSONOut, nil
	case ".yaml", ".yml":
		return schema.YAMLOut, nil
	case ".toml":
		return schema.TOMLOut, nil
	default:
		return "", fmt.Errorf("unsupported profile document extension %q: use .json, .yaml, .yml or .toml", filepath.Ext(path))
	}
}

// decodeGeneric parses the raw bytes into untyped values for schema validation.
func decodeGeneric(format schema.OutputMode, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case schema.JSONOut:
		err = json.Unmarshal(data, &doc)
	case schema.YAMLOut:
		err = yaml.Unmarshal(data, &doc)
	case schema.TOMLOut:
		_, err = toml.Decode(string(data), &doc)
	default:
		return nil, fmt.Errorf("unsupported profile document format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}
	return doc, nil
}

// Validate checks an untyped document against the embedded JSON Schema.
// Every violation is listed in the returned error.
func Validate(doc map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("profile document is invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Decode parses a profile document, validates it, and returns normalized inputs.
// Fields missing from a profile take their default values. Scores in the document are ignored.
func Decode(path string, data []byte) ([]schema.ProfileInput, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	doc, err := decodeGeneric(format, data)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	// Round-trip through JSON so every codec shares one typed decoder.
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s document: %w", format, err)
	}
	var typed struct {
		Profiles []struct {
			Name   string          `json:"name"`
			Inputs json.RawMessage `json:"inputs"`
		} `json:"profiles"`
	}
	if err := json.Unmarshal(canonical, &typed); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	out := make([]schema.ProfileInput, 0, len(typed.Profiles))
	for _, p := range typed.Profiles {
		in := schema.DefaultApplicantInput()
		if len(p.Inputs) > 0 {
			if err := json.Unmarshal(p.Inputs, &in); err != nil {
				return nil, fmt.Errorf("failed to decode inputs of profile %q: %w", p.Name, err)
			}
		}
		out = append(out, schema.ProfileInput{Name: strings.TrimSpace(p.Name), Inputs: in.Normalize()})
	}
	if err := schema.ValidateProfileSet(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode writes evaluated profiles as a document in the given format.
func Encode(w io.Writer, format schema.OutputMode, profiles []schema.Profile) error {
	doc := Document{Profiles: profiles}
	if doc.Profiles == nil {
		doc.Profiles = []schema.Profile{}
	}
	switch format {
	case schema.JSONOut:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case schema.YAMLOut:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case schema.TOMLOut:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported profile document format: %s", format)
	}
}
