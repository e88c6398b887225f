package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"entc/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	LabelsConfig struct {
		Scheme     common.Scheme `yaml:"scheme" validate:"gte=0"`
		Background string        `yaml:"background" validate:"required"`
		// Known label names, labels found in the input are added after them.
		Names []string `yaml:"names,omitempty" validate:"dive,required"`
	}

	TokenizerConfig struct {
		Language  string `yaml:"language" validate:"required,bcp47_language_tag"`
		ModelPath string `yaml:"model_path,omitempty" sanitize:"assure_file_access"`
	}

	LocalConfig struct {
		Confidence float64 `yaml:"confidence" validate:"gt=0,lt=1"`
	}

	PriorConfig struct {
		Kind             common.PriorKind `yaml:"kind" validate:"gte=0"`
		LabelMismatch    float64          `yaml:"label_mismatch" validate:"lte=0"`
		BoundaryMismatch float64          `yaml:"boundary_mismatch" validate:"lte=0"`
		Weight           float64          `yaml:"weight" validate:"gte=0"`
	}

	SamplerConfig struct {
		Iterations         int                    `yaml:"iterations" validate:"min=1"`
		Order              common.SampleOrder     `yaml:"order" validate:"gte=0"`
		Cooling            common.CoolingSchedule `yaml:"cooling" validate:"gte=0"`
		InitialTemperature float64                `yaml:"initial_temperature" validate:"gt=0"`
		Seed               uint64                 `yaml:"seed"`
	}

	OutputConfig struct {
		NameTemplate string `yaml:"name_template"`
		Slug         bool   `yaml:"slug"`
		// Keep observed labels as a separate column.
		Observed bool `yaml:"observed"`
		// Write the best scoring sequence rather than the last one.
		Best bool `yaml:"best"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Labels    LabelsConfig    `yaml:"labels"`
		Tokenizer TokenizerConfig `yaml:"tokenizer"`
		Local     LocalConfig     `yaml:"local"`
		Prior     PriorConfig     `yaml:"prior"`
		Sampler   SamplerConfig   `yaml:"sampler"`
		Output    OutputConfig    `yaml:"output"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, template is expanded per
	// output file rather than when configuration is loaded
	OutputNameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Unknown fields are errors, so decoder is configured instead of calling
	// yaml.Unmarshal
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration expands configuration template to get defaults, puts
// values from the file at path (if any) over them and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	fromFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !fromFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !fromFile {
		return cfg, nil
	}

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump returns active configuration as yaml.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
