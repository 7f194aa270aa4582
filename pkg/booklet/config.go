package booklet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceConfig is the YAML form of a sheet source.
type SourceConfig struct {
	URL      string `yaml:"url"`
	Fallback string `yaml:"fallback"`
}

// FileConfig is the YAML configuration file layout. Fields left out of the
// file keep their defaults.
type FileConfig struct {
	Rooms    SourceConfig `yaml:"rooms"`
	Exhibits struct {
		SourceConfig      `yaml:",inline"`
		TitleColumn       string `yaml:"title_column"`
		DescriptionColumn string `yaml:"description_column"`
	} `yaml:"exhibits"`
	Output struct {
		Path        string `yaml:"path"`
		XLSXPath    string `yaml:"xlsx_path"`
		PreviewRows int    `yaml:"preview_rows"`
	} `yaml:"output"`
	Timeout            string   `yaml:"timeout"`
	Offline            bool     `yaml:"offline"`
	MissingDescription string   `yaml:"missing_description"`
	ExcludeKeywords    []string `yaml:"exclude_keywords"`
	LocationOrder      []string `yaml:"location_order"`
	NullTokens         []string `yaml:"null_tokens"`
}

// LoadConfig reads a YAML configuration file over DefaultOptions.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration over DefaultOptions.
func ParseConfig(data []byte) (Options, error) {
	opts := DefaultOptions()

	var fc FileConfig
	fc.Rooms = SourceConfig{URL: opts.Rooms.URL, Fallback: opts.Rooms.Fallback}
	fc.Exhibits.SourceConfig = SourceConfig{URL: opts.Exhibits.URL, Fallback: opts.Exhibits.Fallback}
	fc.Exhibits.TitleColumn = opts.ExhibitTitleColumn
	fc.Exhibits.DescriptionColumn = opts.ExhibitDescriptionColumn
	fc.Output.Path = opts.OutputPath
	fc.Output.PreviewRows = opts.PreviewRows
	fc.Timeout = opts.Timeout.String()
	fc.MissingDescription = opts.MissingDescription

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Options{}, fmt.Errorf("failed to parse config: %w", err)
	}

	timeout, err := time.ParseDuration(fc.Timeout)
	if err != nil {
		return Options{}, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
	}

	opts.Rooms.URL = fc.Rooms.URL
	opts.Rooms.Fallback = fc.Rooms.Fallback
	opts.Exhibits.URL = fc.Exhibits.URL
	opts.Exhibits.Fallback = fc.Exhibits.Fallback
	opts.ExhibitTitleColumn = fc.Exhibits.TitleColumn
	opts.ExhibitDescriptionColumn = fc.Exhibits.DescriptionColumn
	opts.OutputPath = fc.Output.Path
	opts.XLSXPath = fc.Output.XLSXPath
	opts.PreviewRows = fc.Output.PreviewRows
	opts.Timeout = timeout
	opts.Offline = fc.Offline
	opts.MissingDescription = fc.MissingDescription
	if fc.ExcludeKeywords != nil {
		opts.ExcludeKeywords = fc.ExcludeKeywords
	}
	if fc.LocationOrder != nil {
		opts.LocationOrder = fc.LocationOrder
	}
	if fc.NullTokens != nil {
		opts.NullTokens = fc.NullTokens
	}

	return opts, opts.Validate()
}

// Validate checks options that would otherwise fail late in the pipeline.
func (o Options) Validate() error {
	switch {
	case o.Rooms.URL == "" && o.Rooms.Fallback == "":
		return fmt.Errorf("rooms: url or fallback is required")
	case o.Exhibits.URL == "" && o.Exhibits.Fallback == "":
		return fmt.Errorf("exhibits: url or fallback is required")
	case o.ExhibitTitleColumn == "" || o.ExhibitDescriptionColumn == "":
		return fmt.Errorf("exhibits: title and description columns are required")
	case o.OutputPath == "":
		return fmt.Errorf("output path is required")
	case o.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	case o.PreviewRows < 0:
		return fmt.Errorf("preview rows must not be negative, got %d", o.PreviewRows)
	case o.MissingDescription == "":
		return fmt.Errorf("missing description placeholder is required")
	}
	for i, kw := range o.ExcludeKeywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("exclude keyword %d is blank", i)
		}
	}
	return nil
}
