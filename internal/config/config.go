// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/matt-FFFFFF/humantalk"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when the configuration file is malformed.
	ErrParseConfig = errors.New("failed to parse config file")
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml, .hcl and .json.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrInvalidConfig is returned when a value in the configuration is not valid.
	ErrInvalidConfig = errors.New("invalid config")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// File is a parsed configuration file, independent of its format.
type File struct {
	// Debug overrides whether debug messages are printed.
	Debug *bool
	// Colors maps severity names to color names or palette codes.
	Colors map[string]string
	// BugReport is shown on fatal errors.
	BugReport *humantalk.BugReport
	// CrashReport overrides the crash report path.
	CrashReport string
}

type yamlFile struct {
	Debug       *bool          `yaml:"debug"`
	Colors      map[string]any `yaml:"colors"`
	BugReport   *yamlBugReport `yaml:"bug_report"`
	CrashReport string         `yaml:"crash_report"`
}

type yamlBugReport struct {
	Message string `yaml:"message"`
	URL     string `yaml:"url"`
}

type hclFile struct {
	Debug       *bool             `hcl:"debug,optional"`
	Colors      map[string]string `hcl:"colors,optional"`
	BugReport   *hclBugReport     `hcl:"bug_report,block"`
	CrashReport *string           `hcl:"crash_report,optional"`
}

type hclBugReport struct {
	Message string `hcl:"message"`
	URL     string `hcl:"url"`
}

// Load reads and parses the configuration file at path from FsFactory().
func Load(path string) (*File, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadConfig, err)
	}

	return Parse(path, data)
}

// Parse decodes data according to the extension of name.
// YAML is used for .yaml and .yml, HCL for .hcl and HCL's JSON syntax for .json.
func Parse(name string, data []byte) (*File, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".hcl", ".json":
		return parseHCL(name, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func parseYAML(data []byte) (*File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	f := &File{
		Debug:       raw.Debug,
		CrashReport: raw.CrashReport,
	}

	if len(raw.Colors) > 0 {
		f.Colors = make(map[string]string, len(raw.Colors))
		for k, v := range raw.Colors {
			f.Colors[k] = fmt.Sprint(v)
		}
	}

	if raw.BugReport != nil {
		bug := humantalk.NewBugReport(raw.BugReport.Message, raw.BugReport.URL)
		f.BugReport = &bug
	}

	return f, nil
}

// evalContext exposes humantalk.version and humantalk.os to HCL expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"humantalk": cty.ObjectVal(map[string]cty.Value{
				"version": cty.StringVal(humantalk.Version),
				"os":      cty.StringVal(runtime.GOOS),
			}),
		},
	}
}

func parseHCL(name string, data []byte) (*File, error) {
	var raw hclFile
	if err := hclsimple.Decode(filepath.Base(name), data, evalContext(), &raw); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	f := &File{
		Debug:  raw.Debug,
		Colors: raw.Colors,
	}

	if raw.CrashReport != nil {
		f.CrashReport = *raw.CrashReport
	}

	if raw.BugReport != nil {
		bug := humantalk.NewBugReport(raw.BugReport.Message, raw.BugReport.URL)
		f.BugReport = &bug
	}

	return f, nil
}

// Build creates a humantalk.Config from the default colors overlaid with f.
// A nil f yields humantalk.Default(opts...).
func Build(f *File, opts ...humantalk.Option) (*humantalk.Config, error) {
	if f == nil {
		return humantalk.Default(opts...), nil
	}

	if f.CrashReport != "" {
		opts = append(opts, humantalk.WithCrashReportPath(f.CrashReport))
	}

	cfg := humantalk.Default(opts...)

	// Sorted so invalid entries are reported in a stable order.
	names := make([]string, 0, len(f.Colors))
	for name := range f.Colors {
		names = append(names, name)
	}

	sort.Strings(names)

	var err error

	for _, name := range names {
		sev, sevErr := humantalk.ParseSeverity(name)
		if sevErr != nil {
			err = multierror.Append(err, fmt.Errorf("colors.%s: %w", name, sevErr))
			continue
		}

		col, colErr := humantalk.ParseColor(f.Colors[name])
		if colErr != nil {
			err = multierror.Append(err, fmt.Errorf("colors.%s: %w", name, colErr))
			continue
		}

		cfg.SetColor(sev, col)
	}

	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if f.BugReport != nil {
		cfg.SetBugReport(*f.BugReport)
	}

	if f.Debug != nil {
		cfg.SetDebug(*f.Debug)
	}

	return cfg, nil
}
