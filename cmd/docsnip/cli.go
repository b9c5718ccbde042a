package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *docsnip.Config
	Logger     *slog.Logger
	Source     docsnip.DocumentSource
	Classifier docsnip.Classifier
	Fetcher    docsnip.Fetcher
	Checker    *pipeline.Checker
	Extractor  *pipeline.Extractor
	Assembler  *pipeline.Assembler

	// TemplateSets reads generated sets back so install can verify them.
	TemplateSets docsnip.TemplateReader
	Installer    docsnip.Installer
	Reports      docsnip.ReportService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" env:"DOCSNIP_CONFIG" type:"path" help:"Path to YAML config file"`
	Policy  string `help:"Classification policy (strict, content); overrides the config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Fetch     FetchCmd     `cmd:"" help:"Clone or update the documentation repository"`
	Check     CheckCmd     `cmd:"" help:"Classify raw documents and route failures to manual review"`
	Extract   ExtractCmd   `cmd:"" help:"Write import and usage records from checked documents"`
	Templates TemplatesCmd `cmd:"" help:"Build live template sets from records"`
	Install   InstallCmd   `cmd:"" help:"Copy template sets into the plugin resources"`
	Pipeline  RunCmd       `cmd:"" name:"run" help:"Run every stage in order"`
	Classify  ClassifyCmd  `cmd:"" help:"Classify a single document"`
	Report    ReportCmd    `cmd:"" help:"Show stored stage reports"`
	ConfigCmd ConfigCmd    `cmd:"" name:"config" help:"Print the effective configuration as YAML"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Dir string `arg:"" optional:"" type:"path" help:"Raw documentation directory (default: from config)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Clean bool `help:"Remove existing records first"`
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct{}

// InstallCmd is the "install" subcommand.
type InstallCmd struct{}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	NoFetch bool `help:"Use the existing working copy"`
	Clean   bool `help:"Remove existing records before extracting"`
	Install bool `help:"Install template sets when every stage succeeds"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Path string `arg:"" type:"path" help:"Document to classify"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	ID    string `arg:"" optional:"" help:"Report ID to show in full"`
	Stage string `help:"Only list reports of this stage (check, extract)"`
	Limit int    `short:"n" default:"10" help:"Maximum number of reports to list"`
}
