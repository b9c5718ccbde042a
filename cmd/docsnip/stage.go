package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/pipeline"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	dir, err := deps.Fetcher.Fetch(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Fetched documentation into %s\n", dir)
	return nil
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.Config.DocsDir
	}
	report, err := runCheck(deps, dir)
	if err != nil {
		return err
	}
	return requireSuccess(report)
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	report, err := runExtract(deps, c.Clean)
	if err != nil {
		return err
	}
	return requireSuccess(report)
}

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	return runTemplates(deps)
}

// Run executes the install command.
func (c *InstallCmd) Run(deps *Dependencies) error {
	return runInstall(deps)
}

// Run executes every stage in order. Documents needing manual work do not
// stop later stages; the command fails at the end when any were found.
func (c *RunCmd) Run(deps *Dependencies) error {
	dir := deps.Config.DocsDir
	if !c.NoFetch {
		fetched, err := deps.Fetcher.Fetch(deps.Ctx)
		if err != nil {
			return err
		}
		dir = fetched
	}

	checked, err := runCheck(deps, dir)
	if err != nil {
		return err
	}
	extracted, err := runExtract(deps, c.Clean)
	if err != nil {
		return err
	}
	if err := runTemplates(deps); err != nil {
		return err
	}

	if err := requireSuccess(checked); err != nil {
		return err
	}
	if err := requireSuccess(extracted); err != nil {
		return err
	}

	if c.Install {
		return runInstall(deps)
	}
	return nil
}

func runCheck(deps *Dependencies, dir string) (*docsnip.Report, error) {
	report, err := deps.Checker.Check(deps.Ctx, dir, progressLogger(deps))
	if err != nil {
		return nil, err
	}
	printReport(deps.Stdout, report)
	return report, nil
}

func runExtract(deps *Dependencies, clean bool) (*docsnip.Report, error) {
	deps.Extractor.Clean = clean
	roots := []string{deps.Config.AutoDocsDir, deps.Config.ManualDocsDir}
	report, err := deps.Extractor.Extract(deps.Ctx, roots, progressLogger(deps))
	if err != nil {
		return nil, err
	}
	printReport(deps.Stdout, report)
	return report, nil
}

func runTemplates(deps *Dependencies) error {
	paths, err := deps.Assembler.Assemble(deps.Ctx)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", p)
	}
	return nil
}

// runInstall verifies that both configured template sets parse before
// copying anything into the plugin directory.
func runInstall(deps *Dependencies) error {
	tpl := deps.Config.Templates
	var n int
	for _, name := range []string{tpl.ImportFile, tpl.UsageFile} {
		set, err := deps.TemplateSets.ReadTemplateSet(deps.Ctx, name)
		if err != nil {
			return docsnip.Errorf(docsnip.ErrorCode(err), "%s; run 'docsnip templates' first", docsnip.ErrorMessage(err))
		}
		n += len(set.Templates)
	}

	copied, err := deps.Installer.Install(deps.Ctx, deps.Config.TemplatesDir, deps.Config.PluginDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Installed %d template set(s) with %d templates into %s\n", len(copied), n, deps.Config.PluginDir)
	return nil
}

// progressLogger logs every document that needs manual work.
func progressLogger(deps *Dependencies) pipeline.ProgressFunc {
	if deps.Logger == nil {
		return nil
	}
	return func(e pipeline.ProgressEvent) {
		if e.Type != pipeline.ProgressFailed {
			return
		}
		deps.Logger.Warn("needs manual review",
			"file", e.Result.Path,
			"reason", e.Result.Reason,
			"progress", fmt.Sprintf("%d/%d", e.Completed, e.Total),
		)
	}
}

// printReport writes a stage summary followed by one line per bad result,
// naming the document title when its front matter has one.
func printReport(w io.Writer, report *docsnip.Report) {
	bad := report.Bad()
	fmt.Fprintf(w, "%s: %d good, %d need manual work\n", report.Stage, len(report.Results)-len(bad), len(bad))
	for _, res := range bad {
		fmt.Fprintf(w, "  %s", res.Path)
		if res.Title != "" {
			fmt.Fprintf(w, " [%s]", res.Title)
		}
		fmt.Fprintf(w, "  %s", res.Reason)
		if res.Detail != "" {
			fmt.Fprintf(w, "  (%s)", res.Detail)
		}
		fmt.Fprintln(w)
	}
}

// requireSuccess returns an error when the report has bad results.
func requireSuccess(report *docsnip.Report) error {
	if n := len(report.Bad()); n > 0 {
		return docsnip.Errorf(docsnip.EINVALID, "manual intervention required: %d file(s) failed the %s stage", n, report.Stage)
	}
	return nil
}
