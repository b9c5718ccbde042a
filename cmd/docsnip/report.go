package main

import (
	"fmt"

	"github.com/fwojciec/docsnip"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", report.ID, report.StartedAt.Local().Format("2006-01-02 15:04:05"))
		printReport(deps.Stdout, report)
		return nil
	}

	filter := docsnip.ReportFilter{Limit: c.Limit}
	if c.Stage != "" {
		filter.Stage = &c.Stage
	}
	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'docsnip check' or 'docsnip extract' to create one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %-7s  %s  %d good, %d bad\n",
			r.ID, r.Stage, r.StartedAt.Local().Format("2006-01-02 15:04:05"), len(r.Good()), len(r.Bad()))
	}
	return nil
}
