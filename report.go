package docsnip

import (
	"context"
	"time"
)

// Stage names recorded on reports.
const (
	StageCheck   = "check"
	StageExtract = "extract"
)

// Result is the outcome of processing one input file.
type Result struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Title       string `json:"title,omitempty"`
	Reason      Reason `json:"reason,omitempty"`
	Detail      string `json:"detail,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
}

// OK reports whether the file was processed without needing manual work.
func (r Result) OK() bool {
	return r.Reason == ""
}

// Report aggregates the results of one stage run.
type Report struct {
	ID        string    `json:"id"`
	Stage     string    `json:"stage"`
	StartedAt time.Time `json:"startedAt"`
	Results   []Result  `json:"results"`
}

// Good returns the results that need no manual intervention.
func (r *Report) Good() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Bad returns the results that need manual intervention.
func (r *Report) Bad() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Success reports whether every file was processed automatically.
func (r *Report) Success() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.Stage == "" {
		return Errorf(EINVALID, "report stage required")
	}
	return nil
}

// ReportService persists stage reports.
type ReportService interface {
	// CreateReport stores a report and assigns its ID.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report with its results.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	Stage *string `json:"stage"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DuplicateGroup lists the documents sharing one record name.
type DuplicateGroup struct {
	Name  string
	Paths []string
}

// SplitDuplicates partitions paths by record name. Paths whose name is
// unique are returned in input order; every path sharing its name with
// another one ends up in a duplicate group instead.
func SplitDuplicates(paths []string) (unique []string, dups []DuplicateGroup) {
	byName := make(map[string][]string)
	var order []string
	for _, p := range paths {
		name := RecordName(p)
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], p)
	}

	for _, name := range order {
		group := byName[name]
		if len(group) == 1 {
			unique = append(unique, group[0])
			continue
		}
		dups = append(dups, DuplicateGroup{Name: name, Paths: group})
	}
	return unique, dups
}
