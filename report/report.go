// Package report orders trio VCF matches and writes them as a tab-separated
// table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ahmetb/go-linq"
	"github.com/gocarina/gocsv"

	"github.com/gregor-consortium/triovcf/core"
)

// Sorts rows by workspace, family, role (proband, mother, father), and assay.
// Rows that tie keep their relative order.
func Sort(rows []core.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Workspace != b.Workspace {
			return a.Workspace < b.Workspace
		}
		if a.FamilyId != b.FamilyId {
			return a.FamilyId < b.FamilyId
		}
		if a.Role.Priority() != b.Role.Priority() {
			return a.Role.Priority() < b.Role.Priority()
		}
		return a.Assay < b.Assay
	})
}

// tsvWriter joins fields with tabs and writes them verbatim, with none of the
// quoting or escaping that encoding/csv applies.
// (implements the gocsv.CSVWriter interface)
type tsvWriter struct {
	w   *bufio.Writer
	err error
}

func (t *tsvWriter) Write(row []string) error {
	if t.err == nil {
		_, t.err = t.w.WriteString(strings.Join(row, "\t") + "\n")
	}
	return t.err
}

func (t *tsvWriter) Flush() {
	if t.err == nil {
		t.err = t.w.Flush()
	}
}

func (t *tsvWriter) Error() error {
	return t.err
}

// Writes a header line and then one tab-separated line per row. Fields are
// written as they are, so a tab or newline inside a field is not escaped.
func Write(w io.Writer, rows []core.Row) error {
	return gocsv.MarshalCSV(rows, &tsvWriter{w: bufio.NewWriter(w)})
}

// Summary counts the files and distinct samples in a report.
type Summary struct {
	// number of rows
	Files int
	// number of distinct (workspace, sample) pairs
	Samples int
}

// a sample is identified by its id within a workspace
type sample struct {
	Workspace, SampleId string
}

func Summarize(rows []core.Row) Summary {
	samples := linq.From(rows).DistinctBy(func(r interface{}) interface{} {
		row := r.(core.Row)
		return sample{Workspace: row.Workspace, SampleId: row.SampleId}
	}).Count()
	return Summary{
		Files:   len(rows),
		Samples: samples,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Found %d VCFs from %d samples", s.Files, s.Samples)
}
