// Copyright (c) 2023 The KBase Project and its Contributors
// Copyright (c) 2023 Cohere Consulting, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package trios

import (
	"fmt"
	"log/slog"

	"github.com/gregor-consortium/triovcf/config"
	"github.com/gregor-consortium/triovcf/core"
	"github.com/gregor-consortium/triovcf/databases"
)

// A Finder searches workspaces for trios with a given phenotype and reports
// their variant call files.
type Finder struct {
	// service holding the workspace tables
	Database databases.Database
	// workspaces searched, in order
	Workspaces []core.Workspace
	// names of the phenotype, participant, and variant call tables
	PhenotypeTable, ParticipantTable, VariantTable string
}

// Creates a Finder for the configured workspaces and tables.
func NewFinder(db databases.Database) *Finder {
	return &Finder{
		Database:         db,
		Workspaces:       config.Workspaces,
		PhenotypeTable:   config.Terra.Tables.Phenotype,
		ParticipantTable: config.Terra.Tables.Participant,
		VariantTable:     config.Terra.Tables.Variants,
	}
}

// Returns report rows for the variant call files of every trio whose proband
// has the given HPO term, across all workspaces. Rows are unsorted.
func (f *Finder) Find(termId string) []core.Row {
	var rows []core.Row
	for _, workspace := range f.Workspaces {
		rows = append(rows, f.FindInWorkspace(workspace, termId)...)
	}
	return rows
}

// Returns report rows for a single workspace. Other tables aren't fetched if
// no participant in the workspace has the term.
func (f *Finder) FindInWorkspace(workspace core.Workspace, termId string) []core.Row {
	phenotypes := f.Database.Entities(workspace, f.PhenotypeTable)
	affected := AffectedParticipants(phenotypes, termId)
	if len(affected) == 0 {
		slog.Debug(fmt.Sprintf("%s: no participants with %s", workspace.Label, termId))
		return nil
	}

	lookup := ParticipantLookup(f.Database.Entities(workspace, f.ParticipantTable))
	trios := BuildTrios(affected, lookup)

	index := NewVariantCallIndex(f.Database.Entities(workspace, f.VariantTable))
	rows := MatchVcfs(workspace.Label, trios, index)
	slog.Debug(fmt.Sprintf("%s: %d affected, %d trios, %d indexed files, %d matches",
		workspace.Label, len(affected), len(trios), index.Len(), len(rows)))
	return rows
}
