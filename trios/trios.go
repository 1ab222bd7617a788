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

// Package trios assembles proband/parent trios from workspace data tables and
// matches their members to variant call files.
package trios

import (
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/gregor-consortium/triovcf/classify"
	"github.com/gregor-consortium/triovcf/core"
)

// Decodes entity attributes into the given struct. Attribute names must match
// mapstructure tags exactly, but values are converted weakly (so a numeric
// family id becomes a string). Attributes that can't be decoded are left
// blank.
func decodeAttributes(entity core.Entity, out any) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
		Result: out,
	})
	if err != nil {
		return
	}
	decoder.Decode(entity.Attributes)
}

// Returns the distinct, sorted ids of participants with a phenotype entity
// carrying the given HPO term.
func AffectedParticipants(phenotypes []core.Entity, termId string) []string {
	affected := make(map[string]bool)
	for _, entity := range phenotypes {
		var phenotype core.Phenotype
		decodeAttributes(entity, &phenotype)
		if phenotype.TermId == termId && phenotype.ParticipantId != "" {
			affected[phenotype.ParticipantId] = true
		}
	}
	ids := make([]string, 0, len(affected))
	for id := range affected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Returns a lookup table of participants keyed by entity name. A participant
// without a family gets core.UnknownFamily, and a missing or blank parent gets
// core.NoParent.
func ParticipantLookup(participants []core.Entity) map[string]core.Participant {
	lookup := make(map[string]core.Participant, len(participants))
	for _, entity := range participants {
		var participant core.Participant
		decodeAttributes(entity, &participant)
		participant.Id = entity.Name
		if value, found := entity.Attributes["family_id"]; !found || value == nil {
			participant.FamilyId = core.UnknownFamily
		}
		if participant.MaternalId == "" {
			participant.MaternalId = core.NoParent
		}
		if participant.PaternalId == "" {
			participant.PaternalId = core.NoParent
		}
		lookup[participant.Id] = participant
	}
	return lookup
}

// returns the given parent id if it names a known participant, or ""
func knownParent(id string, lookup map[string]core.Participant) string {
	if id == core.NoParent {
		return ""
	}
	if _, found := lookup[id]; !found {
		return ""
	}
	return id
}

// Builds a trio for each affected participant found in the lookup table, in
// the order given. Affected participants missing from the lookup are dropped.
func BuildTrios(affected []string, lookup map[string]core.Participant) []core.Trio {
	var trios []core.Trio
	for _, id := range affected {
		participant, found := lookup[id]
		if !found {
			continue
		}
		trios = append(trios, core.Trio{
			FamilyId:  participant.FamilyId,
			ProbandId: id,
			MotherId:  knownParent(participant.MaternalId, lookup),
			FatherId:  knownParent(participant.PaternalId, lookup),
		})
	}
	return trios
}

// VariantCallIndex maps sample set ids to the paths of their variant call
// files, remembering the order in which set ids and paths were first seen.
type VariantCallIndex struct {
	setIds []string
	paths  map[string][]string
}

// Indexes variant call entities by sample set id. Entities without a file
// path are skipped.
func NewVariantCallIndex(variantCalls []core.Entity) *VariantCallIndex {
	index := &VariantCallIndex{
		paths: make(map[string][]string),
	}
	for _, entity := range variantCalls {
		var call core.VariantCall
		decodeAttributes(entity, &call)
		if call.Path == "" {
			continue
		}
		if _, found := index.paths[call.SetId]; !found {
			index.setIds = append(index.setIds, call.SetId)
		}
		index.paths[call.SetId] = append(index.paths[call.SetId], call.Path)
	}
	return index
}

// Returns the indexed sample set ids in the order they were first seen.
func (index *VariantCallIndex) SetIds() []string {
	return index.setIds
}

// Returns the file paths for the given sample set id.
func (index *VariantCallIndex) Paths(setId string) []string {
	return index.paths[setId]
}

// Returns the number of file paths in the index.
func (index *VariantCallIndex) Len() int {
	n := 0
	for _, paths := range index.paths {
		n += len(paths)
	}
	return n
}

// Matches every trio member to the files of each sample set whose id contains
// the member's id, producing one report row per file. The match is a plain
// substring test, so "P1" matches the set "P10_M10_D10" too, and a file can
// appear more than once.
func MatchVcfs(label string, trios []core.Trio, index *VariantCallIndex) []core.Row {
	var rows []core.Row
	for _, trio := range trios {
		for _, member := range trio.Members() {
			for _, setId := range index.SetIds() {
				if !strings.Contains(setId, member.Id) {
					continue
				}
				for _, path := range index.Paths(setId) {
					rows = append(rows, core.Row{
						Workspace: label,
						FamilyId:  trio.FamilyId,
						SampleId:  member.Id,
						Role:      member.Role,
						Assay:     classify.AssayType(path),
						VcfType:   classify.VcfType(path),
						VcfPath:   path,
					})
				}
			}
		}
	}
	return rows
}
