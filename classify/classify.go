// Package classify guesses the assay and variant type of a variant call file
// from markers in its path.
package classify

import (
	"strings"
)

// a path marker and the class it indicates
type rule struct {
	Markers []string
	Class   string
}

// variant type rules, matched against the lower-cased path in order
var vcfTypeRules = []rule{
	{Markers: []string{".sv."}, Class: "SV"},
	{Markers: []string{".cnv."}, Class: "CNV"},
	{Markers: []string{"hard-filtered"}, Class: "SNV"},
	{Markers: []string{"clinical_exome"}, Class: "clinical"},
	{Markers: []string{"deepvariant"}, Class: "DeepVariant"},
}

// assay rules, matched against the path as given, in order
var assayTypeRules = []rule{
	{Markers: []string{"/WGS/", "_WGS"}, Class: "WGS"},
	{Markers: []string{"/ES/", "Exome"}, Class: "Exome"},
	{Markers: []string{"/MGI/", "_MGI"}, Class: "MGI"},
	{Markers: []string{"/WGBS/", "_WGBS"}, Class: "WGBS"},
	{Markers: []string{"long-read", "PacBio"}, Class: "PacBio"},
}

// the variant type given to a path with no recognized marker
const OtherVcfType = "other"

// the assay given to a path with no recognized marker
const UnknownAssay = "unknown"

// returns the class of the first rule with a marker found in s, or fallback
func firstMatch(s string, rules []rule, fallback string) string {
	for _, r := range rules {
		for _, marker := range r.Markers {
			if strings.Contains(s, marker) {
				return r.Class
			}
		}
	}
	return fallback
}

// Returns the variant type of the file at the given path: SV, CNV, SNV,
// clinical, DeepVariant, or other. Markers are matched without regard to case.
func VcfType(path string) string {
	return firstMatch(strings.ToLower(path), vcfTypeRules, OtherVcfType)
}

// Returns the sequencing assay that produced the file at the given path: WGS,
// Exome, MGI, WGBS, PacBio, or unknown.
func AssayType(path string) string {
	return firstMatch(path, assayTypeRules, UnknownAssay)
}
