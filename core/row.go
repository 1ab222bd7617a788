package core

// Role describes a trio member's relationship to the proband.
type Role string

const (
	Proband Role = "proband"
	Mother  Role = "mother"
	Father  Role = "father"
)

// Priority gives the position of a role in report ordering. Unrecognized
// roles sort last.
func (r Role) Priority() int {
	switch r {
	case Proband:
		return 0
	case Mother:
		return 1
	case Father:
		return 2
	default:
		return 9
	}
}

// A Row is a single line in a trio VCF report. The csv tags give the report's
// column headers.
type Row struct {
	Workspace string `csv:"workspace"`
	FamilyId  string `csv:"family_id"`
	SampleId  string `csv:"sample_id"`
	Role      Role   `csv:"role"`
	Assay     string `csv:"assay"`
	VcfType   string `csv:"vcf_type"`
	VcfPath   string `csv:"vcf_path"`
}
