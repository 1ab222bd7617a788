package core

// Phenotype associates a participant with an HPO term. Its fields are decoded
// from the attributes of a "phenotype" entity.
type Phenotype struct {
	ParticipantId string `mapstructure:"participant_id"`
	TermId        string `mapstructure:"term_id"`
}

// Participant holds the family structure recorded for a single individual.
// Parents that aren't known are recorded with the NoParent sentinel.
type Participant struct {
	Id         string `mapstructure:"-"`
	FamilyId   string `mapstructure:"family_id"`
	MaternalId string `mapstructure:"maternal_id"`
	PaternalId string `mapstructure:"paternal_id"`
}

// the sentinel value for an unknown parent
const NoParent = "0"

// the family id assigned to a participant with no recorded family
const UnknownFamily = "?"

// A Trio is a proband along with up to two parents who appear in the same
// participant table. An absent parent has an empty id.
type Trio struct {
	FamilyId  string
	ProbandId string
	MotherId  string
	FatherId  string
}

// TrioMember is a participant within a trio along with the role it plays.
type TrioMember struct {
	Role Role
	Id   string
}

// Members returns the trio's present members in proband, mother, father
// order.
func (t Trio) Members() []TrioMember {
	members := []TrioMember{{Role: Proband, Id: t.ProbandId}}
	if t.MotherId != "" {
		members = append(members, TrioMember{Role: Mother, Id: t.MotherId})
	}
	if t.FatherId != "" {
		members = append(members, TrioMember{Role: Father, Id: t.FatherId})
	}
	return members
}

// VariantCall is a single variant call file produced for a sample set. Its
// fields are decoded from a "called_variants_dna_short_read" entity.
type VariantCall struct {
	SetId string `mapstructure:"aligned_dna_short_read_set_id"`
	Path  string `mapstructure:"called_variants_dna_file"`
}
