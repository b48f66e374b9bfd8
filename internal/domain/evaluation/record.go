package evaluation

// StageID identifies one step of the ordered evaluation workflow. The IDs
// double as the public routing vocabulary of the API.
type StageID string

const (
	StageIdentification     StageID = "identification"
	StageRespiration        StageID = "respiration"
	StageNutrition          StageID = "nutrition"
	StageConsciousness      StageID = "consciousness"
	StageCommunication      StageID = "communication"
	StageOrofacial          StageID = "orofacial"
	StageDentition          StageID = "dentition"
	StageReflexes           StageID = "reflexes"
	StageNonNutritive       StageID = "non-nutritive"
	StageNonNutritiveResult StageID = "non-nutritive-result"
	StageNutritive          StageID = "nutritive"
	StageConclusions        StageID = "conclusions"
	StageSummary            StageID = "summary"
	StageFinal              StageID = "final"
)

// Record is the accumulated evaluation record. Every stage group is optional;
// a nil group means the stage has not been committed yet. The record is passed
// by value between stages and never mutated in place: Commit produces a new
// record whose only difference is the committed group and, for stages 9 and
// 10, the derived score.
type Record struct {
	Identification *IdentificationGroup `json:"identification,omitempty"`
	Respiration    *RespirationGroup    `json:"respiration,omitempty"`
	Nutrition      *NutritionGroup      `json:"nutrition,omitempty"`
	Consciousness  *ConsciousnessGroup  `json:"consciousness,omitempty"`
	Communication  *CommunicationGroup  `json:"communication,omitempty"`
	Orofacial      *OrofacialGroup      `json:"orofacial,omitempty"`
	Dentition      *DentitionGroup      `json:"dentition,omitempty"`
	Reflexes       *ReflexesGroup       `json:"reflexes,omitempty"`
	NonNutritive   *NonNutritiveGroup   `json:"nonNutritive,omitempty"`
	Nutritive      *NutritiveGroup      `json:"nutritive,omitempty"`
	Conclusions    *ConclusionsGroup    `json:"conclusions,omitempty"`

	NonNutritiveScore *float64 `json:"nonNutritiveScore,omitempty"`
	NutritiveScore    *float64 `json:"nutritiveScore,omitempty"`
}

// Empty reports whether no stage has been committed yet.
func (r Record) Empty() bool {
	return r.Identification == nil && r.Respiration == nil && r.Nutrition == nil &&
		r.Consciousness == nil && r.Communication == nil && r.Orofacial == nil &&
		r.Dentition == nil && r.Reflexes == nil && r.NonNutritive == nil &&
		r.Nutritive == nil && r.Conclusions == nil
}

// Clone returns a deep copy of the record. Groups and derived scores are
// copied so that mutating the clone can never alter the original.
func (r Record) Clone() Record {
	out := Record{}
	if r.Identification != nil {
		g := r.Identification.clone()
		out.Identification = &g
	}
	if r.Respiration != nil {
		g := r.Respiration.clone()
		out.Respiration = &g
	}
	if r.Nutrition != nil {
		g := r.Nutrition.clone()
		out.Nutrition = &g
	}
	if r.Consciousness != nil {
		g := r.Consciousness.clone()
		out.Consciousness = &g
	}
	if r.Communication != nil {
		g := *r.Communication
		out.Communication = &g
	}
	if r.Orofacial != nil {
		g := *r.Orofacial
		out.Orofacial = &g
	}
	if r.Dentition != nil {
		g := *r.Dentition
		out.Dentition = &g
	}
	if r.Reflexes != nil {
		g := *r.Reflexes
		out.Reflexes = &g
	}
	if r.NonNutritive != nil {
		g := *r.NonNutritive
		out.NonNutritive = &g
	}
	if r.Nutritive != nil {
		g := *r.Nutritive
		out.Nutritive = &g
	}
	if r.Conclusions != nil {
		g := r.Conclusions.clone()
		out.Conclusions = &g
	}
	if r.NonNutritiveScore != nil {
		v := *r.NonNutritiveScore
		out.NonNutritiveScore = &v
	}
	if r.NutritiveScore != nil {
		v := *r.NutritiveScore
		out.NutritiveScore = &v
	}
	return out
}

// HasGroup reports whether the group owned by the given form stage is present.
func (r Record) HasGroup(id StageID) bool {
	switch id {
	case StageIdentification:
		return r.Identification != nil
	case StageRespiration:
		return r.Respiration != nil
	case StageNutrition:
		return r.Nutrition != nil
	case StageConsciousness:
		return r.Consciousness != nil
	case StageCommunication:
		return r.Communication != nil
	case StageOrofacial:
		return r.Orofacial != nil
	case StageDentition:
		return r.Dentition != nil
	case StageReflexes:
		return r.Reflexes != nil
	case StageNonNutritive:
		return r.NonNutritive != nil
	case StageNutritive:
		return r.Nutritive != nil
	case StageConclusions:
		return r.Conclusions != nil
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
