package evaluation

import "fmt"

// State is a draft stage state under edit. The concrete type is a pointer to
// the stage's group struct.
type State any

// Stage is one entry of the registry. Hydrate copies the committed group out
// of the record (or yields defaults), Apply routes a field write through the
// stage's declared rules, Validate runs the required-when checks, Commit
// overlays the group onto a copy of the record, and Next resolves the stage
// that follows the committed record.
type Stage interface {
	ID() StageID
	Title() string
	Hydrate(Record) State
	Apply(State, FieldWrite) error
	Validate(State) []FieldError
	Commit(Record, State) (Record, error)
	Next(Record) StageID
	CloneState(State) State
}

type formStage[T any] struct {
	id    StageID
	title string
	def   *stageDef[T]

	fromRecord func(*Record) *T
	assign     func(*Record, *T)
	clone      func(T) T
	nextFn     func(Record) StageID
}

func (st *formStage[T]) ID() StageID   { return st.id }
func (st *formStage[T]) Title() string { return st.title }

func (st *formStage[T]) Hydrate(r Record) State {
	if g := st.fromRecord(&r); g != nil {
		cp := st.cloneGroup(*g)
		return &cp
	}
	return new(T)
}

func (st *formStage[T]) cloneGroup(g T) T {
	if st.clone != nil {
		return st.clone(g)
	}
	return g
}

// CloneState deep-copies a draft so that callers holding both never alias
// the same group.
func (st *formStage[T]) CloneState(s State) State {
	g, err := st.state(s)
	if err != nil {
		return s
	}
	cp := st.cloneGroup(*g)
	return &cp
}

func (st *formStage[T]) state(s State) (*T, error) {
	g, ok := s.(*T)
	if !ok {
		return nil, fmt.Errorf("stage %s: unexpected state type %T", st.id, s)
	}
	return g, nil
}

func (st *formStage[T]) Apply(s State, w FieldWrite) error {
	g, err := st.state(s)
	if err != nil {
		return err
	}
	return st.def.apply(g, w)
}

func (st *formStage[T]) Validate(s State) []FieldError {
	g, err := st.state(s)
	if err != nil {
		return []FieldError{{Field: "_stage", Message: err.Error()}}
	}
	return st.def.validate(g)
}

func (st *formStage[T]) Commit(r Record, s State) (Record, error) {
	g, err := st.state(s)
	if err != nil {
		return r, err
	}
	out := r.Clone()
	cp := st.cloneGroup(*g)
	st.assign(&out, &cp)
	return out, nil
}

func (st *formStage[T]) Next(r Record) StageID {
	if st.nextFn != nil {
		return st.nextFn(r)
	}
	return followingStage(st.id)
}

// formOrder is the fixed sequence of form stages; the gate, summary and final
// screens sit between non-nutritive and the end of the chain but own no group.
var formOrder = []StageID{
	StageIdentification,
	StageRespiration,
	StageNutrition,
	StageConsciousness,
	StageCommunication,
	StageOrofacial,
	StageDentition,
	StageReflexes,
	StageNonNutritive,
	StageNutritive,
	StageConclusions,
}

func followingStage(id StageID) StageID {
	switch id {
	case StageNonNutritive:
		return StageNonNutritiveResult
	case StageNutritive:
		return StageConclusions
	case StageConclusions:
		return StageSummary
	case StageSummary:
		return StageFinal
	}
	for i, s := range formOrder {
		if s == id && i+1 < len(formOrder) {
			return formOrder[i+1]
		}
	}
	return StageFinal
}

// Registry enumerates the form stages in fixed order.
type Registry struct {
	stages []Stage
	byID   map[StageID]Stage
}

func NewRegistry() *Registry {
	reg := &Registry{byID: make(map[StageID]Stage)}
	for _, st := range []Stage{
		identificationStage(),
		respirationStage(),
		nutritionStage(),
		consciousnessStage(),
		communicationStage(),
		orofacialStage(),
		dentitionStage(),
		reflexesStage(),
		nonNutritiveStage(),
		nutritiveStage(),
		conclusionsStage(),
	} {
		reg.stages = append(reg.stages, st)
		reg.byID[st.ID()] = st
	}
	return reg
}

// Stage returns the form stage with the given ID.
func (reg *Registry) Stage(id StageID) (Stage, bool) {
	st, ok := reg.byID[id]
	return st, ok
}

// First returns the workflow entry point.
func (reg *Registry) First() StageID { return StageIdentification }

// Predecessor resolves the immediate predecessor for back navigation. The
// predecessor of conclusions depends on whether the nutritive stage was
// entered; the first stage has none.
func (reg *Registry) Predecessor(id StageID, r Record) (StageID, bool) {
	switch id {
	case StageIdentification:
		return "", false
	case StageNonNutritiveResult:
		return StageNonNutritive, true
	case StageNutritive:
		return StageNonNutritiveResult, true
	case StageConclusions:
		if r.Nutritive != nil {
			return StageNutritive, true
		}
		return StageNonNutritiveResult, true
	case StageSummary:
		return StageConclusions, true
	case StageFinal:
		return StageSummary, true
	}
	for i, s := range formOrder {
		if s == id && i > 0 {
			return formOrder[i-1], true
		}
	}
	return "", false
}

// CanEnter reports whether the record satisfies the predecessor chain of the
// given stage. Routing a user to a stage for which this is false is a
// programming error; EarliestIncomplete names the recovery target.
func (reg *Registry) CanEnter(id StageID, r Record) bool {
	switch id {
	case StageIdentification:
		return true
	case StageNonNutritiveResult:
		return r.NonNutritive != nil
	case StageNutritive:
		return r.NonNutritive != nil
	case StageConclusions:
		return r.NonNutritive != nil
	case StageSummary, StageFinal:
		return r.Conclusions != nil
	}
	for i, s := range formOrder {
		if s != id {
			continue
		}
		for _, prev := range formOrder[:i] {
			if prev == StageNutritive {
				continue // optional, gated
			}
			if !r.HasGroup(prev) {
				return false
			}
		}
		return true
	}
	return false
}

// EarliestIncomplete returns the first stage of the chain whose group is
// absent from the record.
func (reg *Registry) EarliestIncomplete(r Record) StageID {
	for _, s := range formOrder {
		if s == StageNutritive {
			continue
		}
		if s == StageConclusions && r.Conclusions == nil {
			// The gate screen precedes conclusions.
			return StageNonNutritiveResult
		}
		if !r.HasGroup(s) {
			return s
		}
	}
	return StageSummary
}
