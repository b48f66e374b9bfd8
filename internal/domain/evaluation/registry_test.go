package evaluation

import "testing"

// committedThrough returns a record with every form group up to and including
// the given stage, in form order.
func committedThrough(id StageID) Record {
	r := Record{}
	for _, s := range formOrder {
		if s == StageNutritive {
			continue
		}
		switch s {
		case StageIdentification:
			r.Identification = &IdentificationGroup{PatientName: "Carmen Díaz", Age: intPtr(72)}
		case StageRespiration:
			r.Respiration = &RespirationGroup{NoArtificialAirway: true}
		case StageNutrition:
			r.Nutrition = &NutritionGroup{HasNonOralFeeding: true}
		case StageConsciousness:
			r.Consciousness = &ConsciousnessGroup{IsVigil: true}
		case StageCommunication:
			r.Communication = &CommunicationGroup{IsCooperativeAndOriented: true}
		case StageOrofacial:
			r.Orofacial = &OrofacialGroup{NoPresentaAlteracion: true}
		case StageDentition:
			r.Dentition = &DentitionGroup{NoPresentaAlteracion: true}
		case StageReflexes:
			r.Reflexes = &ReflexesGroup{NoPresentaAlteracion: true}
		case StageNonNutritive:
			r.NonNutritive = &NonNutritiveGroup{SinAlteracion: true}
			score := NonNutritiveScore(*r.NonNutritive)
			r.NonNutritiveScore = &score
		case StageConclusions:
			r.Conclusions = &ConclusionsGroup{SinTrastornoDeglucion: true, AlimentacionTotalBoca: true}
		}
		if s == id {
			break
		}
	}
	return r
}

func TestRegistry_AllFormStagesRegistered(t *testing.T) {
	reg := NewRegistry()
	for _, id := range formOrder {
		if _, ok := reg.Stage(id); !ok {
			t.Errorf("stage %s missing from registry", id)
		}
	}
	if _, ok := reg.Stage(StageSummary); ok {
		t.Error("summary is a screen, not a form stage")
	}
	if reg.First() != StageIdentification {
		t.Errorf("expected first stage identification, got %s", reg.First())
	}
}

func TestStage_NextFollowsFormOrder(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		id   StageID
		next StageID
	}{
		{StageIdentification, StageRespiration},
		{StageRespiration, StageNutrition},
		{StageReflexes, StageNonNutritive},
		{StageNonNutritive, StageNonNutritiveResult},
		{StageNutritive, StageConclusions},
		{StageConclusions, StageSummary},
	}
	for _, tt := range tests {
		st, ok := reg.Stage(tt.id)
		if !ok {
			t.Fatalf("stage %s missing", tt.id)
		}
		if got := st.Next(Record{}); got != tt.next {
			t.Errorf("Next(%s) = %s, want %s", tt.id, got, tt.next)
		}
	}
}

func TestRegistry_Predecessor(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Predecessor(StageIdentification, Record{}); ok {
		t.Error("identification has no predecessor")
	}

	tests := []struct {
		id   StageID
		rec  Record
		want StageID
	}{
		{StageRespiration, Record{}, StageIdentification},
		{StageNonNutritiveResult, Record{}, StageNonNutritive},
		{StageNutritive, Record{}, StageNonNutritiveResult},
		{StageConclusions, Record{}, StageNonNutritiveResult},
		{StageConclusions, Record{Nutritive: &NutritiveGroup{Evaluated: true}}, StageNutritive},
		{StageSummary, Record{}, StageConclusions},
	}
	for _, tt := range tests {
		got, ok := reg.Predecessor(tt.id, tt.rec)
		if !ok {
			t.Fatalf("Predecessor(%s) reported none", tt.id)
		}
		if got != tt.want {
			t.Errorf("Predecessor(%s) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestRegistry_CanEnter(t *testing.T) {
	reg := NewRegistry()

	if !reg.CanEnter(StageIdentification, Record{}) {
		t.Error("identification must always be enterable")
	}
	if reg.CanEnter(StageRespiration, Record{}) {
		t.Error("respiration requires identification")
	}

	r := committedThrough(StageCommunication)
	if !reg.CanEnter(StageOrofacial, r) {
		t.Error("orofacial should be enterable after communication")
	}
	if reg.CanEnter(StageNonNutritive, r) {
		t.Error("non-nutritive requires the examination stages")
	}

	r = committedThrough(StageNonNutritive)
	if !reg.CanEnter(StageNonNutritiveResult, r) {
		t.Error("result screen should follow the committed non-nutritive group")
	}
	if !reg.CanEnter(StageNutritive, r) {
		t.Error("nutritive stage entry depends on the gate, not the chain")
	}
	if reg.CanEnter(StageSummary, r) {
		t.Error("summary requires conclusions")
	}

	// Conclusions never requires the optional nutritive group.
	if !reg.CanEnter(StageConclusions, r) {
		t.Error("conclusions should be enterable without the nutritive group")
	}
}

func TestRegistry_EarliestIncomplete(t *testing.T) {
	reg := NewRegistry()

	if got := reg.EarliestIncomplete(Record{}); got != StageIdentification {
		t.Errorf("empty record: got %s", got)
	}
	if got := reg.EarliestIncomplete(committedThrough(StageNutrition)); got != StageConsciousness {
		t.Errorf("after nutrition: got %s", got)
	}
	// With the chain complete up to stage 9, the gate screen is the earliest
	// open step even though the nutritive group is absent.
	if got := reg.EarliestIncomplete(committedThrough(StageNonNutritive)); got != StageNonNutritiveResult {
		t.Errorf("after non-nutritive: got %s", got)
	}
	if got := reg.EarliestIncomplete(committedThrough(StageConclusions)); got != StageSummary {
		t.Errorf("complete record: got %s", got)
	}
}
