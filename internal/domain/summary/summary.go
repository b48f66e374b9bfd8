package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
)

// Document is the reviewable summary of a completed evaluation. Only the
// stages whose group was committed contribute a section; within a section,
// conditional detail items appear only under an asserted parent, matching
// what the professional actually captured.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Stage evaluation.StageID `json:"stage"`
	Title string             `json:"title"`
	Items []Item             `json:"items"`
}

// Item is one labelled line. Sub-items nest under their parent finding.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Items []Item `json:"items,omitempty"`
}

const (
	yes          = "Sí"
	no           = "No"
	notSpecified = "No especificado"
	noneSelected = "Ninguno"
)

func boolValue(v bool) string {
	if v {
		return yes
	}
	return no
}

func stringValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return v
}

func intValue(v *int) string {
	if v == nil {
		return notSpecified
	}
	return strconv.Itoa(*v)
}

func listValue(vs []string) string {
	if len(vs) == 0 {
		return noneSelected
	}
	return strings.Join(vs, ", ")
}

func percentValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Build assembles the summary document for the given record.
func Build(rec evaluation.Record) Document {
	doc := Document{Title: "Resumen de la Evaluación"}
	add := func(s *Section) {
		if s != nil {
			doc.Sections = append(doc.Sections, *s)
		}
	}
	add(identificationSection(rec.Identification))
	add(respirationSection(rec.Respiration))
	add(nutritionSection(rec.Nutrition))
	add(consciousnessSection(rec.Consciousness))
	add(communicationSection(rec.Communication))
	add(orofacialSection(rec.Orofacial))
	add(dentitionSection(rec.Dentition))
	add(reflexesSection(rec.Reflexes))
	add(nonNutritiveSection(rec.NonNutritive, rec.NonNutritiveScore))
	add(nutritiveSection(rec.Nutritive, rec.NutritiveScore))
	add(conclusionsSection(rec.Conclusions))
	return doc
}

func identificationSection(g *evaluation.IdentificationGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageIdentification, Title: "Etapa 1 - Identificación"}
	s.Items = append(s.Items,
		Item{Label: "Nombre Paciente", Value: stringValue(g.PatientName)},
		Item{Label: "Edad Paciente", Value: intValue(g.Age)},
	)
	history := Item{Label: "Antecedentes médicos", Value: boolValue(g.MedicalHistory)}
	if g.MedicalHistory {
		for _, h := range g.SelectedMedicalHistory {
			history.Items = append(history.Items, Item{Label: h})
		}
		if contains(g.SelectedMedicalHistory, "OTRO") && g.OtherMedicalHistory != "" {
			history.Items = append(history.Items, Item{Label: "OTRO", Value: g.OtherMedicalHistory})
		}
	}
	s.Items = append(s.Items, history,
		Item{Label: "Antecedentes de deglución previo", Value: stringValue(g.SwallowingHistory)},
	)
	return s
}

func respirationSection(g *evaluation.RespirationGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageRespiration, Title: "Etapa 2 - Respiración"}
	airway := Item{Label: "Sin uso de vía aérea artificial", Value: boolValue(g.NoArtificialAirway)}
	s.Items = append(s.Items, airway)
	if g.NoArtificialAirway {
		s.Items = append(s.Items, Item{Label: "Opciones de respiración", Value: listValue(g.SelectedOxygenDelivery)})
	}
	s.Items = append(s.Items,
		Item{Label: "Presentó intubación orotraqueal", Value: boolValue(g.OrotrachealIntubation)},
		Item{Label: "Presenta uso de traqueostomía", Value: boolValue(g.Tracheostomy)},
	)
	return s
}

func nutritionSection(g *evaluation.NutritionGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageNutrition, Title: "Etapa 3 - Nutrición"}
	s.Items = append(s.Items, Item{Label: "Presenta alimentación oral", Value: boolValue(g.HasOralFeeding)})
	if g.HasOralFeeding {
		s.Items = append(s.Items, Item{Label: "Consistencias orales seleccionadas", Value: listValue(g.SelectedOralConsistencies)})
	}
	s.Items = append(s.Items,
		Item{Label: "Presenta alimentación no oral", Value: boolValue(g.HasNonOralFeeding)},
		Item{Label: "Presenta alimentación mixta", Value: boolValue(g.HasMixedFeeding)},
	)
	return s
}

func consciousnessSection(g *evaluation.ConsciousnessGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageConsciousness, Title: "Etapa 4 - Estado de conciencia"}
	s.Items = append(s.Items,
		Item{Label: "Vigil", Value: boolValue(g.IsVigil)},
		Item{Label: "Alteración de conciencia", Value: boolValue(g.HasAlteredConsciousness)},
	)
	if g.HasAlteredConsciousness {
		s.Items = append(s.Items, Item{Label: "Tipos de alteración", Value: listValue(g.SelectedAlteredConsciousness)})
	}
	return s
}

func communicationSection(g *evaluation.CommunicationGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageCommunication, Title: "Etapa 5 - Comunicación"}
	s.Items = append(s.Items,
		Item{Label: "Cooperador y orientado", Value: boolValue(g.IsCooperativeAndOriented)},
		Item{Label: "No evaluable", Value: boolValue(g.IsNotEvaluable)},
	)
	cognitive := Item{Label: "Alteración cognitiva-conductual", Value: boolValue(g.HasCognitiveBehavioralAlteration)}
	if g.HasCognitiveBehavioralAlteration {
		cognitive.Items = []Item{
			{Label: "Cooperación", Value: stringValue(g.SelectedCooperation)},
			{Label: "Atención", Value: stringValue(g.SelectedAttention)},
			{Label: "Tranquilidad", Value: stringValue(g.SelectedCalmness)},
			{Label: "Orientación", Value: stringValue(g.SelectedOrientation)},
			{Label: "Seguimiento de Instrucciones", Value: stringValue(g.SelectedInstructionFollowing)},
		}
	}
	s.Items = append(s.Items, cognitive)
	voice := Item{Label: "Alteración en la voz", Value: boolValue(g.HasVoiceAlteration)}
	if g.HasVoiceAlteration {
		voice.Items = []Item{{Label: "Tipo de alteración en la voz", Value: stringValue(g.SelectedVoiceAlterationType)}}
	}
	s.Items = append(s.Items, voice)
	return s
}

func orofacialSection(g *evaluation.OrofacialGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageOrofacial, Title: "Etapa 6 - Evaluación estructural orofacial"}
	s.Items = append(s.Items,
		Item{Label: "No presenta alteración", Value: boolValue(g.NoPresentaAlteracion)},
		Item{Label: "Alteración de estructuras orofaciales", Value: boolValue(g.AlteracionEstructuras)},
	)
	motor := Item{Label: "Alteración motora", Value: boolValue(g.AlteracionMotora)}
	if g.AlteracionMotora {
		motor.Items = appendFlagged(nil,
			flagged{"Rango, fuerza y coordinación rostro y mandíbula", g.RangoFuerzaRostroMandibula},
			flagged{"Rostro y mandíbula derecha", g.RangoFuerzaRostroMandibulaDerecha},
			flagged{"Rostro y mandíbula izquierda", g.RangoFuerzaRostroMandibulaIzquierda},
			flagged{"Rango, fuerza y coordinación labios", g.RangoFuerzaLabios},
			flagged{"Labios derecha", g.RangoFuerzaLabiosDerecha},
			flagged{"Labios izquierda", g.RangoFuerzaLabiosIzquierda},
			flagged{"Rango, fuerza y coordinación lengua", g.RangoFuerzaLengua},
			flagged{"Lengua derecha", g.RangoFuerzaLenguaDerecha},
			flagged{"Lengua izquierda", g.RangoFuerzaLenguaIzquierda},
		)
	}
	s.Items = append(s.Items, motor)
	sens := Item{Label: "Alteración de sensibilidad oral", Value: boolValue(g.AlteracionSensibilidad)}
	if g.AlteracionSensibilidad {
		sens.Items = appendFlagged(nil,
			flagged{"Sensibilidad extraoral derecha", g.SensibilidadExtraoralDerecha},
			flagged{"Sensibilidad extraoral izquierda", g.SensibilidadExtraoralIzquierda},
			flagged{"Sensibilidad intraoral derecha", g.SensibilidadIntraoralDerecha},
			flagged{"Sensibilidad intraoral izquierda", g.SensibilidadIntraoralIzquierda},
		)
	}
	s.Items = append(s.Items, sens,
		Item{Label: "Asimetría facial", Value: boolValue(g.AsimetriaFacial)},
	)
	hygiene := Item{Label: "Higiene oral", Value: boolValue(g.HigieneOral)}
	if g.HigieneOral {
		hygiene.Items = appendFlagged(nil,
			flagged{"Buena", g.HigieneBuena},
			flagged{"Mala", g.HigieneMala},
			flagged{"Regular", g.HigieneRegular},
		)
	}
	s.Items = append(s.Items, hygiene)
	return s
}

func dentitionSection(g *evaluation.DentitionGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageDentition, Title: "Etapa 7 - Dentición"}
	s.Items = append(s.Items, Item{Label: "No presenta alteración de la dentición", Value: boolValue(g.NoPresentaAlteracion)})
	loss := Item{Label: "Pérdida de piezas dentales con o sin uso de prótesis dental", Value: boolValue(g.PerdidaPiezas)}
	if g.PerdidaPiezas {
		loss.Items = appendFlagged(nil,
			flagged{"Superior", g.Superior},
			flagged{"Inferior", g.Inferior},
			flagged{"Adaptada", g.Adaptada},
			flagged{"No adaptada", g.NoAdaptada},
			flagged{"Total", g.Total},
			flagged{"Parcial", g.Parcial},
			flagged{"Uso de adhesivo dental", g.UsoAdhesivo},
			flagged{"Evaluación realizada con uso de prótesis dental", g.EvaluacionConProtesis},
			flagged{"Evaluación realizada sin uso de prótesis dental", g.EvaluacionSinProtesis},
		)
	}
	s.Items = append(s.Items, loss)
	return s
}

func reflexesSection(g *evaluation.ReflexesGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageReflexes, Title: "Etapa 8 - Reflejos"}
	s.Items = append(s.Items,
		Item{Label: "No presenta alteración de los reflejos", Value: boolValue(g.NoPresentaAlteracion)},
	)
	altered := Item{Label: "Presenta alteración de los reflejos", Value: boolValue(g.PresentaAlteracion)}
	if g.PresentaAlteracion {
		altered.Items = []Item{
			{Label: "Tos voluntaria", Value: coughValue(g.TosVoluntariaProductiva, g.TosVoluntariaNoProductiva, g.TosVoluntariaAusente)},
			{Label: "Tos refleja", Value: coughValue(g.TosReflejaProductiva, g.TosReflejaNoProductiva, g.TosReflejaAusente)},
		}
	}
	s.Items = append(s.Items, altered)
	return s
}

func coughValue(productive, nonProductive, absent bool) string {
	switch {
	case productive:
		return "Presente productiva"
	case nonProductive:
		return "Presente no productiva"
	case absent:
		return "Ausente"
	}
	return notSpecified
}

func nonNutritiveSection(g *evaluation.NonNutritiveGroup, score *float64) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageNonNutritive, Title: "Etapa 9 - Deglución no nutritiva"}
	s.Items = append(s.Items, Item{Label: "Sin alteración en deglución no nutritiva", Value: boolValue(g.SinAlteracion)})
	if !g.SinAlteracion {
		saliva := Item{Label: "Acumulación de saliva", Value: boolValue(g.AcumulacionSaliva)}
		if g.AcumulacionSaliva {
			saliva.Items = []Item{{Label: "Escape anterior", Value: boolValue(g.EscapeAnterior)}}
		}
		s.Items = append(s.Items, saliva,
			Item{Label: "Xerostomía", Value: boolValue(g.Xerostomia)},
			Item{Label: "No deglute saliva espontáneamente", Value: boolValue(g.NoDegluteEspontaneamente)},
			Item{Label: "RMO (más de 1 segundo)", Value: boolValue(g.RmoMasDeUnSegundo)},
			Item{Label: "Excursión laríngea ausente", Value: boolValue(g.ExcursionLaringeaAusente)},
			Item{Label: "Odinofagia", Value: boolValue(g.Odinofagia)},
		)
		wet := Item{Label: "Voz húmeda sin aclaramiento", Value: boolValue(g.VozHumedaSinAclaramiento)}
		if g.VozHumedaSinAclaramiento {
			wet.Items = []Item{
				{Label: "Aclara la voz de forma espontánea", Value: boolValue(g.AclaraVozEspontanea)},
				{Label: "Aclara la voz a solicitud", Value: boolValue(g.AclaraVozSolicitud)},
				{Label: "Aclara la voz con degluciones consecutivas", Value: boolValue(g.AclaraVozDegluciones)},
				{Label: "Aclara la voz con carraspeo", Value: boolValue(g.AclaraVozCarraspeo)},
				{Label: "Aclara la voz con tos", Value: boolValue(g.AclaraVozTos)},
			}
		}
		s.Items = append(s.Items, wet,
			Item{Label: "Ascultación cervical húmeda", Value: boolValue(g.AscultacionCervicalHumeda)},
			Item{Label: "BDT (+) inmediato", Value: boolValue(g.BdtInmediato)},
			Item{Label: "Evaluación instrumental presenta penetración", Value: boolValue(g.EvaluacionPenetracion)},
			Item{Label: "Evaluación instrumental presenta aspiración", Value: boolValue(g.EvaluacionAspiracion)},
			Item{Label: "Evaluación instrumental presenta aspiración silente", Value: boolValue(g.EvaluacionAspiracionSilente)},
		)
	}
	if score != nil {
		s.Items = append(s.Items, Item{Label: "Puntaje de Deglución No Nutritiva", Value: percentValue(*score)})
	}
	return s
}

var nutritiveLabels = []struct {
	label string
	pick  func(*evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation
}{
	{"Líquido fino", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.FineLiquid }},
	{"Néctar", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.Nectar }},
	{"Miel", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.Honey }},
	{"Papilla", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.Puree }},
	{"Sólido blando", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.SoftSolid }},
	{"Sólido", func(g *evaluation.NutritiveGroup) evaluation.ConsistencyEvaluation { return g.Solid }},
}

func nutritiveSection(g *evaluation.NutritiveGroup, score *float64) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageNutritive, Title: "Etapa 10 - Deglución Nutritiva"}
	s.Items = append(s.Items, Item{Label: "Evaluación de deglución nutritiva realizada", Value: boolValue(g.Evaluated)})
	for _, nl := range nutritiveLabels {
		c := nl.pick(g)
		if !c.Evaluated() {
			continue
		}
		item := Item{Label: nl.label, Value: fmt.Sprintf("%d ml", c.Volume)}
		item.Items = appendFlagged(nil,
			flagged{"Tos", c.Cough},
			flagged{"Voz húmeda", c.WetVoice},
			flagged{"Aclaramiento de voz", c.VoiceClearing},
			flagged{"Estridor", c.Stridor},
			flagged{"Disnea", c.Dyspnea},
			flagged{"Cianosis", c.Cyanosis},
		)
		if strings.TrimSpace(c.OtherSigns) != "" {
			item.Items = append(item.Items, Item{Label: "Otros signos", Value: c.OtherSigns})
		}
		s.Items = append(s.Items, item)
	}
	if score != nil {
		s.Items = append(s.Items, Item{Label: "Puntaje de Deglución Nutritiva", Value: percentValue(*score)})
	}
	return s
}

func conclusionsSection(g *evaluation.ConclusionsGroup) *Section {
	if g == nil {
		return nil
	}
	s := &Section{Stage: evaluation.StageConclusions, Title: "Etapa 10.4 - Conclusiones"}
	s.Items = append(s.Items,
		Item{Label: "Sin trastorno de la deglución", Value: boolValue(g.SinTrastornoDeglucion)},
	)
	disorder := Item{Label: "Trastorno de la deglución", Value: boolValue(g.TrastornoDeglucion)}
	if g.TrastornoDeglucion {
		disorder.Items = []Item{{Label: "Origen del trastorno", Value: stringValue(g.TrastornoOrigen)}}
	}
	s.Items = append(s.Items, disorder,
		Item{Label: "No es posible determinar (general)", Value: boolValue(g.NoEsPosibleDeterminarGeneral)},
	)
	severity := Item{Label: "Escala de severidad", Value: boolValue(g.EscalaSeveridad)}
	if g.EscalaSeveridad {
		severity.Items = []Item{
			{Label: "DOSS", Value: stringValue(g.Doss)},
			{Label: "FILS", Value: stringValue(g.Fils)},
			{Label: "FOIS", Value: stringValue(g.Fois)},
		}
	}
	s.Items = append(s.Items, severity,
		Item{Label: "Alimentación total por boca", Value: boolValue(g.AlimentacionTotalBoca)},
		Item{Label: "Alimentación enteral", Value: boolValue(g.AlimentacionEnteral)},
		Item{Label: "Alimentación mixta", Value: boolValue(g.AlimentacionMixta)},
		Item{Label: "Sólo con especialista", Value: boolValue(g.SoloConEspecialista)},
	)
	foods := Item{Label: "Alimentos permitidos", Value: boolValue(g.AlimentosPermitidos)}
	if g.AlimentosPermitidos {
		foods.Items = []Item{{Label: "Consistencias de alimentos permitidos", Value: listValue(g.AlimentosPermitidosConsistencias)}}
	}
	drinks := Item{Label: "Bebidas permitidas", Value: boolValue(g.BebidasPermitidas)}
	if g.BebidasPermitidas {
		drinks.Items = []Item{{Label: "Consistencias de bebidas permitidas", Value: listValue(g.BebidasPermitidasConsistencias)}}
	}
	s.Items = append(s.Items, foods, drinks,
		Item{Label: "Ninguna viscosidad permitida", Value: boolValue(g.NingunaViscosidadPermitida)},
	)

	recs := Item{Label: "Otras Recomendaciones"}
	recs.Items = append(recs.Items,
		Item{Label: "Asistencia/Vigilancia", Value: boolValue(g.AsistenciaVigilancia)},
		Item{Label: "Posición de 45° a 90°", Value: boolValue(g.Posicion45a90)},
	)
	maneuver := Item{Label: "Maniobra deglutoria", Value: boolValue(g.ManiobraDeglutoria)}
	if g.ManiobraDeglutoria {
		maneuver.Items = []Item{{Label: "Tipos", Value: listValue(g.ManiobraDeglutoriaTipos)}}
	}
	recs.Items = append(recs.Items, maneuver,
		Item{Label: "Verificar residuos en boca", Value: boolValue(g.VerificarResiduosBoca)},
		Item{Label: "Modificación de volumen", Value: boolValue(g.ModificacionVolumen)},
		Item{Label: "Modificación de velocidad", Value: boolValue(g.ModificacionVelocidad)},
		Item{Label: "Modificación de temperatura", Value: boolValue(g.ModificacionTemperatura)},
		Item{Label: "Modificación de sabor", Value: boolValue(g.ModificacionSabor)},
		Item{Label: "Modificación de textura", Value: boolValue(g.ModificacionTextura)},
		Item{Label: "Modificación de consistencia", Value: boolValue(g.ModificacionConsistencia)},
		Item{Label: "Uso espesante", Value: boolValue(g.UsoEspesante)},
		Item{Label: "Uso cuchara medidora", Value: boolValue(g.UsoCucharaMedidora)},
		Item{Label: "Uso vaso adaptado", Value: boolValue(g.UsoVasoAdaptado)},
		Item{Label: "Uso jeringa", Value: boolValue(g.UsoJeringa)},
		Item{Label: "Uso bombilla", Value: boolValue(g.UsoBombilla)},
		Item{Label: "Uso prótesis dental", Value: boolValue(g.UsoProtesisDental)},
		Item{Label: "Optimizar higiene oral", Value: boolValue(g.OptimizarHigieneOral)},
		Item{Label: "Ninguna recomendación", Value: boolValue(g.NingunaRecomendacion)},
	)
	alt := Item{Label: "Instalación de vía alternativa", Value: boolValue(g.InstalacionViaAlternativa)}
	if g.InstalacionViaAlternativa {
		alt.Items = []Item{{Label: "Tipos de vía alternativa", Value: listValue(g.ViaAlternativaTipos)}}
	}
	recs.Items = append(recs.Items, alt,
		Item{Label: "Evaluación complementaria", Value: boolValue(g.EvaluacionComplementaria)},
		Item{Label: "Terapia de deglución", Value: boolValue(g.TerapiaDeglucion)},
		Item{Label: "Evaluación comunicativa", Value: boolValue(g.EvaluacionComunicativa)},
	)
	s.Items = append(s.Items, recs)

	stim := Item{Label: "Uso de estimulación"}
	stim.Items = []Item{
		{Label: "Sensorial", Value: boolValue(g.UsoEstimulacionSensorial)},
		{Label: "Térmica", Value: boolValue(g.UsoEstimulacionTermica)},
		{Label: "Mecánica", Value: boolValue(g.UsoEstimulacionMecanica)},
		{Label: "Eléctrica", Value: boolValue(g.UsoEstimulacionElectrica)},
		{Label: "Farmacológica", Value: boolValue(g.UsoEstimulacionFarmacologica)},
		{Label: "Otros", Value: stringValue(g.UsoEstimulacionOtros)},
	}
	s.Items = append(s.Items, stim)

	rehab := Item{Label: "Rehabilitación deglutoria", Value: boolValue(g.RehabilitacionDeglutoria)}
	if g.RehabilitacionDeglutoria {
		rehab.Items = []Item{{Label: "Tipos", Value: listValue(g.RehabilitacionDeglutoriaTipos)}}
		if contains(g.RehabilitacionDeglutoriaTipos, "otros") {
			rehab.Items = append(rehab.Items, Item{Label: "Otros (especificado)", Value: stringValue(g.RehabilitacionDeglutoriaOtros)})
		}
	}
	s.Items = append(s.Items, rehab)

	referral := Item{Label: "Derivación a"}
	referral.Items = []Item{
		{Label: "Nutricionista", Value: boolValue(g.DerivacionNutricionista)},
		{Label: "Kinesiólogo", Value: boolValue(g.DerivacionKinesiologo)},
		{Label: "Terapeuta Ocupacional", Value: boolValue(g.DerivacionTerapeutaOcupacional)},
		{Label: "Médico", Value: boolValue(g.DerivacionMedico)},
		{Label: "Otros", Value: stringValue(g.DerivacionOtros)},
	}
	s.Items = append(s.Items, referral,
		Item{Label: "Observaciones", Value: stringValue(g.Observaciones)},
	)
	return s
}

type flagged struct {
	label string
	on    bool
}

func appendFlagged(items []Item, flags ...flagged) []Item {
	for _, f := range flags {
		if f.on {
			items = append(items, Item{Label: f.label})
		}
	}
	return items
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}
