package evaluation

// Definitions for the clinical examination stages (6-9): orofacial structure,
// dentition, reflexes and non-nutritive swallowing.

func orofacialStage() Stage {
	b := func(name string, get func(*OrofacialGroup) bool, set func(*OrofacialGroup, bool)) boolField[OrofacialGroup] {
		return boolField[OrofacialGroup]{name, get, set}
	}
	d := &stageDef[OrofacialGroup]{
		bools: []boolField[OrofacialGroup]{
			b("noPresentaAlteracion",
				func(g *OrofacialGroup) bool { return g.NoPresentaAlteracion },
				func(g *OrofacialGroup, v bool) { g.NoPresentaAlteracion = v }),
			b("alteracionEstructuras",
				func(g *OrofacialGroup) bool { return g.AlteracionEstructuras },
				func(g *OrofacialGroup, v bool) { g.AlteracionEstructuras = v }),
			b("alteracionMotora",
				func(g *OrofacialGroup) bool { return g.AlteracionMotora },
				func(g *OrofacialGroup, v bool) { g.AlteracionMotora = v }),
			b("rangoFuerzaRostroMandibula",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaRostroMandibula },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaRostroMandibula = v }),
			b("rangoFuerzaRostroMandibulaDerecha",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaRostroMandibulaDerecha },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaRostroMandibulaDerecha = v }),
			b("rangoFuerzaRostroMandibulaIzquierda",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaRostroMandibulaIzquierda },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaRostroMandibulaIzquierda = v }),
			b("rangoFuerzaLabios",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLabios },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLabios = v }),
			b("rangoFuerzaLabiosDerecha",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLabiosDerecha },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLabiosDerecha = v }),
			b("rangoFuerzaLabiosIzquierda",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLabiosIzquierda },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLabiosIzquierda = v }),
			b("rangoFuerzaLengua",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLengua },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLengua = v }),
			b("rangoFuerzaLenguaDerecha",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLenguaDerecha },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLenguaDerecha = v }),
			b("rangoFuerzaLenguaIzquierda",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLenguaIzquierda },
				func(g *OrofacialGroup, v bool) { g.RangoFuerzaLenguaIzquierda = v }),
			b("alteracionSensibilidad",
				func(g *OrofacialGroup) bool { return g.AlteracionSensibilidad },
				func(g *OrofacialGroup, v bool) { g.AlteracionSensibilidad = v }),
			b("sensibilidadExtraoralDerecha",
				func(g *OrofacialGroup) bool { return g.SensibilidadExtraoralDerecha },
				func(g *OrofacialGroup, v bool) { g.SensibilidadExtraoralDerecha = v }),
			b("sensibilidadExtraoralIzquierda",
				func(g *OrofacialGroup) bool { return g.SensibilidadExtraoralIzquierda },
				func(g *OrofacialGroup, v bool) { g.SensibilidadExtraoralIzquierda = v }),
			b("sensibilidadIntraoralDerecha",
				func(g *OrofacialGroup) bool { return g.SensibilidadIntraoralDerecha },
				func(g *OrofacialGroup, v bool) { g.SensibilidadIntraoralDerecha = v }),
			b("sensibilidadIntraoralIzquierda",
				func(g *OrofacialGroup) bool { return g.SensibilidadIntraoralIzquierda },
				func(g *OrofacialGroup, v bool) { g.SensibilidadIntraoralIzquierda = v }),
			b("asimetriaFacial",
				func(g *OrofacialGroup) bool { return g.AsimetriaFacial },
				func(g *OrofacialGroup, v bool) { g.AsimetriaFacial = v }),
			b("higieneOral",
				func(g *OrofacialGroup) bool { return g.HigieneOral },
				func(g *OrofacialGroup, v bool) { g.HigieneOral = v }),
			b("higieneBuena",
				func(g *OrofacialGroup) bool { return g.HigieneBuena },
				func(g *OrofacialGroup, v bool) { g.HigieneBuena = v }),
			b("higieneMala",
				func(g *OrofacialGroup) bool { return g.HigieneMala },
				func(g *OrofacialGroup, v bool) { g.HigieneMala = v }),
			b("higieneRegular",
				func(g *OrofacialGroup) bool { return g.HigieneRegular },
				func(g *OrofacialGroup, v bool) { g.HigieneRegular = v }),
		},
		exclusions: []exclusion{
			{members: []string{"noPresentaAlteracion", "alteracionEstructuras"}},
			{members: []string{"noPresentaAlteracion", "alteracionMotora"}},
			{members: []string{"noPresentaAlteracion", "alteracionSensibilidad"}},
			{members: []string{"noPresentaAlteracion", "asimetriaFacial"}},
			{members: []string{"noPresentaAlteracion", "higieneOral"}},
			{members: []string{"higieneBuena", "higieneMala", "higieneRegular"}},
		},
		reveals: []reveal[OrofacialGroup]{
			{"alteracionMotora", func(g *OrofacialGroup) {
				g.RangoFuerzaRostroMandibula = false
				g.RangoFuerzaRostroMandibulaDerecha = false
				g.RangoFuerzaRostroMandibulaIzquierda = false
				g.RangoFuerzaLabios = false
				g.RangoFuerzaLabiosDerecha = false
				g.RangoFuerzaLabiosIzquierda = false
				g.RangoFuerzaLengua = false
				g.RangoFuerzaLenguaDerecha = false
				g.RangoFuerzaLenguaIzquierda = false
			}},
			{"rangoFuerzaRostroMandibula", func(g *OrofacialGroup) {
				g.RangoFuerzaRostroMandibulaDerecha = false
				g.RangoFuerzaRostroMandibulaIzquierda = false
			}},
			{"rangoFuerzaLabios", func(g *OrofacialGroup) {
				g.RangoFuerzaLabiosDerecha = false
				g.RangoFuerzaLabiosIzquierda = false
			}},
			{"rangoFuerzaLengua", func(g *OrofacialGroup) {
				g.RangoFuerzaLenguaDerecha = false
				g.RangoFuerzaLenguaIzquierda = false
			}},
			{"alteracionSensibilidad", func(g *OrofacialGroup) {
				g.SensibilidadExtraoralDerecha = false
				g.SensibilidadExtraoralIzquierda = false
				g.SensibilidadIntraoralDerecha = false
				g.SensibilidadIntraoralIzquierda = false
			}},
			{"higieneOral", func(g *OrofacialGroup) {
				g.HigieneBuena = false
				g.HigieneMala = false
				g.HigieneRegular = false
			}},
		},
		checks: []check[OrofacialGroup]{
			{"noPresentaAlteracion", "Seleccione al menos una opción de la evaluación orofacial.", nil,
				func(g *OrofacialGroup) bool {
					return g.NoPresentaAlteracion || g.AlteracionEstructuras || g.AlteracionMotora ||
						g.AlteracionSensibilidad || g.AsimetriaFacial || g.HigieneOral
				}},
			{"alteracionMotora", "Seleccione al menos una opción de alteración motora.",
				func(g *OrofacialGroup) bool { return g.AlteracionMotora },
				func(g *OrofacialGroup) bool {
					return g.RangoFuerzaRostroMandibula || g.RangoFuerzaLabios || g.RangoFuerzaLengua
				}},
			{"rangoFuerzaRostroMandibula", "Indique el lado afectado en rostro y mandíbula.",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaRostroMandibula },
				func(g *OrofacialGroup) bool {
					return g.RangoFuerzaRostroMandibulaDerecha || g.RangoFuerzaRostroMandibulaIzquierda
				}},
			{"rangoFuerzaLabios", "Indique el lado afectado en labios.",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLabios },
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLabiosDerecha || g.RangoFuerzaLabiosIzquierda }},
			{"rangoFuerzaLengua", "Indique el lado afectado en lengua.",
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLengua },
				func(g *OrofacialGroup) bool { return g.RangoFuerzaLenguaDerecha || g.RangoFuerzaLenguaIzquierda }},
			{"alteracionSensibilidad", "Seleccione al menos una opción de alteración de sensibilidad oral.",
				func(g *OrofacialGroup) bool { return g.AlteracionSensibilidad },
				func(g *OrofacialGroup) bool {
					return g.SensibilidadExtraoralDerecha || g.SensibilidadExtraoralIzquierda ||
						g.SensibilidadIntraoralDerecha || g.SensibilidadIntraoralIzquierda
				}},
			{"higieneOral", "Seleccione una opción de higiene oral.",
				func(g *OrofacialGroup) bool { return g.HigieneOral },
				func(g *OrofacialGroup) bool { return g.HigieneBuena || g.HigieneMala || g.HigieneRegular }},
		},
	}
	return &formStage[OrofacialGroup]{
		id:    StageOrofacial,
		title: "Etapa 6 - Evaluación estructural orofacial",
		def:   d,
		fromRecord: func(r *Record) *OrofacialGroup { return r.Orofacial },
		assign:     func(r *Record, g *OrofacialGroup) { r.Orofacial = g },
	}
}

func dentitionStage() Stage {
	d := &stageDef[DentitionGroup]{
		bools: []boolField[DentitionGroup]{
			{"noPresentaAlteracion",
				func(g *DentitionGroup) bool { return g.NoPresentaAlteracion },
				func(g *DentitionGroup, v bool) { g.NoPresentaAlteracion = v }},
			{"perdidaPiezas",
				func(g *DentitionGroup) bool { return g.PerdidaPiezas },
				func(g *DentitionGroup, v bool) { g.PerdidaPiezas = v }},
			{"superior",
				func(g *DentitionGroup) bool { return g.Superior },
				func(g *DentitionGroup, v bool) { g.Superior = v }},
			{"inferior",
				func(g *DentitionGroup) bool { return g.Inferior },
				func(g *DentitionGroup, v bool) { g.Inferior = v }},
			{"adaptada",
				func(g *DentitionGroup) bool { return g.Adaptada },
				func(g *DentitionGroup, v bool) { g.Adaptada = v }},
			{"noAdaptada",
				func(g *DentitionGroup) bool { return g.NoAdaptada },
				func(g *DentitionGroup, v bool) { g.NoAdaptada = v }},
			{"total",
				func(g *DentitionGroup) bool { return g.Total },
				func(g *DentitionGroup, v bool) { g.Total = v }},
			{"parcial",
				func(g *DentitionGroup) bool { return g.Parcial },
				func(g *DentitionGroup, v bool) { g.Parcial = v }},
			{"usoAdhesivo",
				func(g *DentitionGroup) bool { return g.UsoAdhesivo },
				func(g *DentitionGroup, v bool) { g.UsoAdhesivo = v }},
			{"evaluacionConProtesis",
				func(g *DentitionGroup) bool { return g.EvaluacionConProtesis },
				func(g *DentitionGroup, v bool) { g.EvaluacionConProtesis = v }},
			{"evaluacionSinProtesis",
				func(g *DentitionGroup) bool { return g.EvaluacionSinProtesis },
				func(g *DentitionGroup, v bool) { g.EvaluacionSinProtesis = v }},
		},
		exclusions: []exclusion{
			{members: []string{"noPresentaAlteracion", "perdidaPiezas"}},
			{members: []string{"adaptada", "noAdaptada"}},
			{members: []string{"total", "parcial"}},
			{members: []string{"evaluacionConProtesis", "evaluacionSinProtesis"}},
		},
		reveals: []reveal[DentitionGroup]{
			{"perdidaPiezas", func(g *DentitionGroup) {
				g.Superior = false
				g.Inferior = false
				g.Adaptada = false
				g.NoAdaptada = false
				g.Total = false
				g.Parcial = false
				g.UsoAdhesivo = false
				g.EvaluacionConProtesis = false
				g.EvaluacionSinProtesis = false
			}},
		},
		checks: []check[DentitionGroup]{
			{"noPresentaAlteracion", "Seleccione una opción de dentición.", nil,
				func(g *DentitionGroup) bool { return g.NoPresentaAlteracion || g.PerdidaPiezas }},
			{"superior", "Indique si la pérdida de piezas es superior o inferior.",
				func(g *DentitionGroup) bool { return g.PerdidaPiezas },
				func(g *DentitionGroup) bool { return g.Superior || g.Inferior }},
			{"adaptada", "Indique si la prótesis está adaptada o no adaptada.",
				func(g *DentitionGroup) bool { return g.PerdidaPiezas },
				func(g *DentitionGroup) bool { return g.Adaptada || g.NoAdaptada }},
			{"total", "Indique si la prótesis es total o parcial.",
				func(g *DentitionGroup) bool { return g.PerdidaPiezas },
				func(g *DentitionGroup) bool { return g.Total || g.Parcial }},
			{"evaluacionConProtesis", "Indique si la evaluación se realizó con o sin prótesis.",
				func(g *DentitionGroup) bool { return g.PerdidaPiezas },
				func(g *DentitionGroup) bool { return g.EvaluacionConProtesis || g.EvaluacionSinProtesis }},
		},
	}
	return &formStage[DentitionGroup]{
		id:    StageDentition,
		title: "Etapa 7 - Dentición",
		def:   d,
		fromRecord: func(r *Record) *DentitionGroup { return r.Dentition },
		assign:     func(r *Record, g *DentitionGroup) { r.Dentition = g },
	}
}

func reflexesStage() Stage {
	d := &stageDef[ReflexesGroup]{
		bools: []boolField[ReflexesGroup]{
			{"noPresentaAlteracion",
				func(g *ReflexesGroup) bool { return g.NoPresentaAlteracion },
				func(g *ReflexesGroup, v bool) { g.NoPresentaAlteracion = v }},
			{"presentaAlteracion",
				func(g *ReflexesGroup) bool { return g.PresentaAlteracion },
				func(g *ReflexesGroup, v bool) { g.PresentaAlteracion = v }},
			{"tosVoluntariaProductiva",
				func(g *ReflexesGroup) bool { return g.TosVoluntariaProductiva },
				func(g *ReflexesGroup, v bool) { g.TosVoluntariaProductiva = v }},
			{"tosVoluntariaNoProductiva",
				func(g *ReflexesGroup) bool { return g.TosVoluntariaNoProductiva },
				func(g *ReflexesGroup, v bool) { g.TosVoluntariaNoProductiva = v }},
			{"tosVoluntariaAusente",
				func(g *ReflexesGroup) bool { return g.TosVoluntariaAusente },
				func(g *ReflexesGroup, v bool) { g.TosVoluntariaAusente = v }},
			{"tosReflejaProductiva",
				func(g *ReflexesGroup) bool { return g.TosReflejaProductiva },
				func(g *ReflexesGroup, v bool) { g.TosReflejaProductiva = v }},
			{"tosReflejaNoProductiva",
				func(g *ReflexesGroup) bool { return g.TosReflejaNoProductiva },
				func(g *ReflexesGroup, v bool) { g.TosReflejaNoProductiva = v }},
			{"tosReflejaAusente",
				func(g *ReflexesGroup) bool { return g.TosReflejaAusente },
				func(g *ReflexesGroup, v bool) { g.TosReflejaAusente = v }},
		},
		exclusions: []exclusion{
			{members: []string{"noPresentaAlteracion", "presentaAlteracion"}},
			{members: []string{"tosVoluntariaProductiva", "tosVoluntariaNoProductiva", "tosVoluntariaAusente"}},
			{members: []string{"tosReflejaProductiva", "tosReflejaNoProductiva", "tosReflejaAusente"}},
		},
		reveals: []reveal[ReflexesGroup]{
			{"presentaAlteracion", func(g *ReflexesGroup) {
				g.TosVoluntariaProductiva = false
				g.TosVoluntariaNoProductiva = false
				g.TosVoluntariaAusente = false
				g.TosReflejaProductiva = false
				g.TosReflejaNoProductiva = false
				g.TosReflejaAusente = false
			}},
		},
		checks: []check[ReflexesGroup]{
			{"noPresentaAlteracion", "Seleccione una opción de reflejos.", nil,
				func(g *ReflexesGroup) bool { return g.NoPresentaAlteracion || g.PresentaAlteracion }},
			{"tosVoluntariaProductiva", "Seleccione una opción de tos voluntaria.",
				func(g *ReflexesGroup) bool { return g.PresentaAlteracion },
				func(g *ReflexesGroup) bool {
					return g.TosVoluntariaProductiva || g.TosVoluntariaNoProductiva || g.TosVoluntariaAusente
				}},
			{"tosReflejaProductiva", "Seleccione una opción de tos refleja.",
				func(g *ReflexesGroup) bool { return g.PresentaAlteracion },
				func(g *ReflexesGroup) bool {
					return g.TosReflejaProductiva || g.TosReflejaNoProductiva || g.TosReflejaAusente
				}},
		},
	}
	return &formStage[ReflexesGroup]{
		id:    StageReflexes,
		title: "Etapa 8 - Reflejos",
		def:   d,
		fromRecord: func(r *Record) *ReflexesGroup { return r.Reflexes },
		assign:     func(r *Record, g *ReflexesGroup) { r.Reflexes = g },
	}
}

// nonNutritiveIndicators lists the twelve risk indicators counted by the
// stage-9 scorer, in form order. The sub-options under voz húmeda and the
// escape anterior detail do not count.
var nonNutritiveIndicators = []string{
	"acumulacionSaliva",
	"xerostomia",
	"noDegluteEspontaneamente",
	"rmoMasDeUnSegundo",
	"excursionLaringeaAusente",
	"odinofagia",
	"vozHumedaSinAclaramiento",
	"ascultacionCervicalHumeda",
	"bdtInmediato",
	"evaluacionPenetracion",
	"evaluacionAspiracion",
	"evaluacionAspiracionSilente",
}

func nonNutritiveStage() Stage {
	d := &stageDef[NonNutritiveGroup]{
		bools: []boolField[NonNutritiveGroup]{
			{"sinAlteracion",
				func(g *NonNutritiveGroup) bool { return g.SinAlteracion },
				func(g *NonNutritiveGroup, v bool) { g.SinAlteracion = v }},
			{"acumulacionSaliva",
				func(g *NonNutritiveGroup) bool { return g.AcumulacionSaliva },
				func(g *NonNutritiveGroup, v bool) { g.AcumulacionSaliva = v }},
			{"escapeAnterior",
				func(g *NonNutritiveGroup) bool { return g.EscapeAnterior },
				func(g *NonNutritiveGroup, v bool) { g.EscapeAnterior = v }},
			{"xerostomia",
				func(g *NonNutritiveGroup) bool { return g.Xerostomia },
				func(g *NonNutritiveGroup, v bool) { g.Xerostomia = v }},
			{"noDegluteEspontaneamente",
				func(g *NonNutritiveGroup) bool { return g.NoDegluteEspontaneamente },
				func(g *NonNutritiveGroup, v bool) { g.NoDegluteEspontaneamente = v }},
			{"rmoMasDeUnSegundo",
				func(g *NonNutritiveGroup) bool { return g.RmoMasDeUnSegundo },
				func(g *NonNutritiveGroup, v bool) { g.RmoMasDeUnSegundo = v }},
			{"excursionLaringeaAusente",
				func(g *NonNutritiveGroup) bool { return g.ExcursionLaringeaAusente },
				func(g *NonNutritiveGroup, v bool) { g.ExcursionLaringeaAusente = v }},
			{"odinofagia",
				func(g *NonNutritiveGroup) bool { return g.Odinofagia },
				func(g *NonNutritiveGroup, v bool) { g.Odinofagia = v }},
			{"vozHumedaSinAclaramiento",
				func(g *NonNutritiveGroup) bool { return g.VozHumedaSinAclaramiento },
				func(g *NonNutritiveGroup, v bool) { g.VozHumedaSinAclaramiento = v }},
			{"aclaraVozEspontanea",
				func(g *NonNutritiveGroup) bool { return g.AclaraVozEspontanea },
				func(g *NonNutritiveGroup, v bool) { g.AclaraVozEspontanea = v }},
			{"aclaraVozSolicitud",
				func(g *NonNutritiveGroup) bool { return g.AclaraVozSolicitud },
				func(g *NonNutritiveGroup, v bool) { g.AclaraVozSolicitud = v }},
			{"aclaraVozDegluciones",
				func(g *NonNutritiveGroup) bool { return g.AclaraVozDegluciones },
				func(g *NonNutritiveGroup, v bool) { g.AclaraVozDegluciones = v }},
			{"aclaraVozCarraspeo",
				func(g *NonNutritiveGroup) bool { return g.AclaraVozCarraspeo },
				func(g *NonNutritiveGroup, v bool) { g.AclaraVozCarraspeo = v }},
			{"aclaraVozTos",
				func(g *NonNutritiveGroup) bool { return g.AclaraVozTos },
				func(g *NonNutritiveGroup, v bool) { g.AclaraVozTos = v }},
			{"ascultacionCervicalHumeda",
				func(g *NonNutritiveGroup) bool { return g.AscultacionCervicalHumeda },
				func(g *NonNutritiveGroup, v bool) { g.AscultacionCervicalHumeda = v }},
			{"bdtInmediato",
				func(g *NonNutritiveGroup) bool { return g.BdtInmediato },
				func(g *NonNutritiveGroup, v bool) { g.BdtInmediato = v }},
			{"evaluacionPenetracion",
				func(g *NonNutritiveGroup) bool { return g.EvaluacionPenetracion },
				func(g *NonNutritiveGroup, v bool) { g.EvaluacionPenetracion = v }},
			{"evaluacionAspiracion",
				func(g *NonNutritiveGroup) bool { return g.EvaluacionAspiracion },
				func(g *NonNutritiveGroup, v bool) { g.EvaluacionAspiracion = v }},
			{"evaluacionAspiracionSilente",
				func(g *NonNutritiveGroup) bool { return g.EvaluacionAspiracionSilente },
				func(g *NonNutritiveGroup, v bool) { g.EvaluacionAspiracionSilente = v }},
		},
		exclusions: nonNutritiveExclusions(),
		reveals: []reveal[NonNutritiveGroup]{
			{"acumulacionSaliva", func(g *NonNutritiveGroup) { g.EscapeAnterior = false }},
			{"vozHumedaSinAclaramiento", func(g *NonNutritiveGroup) {
				g.AclaraVozEspontanea = false
				g.AclaraVozSolicitud = false
				g.AclaraVozDegluciones = false
				g.AclaraVozCarraspeo = false
				g.AclaraVozTos = false
			}},
		},
		checks: []check[NonNutritiveGroup]{
			{"sinAlteracion", "Seleccione al menos una opción de deglución no nutritiva.", nil,
				func(g *NonNutritiveGroup) bool {
					return g.SinAlteracion || countNonNutritiveIssues(*g) > 0
				}},
			{"aclaraVozEspontanea", "Indique cómo aclara la voz.",
				func(g *NonNutritiveGroup) bool { return g.VozHumedaSinAclaramiento },
				func(g *NonNutritiveGroup) bool {
					return g.AclaraVozEspontanea || g.AclaraVozSolicitud || g.AclaraVozDegluciones ||
						g.AclaraVozCarraspeo || g.AclaraVozTos
				}},
		},
	}
	return &formStage[NonNutritiveGroup]{
		id:    StageNonNutritive,
		title: "Etapa 9 - Deglución no nutritiva",
		def:   d,
		fromRecord: func(r *Record) *NonNutritiveGroup { return r.NonNutritive },
		assign: func(r *Record, g *NonNutritiveGroup) {
			r.NonNutritive = g
			score := NonNutritiveScore(*g)
			r.NonNutritiveScore = &score
		},
		nextFn: func(Record) StageID { return StageNonNutritiveResult },
	}
}

func nonNutritiveExclusions() []exclusion {
	out := make([]exclusion, 0, len(nonNutritiveIndicators))
	for _, ind := range nonNutritiveIndicators {
		out = append(out, exclusion{members: []string{"sinAlteracion", ind}})
	}
	return out
}
