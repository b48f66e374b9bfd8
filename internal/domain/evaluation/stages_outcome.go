package evaluation

// Definitions for the outcome stages: nutritive swallowing (10) and the
// clinical conclusions (10.4).

// nutritiveConsistency wires the namespaced fields of one administered
// consistency ("fineLiquid.volume", "fineLiquid.cough", ...) into the stage
// definition. Setting the volume back to zero discards the whole consistency.
type nutritiveConsistency struct {
	prefix string
	label  string
	acc    func(*NutritiveGroup) *ConsistencyEvaluation
}

var nutritiveConsistencies = []nutritiveConsistency{
	{"fineLiquid", "líquido fino", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.FineLiquid }},
	{"nectar", "néctar", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.Nectar }},
	{"honey", "miel", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.Honey }},
	{"puree", "papilla", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.Puree }},
	{"softSolid", "sólido blando", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.SoftSolid }},
	{"solid", "sólido", func(g *NutritiveGroup) *ConsistencyEvaluation { return &g.Solid }},
}

func nutritiveStage() Stage {
	d := &stageDef[NutritiveGroup]{}
	for _, nc := range nutritiveConsistencies {
		nc := nc
		alarm := func(suffix string, get func(*ConsistencyEvaluation) *bool) boolField[NutritiveGroup] {
			return boolField[NutritiveGroup]{
				name: nc.prefix + "." + suffix,
				get:  func(g *NutritiveGroup) bool { return *get(nc.acc(g)) },
				set:  func(g *NutritiveGroup, v bool) { *get(nc.acc(g)) = v },
			}
		}
		d.bools = append(d.bools,
			alarm("cough", func(c *ConsistencyEvaluation) *bool { return &c.Cough }),
			alarm("wetVoice", func(c *ConsistencyEvaluation) *bool { return &c.WetVoice }),
			alarm("voiceClearing", func(c *ConsistencyEvaluation) *bool { return &c.VoiceClearing }),
			alarm("stridor", func(c *ConsistencyEvaluation) *bool { return &c.Stridor }),
			alarm("dyspnea", func(c *ConsistencyEvaluation) *bool { return &c.Dyspnea }),
			alarm("cyanosis", func(c *ConsistencyEvaluation) *bool { return &c.Cyanosis }),
		)
		d.ints = append(d.ints, intField[NutritiveGroup]{
			name:    nc.prefix + ".volume",
			allowed: VolumeOptions,
			set: func(g *NutritiveGroup, v int) {
				c := nc.acc(g)
				if v == 0 {
					*c = ConsistencyEvaluation{}
					return
				}
				c.Volume = v
			},
		})
		d.texts = append(d.texts, textField[NutritiveGroup]{
			name: nc.prefix + ".otherSigns",
			set:  func(g *NutritiveGroup, v string) { nc.acc(g).OtherSigns = v },
		})
		d.checks = append(d.checks, check[NutritiveGroup]{
			field:   nc.prefix + ".volume",
			message: "Indique el volumen evaluado en " + nc.label + ".",
			when: func(g *NutritiveGroup) bool {
				c := nc.acc(g)
				return c.Cough || c.WetVoice || c.VoiceClearing || c.Stridor ||
					c.Dyspnea || c.Cyanosis || notBlank(c.OtherSigns)
			},
			met: func(g *NutritiveGroup) bool { return nc.acc(g).Evaluated() },
		})
	}
	d.checks = append(d.checks, check[NutritiveGroup]{
		field:   "fineLiquid.volume",
		message: "Evalúe al menos una consistencia.",
		met: func(g *NutritiveGroup) bool {
			for _, c := range g.Consistencies() {
				if c.Evaluated() {
					return true
				}
			}
			return false
		},
	})
	return &formStage[NutritiveGroup]{
		id:    StageNutritive,
		title: "Etapa 10 - Deglución nutritiva",
		def:   d,
		fromRecord: func(r *Record) *NutritiveGroup { return r.Nutritive },
		assign: func(r *Record, g *NutritiveGroup) {
			g.Evaluated = true
			r.Nutritive = g
			score := NutritiveScore(*g)
			r.NutritiveScore = &score
		},
	}
}

// conclusionRecommendations are the top-level recommendation switches, each
// mutually exclusive with "ningunaRecomendacion".
var conclusionRecommendations = []string{
	"asistenciaVigilancia",
	"posicion45a90",
	"maniobraDeglutoria",
	"verificarResiduosBoca",
	"modificacionVolumen",
	"modificacionVelocidad",
	"modificacionTemperatura",
	"modificacionSabor",
	"modificacionTextura",
	"modificacionConsistencia",
	"usoEspesante",
	"usoCucharaMedidora",
	"usoVasoAdaptado",
	"usoJeringa",
	"usoBombilla",
	"usoProtesisDental",
	"usoEstimulacionSensorial",
	"rehabilitacionDeglutoria",
	"derivacionNutricionista",
	"derivacionKinesiologo",
	"derivacionTerapeutaOcupacional",
	"derivacionMedico",
	"optimizarHigieneOral",
	"instalacionViaAlternativa",
	"evaluacionComplementaria",
	"terapiaDeglucion",
	"evaluacionComunicativa",
}

func conclusionsStage() Stage {
	cb := func(name string, get func(*ConclusionsGroup) bool, set func(*ConclusionsGroup, bool)) boolField[ConclusionsGroup] {
		return boolField[ConclusionsGroup]{name, get, set}
	}
	exclusions := []exclusion{
		{members: []string{"sinTrastornoDeglucion", "trastornoDeglucion", "noEsPosibleDeterminarGeneral"}},
		{members: []string{"alimentacionTotalBoca", "alimentacionEnteral", "alimentacionMixta"}},
		{members: []string{"ningunaViscosidadPermitida", "alimentosPermitidos"}},
		{members: []string{"ningunaViscosidadPermitida", "bebidasPermitidas"}},
	}
	for _, rec := range conclusionRecommendations {
		exclusions = append(exclusions, exclusion{members: []string{"ningunaRecomendacion", rec}})
	}
	d := &stageDef[ConclusionsGroup]{
		bools: []boolField[ConclusionsGroup]{
			cb("sinTrastornoDeglucion",
				func(g *ConclusionsGroup) bool { return g.SinTrastornoDeglucion },
				func(g *ConclusionsGroup, v bool) { g.SinTrastornoDeglucion = v }),
			cb("trastornoDeglucion",
				func(g *ConclusionsGroup) bool { return g.TrastornoDeglucion },
				func(g *ConclusionsGroup, v bool) { g.TrastornoDeglucion = v }),
			cb("noEsPosibleDeterminarGeneral",
				func(g *ConclusionsGroup) bool { return g.NoEsPosibleDeterminarGeneral },
				func(g *ConclusionsGroup, v bool) { g.NoEsPosibleDeterminarGeneral = v }),
			cb("escalaSeveridad",
				func(g *ConclusionsGroup) bool { return g.EscalaSeveridad },
				func(g *ConclusionsGroup, v bool) { g.EscalaSeveridad = v }),
			cb("alimentacionTotalBoca",
				func(g *ConclusionsGroup) bool { return g.AlimentacionTotalBoca },
				func(g *ConclusionsGroup, v bool) { g.AlimentacionTotalBoca = v }),
			cb("alimentacionEnteral",
				func(g *ConclusionsGroup) bool { return g.AlimentacionEnteral },
				func(g *ConclusionsGroup, v bool) { g.AlimentacionEnteral = v }),
			cb("alimentacionMixta",
				func(g *ConclusionsGroup) bool { return g.AlimentacionMixta },
				func(g *ConclusionsGroup, v bool) { g.AlimentacionMixta = v }),
			cb("soloConEspecialista",
				func(g *ConclusionsGroup) bool { return g.SoloConEspecialista },
				func(g *ConclusionsGroup, v bool) { g.SoloConEspecialista = v }),
			cb("alimentosPermitidos",
				func(g *ConclusionsGroup) bool { return g.AlimentosPermitidos },
				func(g *ConclusionsGroup, v bool) { g.AlimentosPermitidos = v }),
			cb("bebidasPermitidas",
				func(g *ConclusionsGroup) bool { return g.BebidasPermitidas },
				func(g *ConclusionsGroup, v bool) { g.BebidasPermitidas = v }),
			cb("ningunaViscosidadPermitida",
				func(g *ConclusionsGroup) bool { return g.NingunaViscosidadPermitida },
				func(g *ConclusionsGroup, v bool) { g.NingunaViscosidadPermitida = v }),
			cb("asistenciaVigilancia",
				func(g *ConclusionsGroup) bool { return g.AsistenciaVigilancia },
				func(g *ConclusionsGroup, v bool) { g.AsistenciaVigilancia = v }),
			cb("posicion45a90",
				func(g *ConclusionsGroup) bool { return g.Posicion45a90 },
				func(g *ConclusionsGroup, v bool) { g.Posicion45a90 = v }),
			cb("maniobraDeglutoria",
				func(g *ConclusionsGroup) bool { return g.ManiobraDeglutoria },
				func(g *ConclusionsGroup, v bool) { g.ManiobraDeglutoria = v }),
			cb("verificarResiduosBoca",
				func(g *ConclusionsGroup) bool { return g.VerificarResiduosBoca },
				func(g *ConclusionsGroup, v bool) { g.VerificarResiduosBoca = v }),
			cb("modificacionVolumen",
				func(g *ConclusionsGroup) bool { return g.ModificacionVolumen },
				func(g *ConclusionsGroup, v bool) { g.ModificacionVolumen = v }),
			cb("modificacionVelocidad",
				func(g *ConclusionsGroup) bool { return g.ModificacionVelocidad },
				func(g *ConclusionsGroup, v bool) { g.ModificacionVelocidad = v }),
			cb("modificacionTemperatura",
				func(g *ConclusionsGroup) bool { return g.ModificacionTemperatura },
				func(g *ConclusionsGroup, v bool) { g.ModificacionTemperatura = v }),
			cb("modificacionSabor",
				func(g *ConclusionsGroup) bool { return g.ModificacionSabor },
				func(g *ConclusionsGroup, v bool) { g.ModificacionSabor = v }),
			cb("modificacionTextura",
				func(g *ConclusionsGroup) bool { return g.ModificacionTextura },
				func(g *ConclusionsGroup, v bool) { g.ModificacionTextura = v }),
			cb("modificacionConsistencia",
				func(g *ConclusionsGroup) bool { return g.ModificacionConsistencia },
				func(g *ConclusionsGroup, v bool) { g.ModificacionConsistencia = v }),
			cb("usoEspesante",
				func(g *ConclusionsGroup) bool { return g.UsoEspesante },
				func(g *ConclusionsGroup, v bool) { g.UsoEspesante = v }),
			cb("usoCucharaMedidora",
				func(g *ConclusionsGroup) bool { return g.UsoCucharaMedidora },
				func(g *ConclusionsGroup, v bool) { g.UsoCucharaMedidora = v }),
			cb("usoVasoAdaptado",
				func(g *ConclusionsGroup) bool { return g.UsoVasoAdaptado },
				func(g *ConclusionsGroup, v bool) { g.UsoVasoAdaptado = v }),
			cb("usoJeringa",
				func(g *ConclusionsGroup) bool { return g.UsoJeringa },
				func(g *ConclusionsGroup, v bool) { g.UsoJeringa = v }),
			cb("usoBombilla",
				func(g *ConclusionsGroup) bool { return g.UsoBombilla },
				func(g *ConclusionsGroup, v bool) { g.UsoBombilla = v }),
			cb("usoProtesisDental",
				func(g *ConclusionsGroup) bool { return g.UsoProtesisDental },
				func(g *ConclusionsGroup, v bool) { g.UsoProtesisDental = v }),
			cb("usoEstimulacionSensorial",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionSensorial },
				func(g *ConclusionsGroup, v bool) { g.UsoEstimulacionSensorial = v }),
			cb("usoEstimulacionTermica",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionTermica },
				func(g *ConclusionsGroup, v bool) { g.UsoEstimulacionTermica = v }),
			cb("usoEstimulacionMecanica",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionMecanica },
				func(g *ConclusionsGroup, v bool) { g.UsoEstimulacionMecanica = v }),
			cb("usoEstimulacionElectrica",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionElectrica },
				func(g *ConclusionsGroup, v bool) { g.UsoEstimulacionElectrica = v }),
			cb("usoEstimulacionFarmacologica",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionFarmacologica },
				func(g *ConclusionsGroup, v bool) { g.UsoEstimulacionFarmacologica = v }),
			cb("rehabilitacionDeglutoria",
				func(g *ConclusionsGroup) bool { return g.RehabilitacionDeglutoria },
				func(g *ConclusionsGroup, v bool) { g.RehabilitacionDeglutoria = v }),
			cb("derivacionNutricionista",
				func(g *ConclusionsGroup) bool { return g.DerivacionNutricionista },
				func(g *ConclusionsGroup, v bool) { g.DerivacionNutricionista = v }),
			cb("derivacionKinesiologo",
				func(g *ConclusionsGroup) bool { return g.DerivacionKinesiologo },
				func(g *ConclusionsGroup, v bool) { g.DerivacionKinesiologo = v }),
			cb("derivacionTerapeutaOcupacional",
				func(g *ConclusionsGroup) bool { return g.DerivacionTerapeutaOcupacional },
				func(g *ConclusionsGroup, v bool) { g.DerivacionTerapeutaOcupacional = v }),
			cb("derivacionMedico",
				func(g *ConclusionsGroup) bool { return g.DerivacionMedico },
				func(g *ConclusionsGroup, v bool) { g.DerivacionMedico = v }),
			cb("optimizarHigieneOral",
				func(g *ConclusionsGroup) bool { return g.OptimizarHigieneOral },
				func(g *ConclusionsGroup, v bool) { g.OptimizarHigieneOral = v }),
			cb("instalacionViaAlternativa",
				func(g *ConclusionsGroup) bool { return g.InstalacionViaAlternativa },
				func(g *ConclusionsGroup, v bool) { g.InstalacionViaAlternativa = v }),
			cb("evaluacionComplementaria",
				func(g *ConclusionsGroup) bool { return g.EvaluacionComplementaria },
				func(g *ConclusionsGroup, v bool) { g.EvaluacionComplementaria = v }),
			cb("terapiaDeglucion",
				func(g *ConclusionsGroup) bool { return g.TerapiaDeglucion },
				func(g *ConclusionsGroup, v bool) { g.TerapiaDeglucion = v }),
			cb("evaluacionComunicativa",
				func(g *ConclusionsGroup) bool { return g.EvaluacionComunicativa },
				func(g *ConclusionsGroup, v bool) { g.EvaluacionComunicativa = v }),
			cb("ningunaRecomendacion",
				func(g *ConclusionsGroup) bool { return g.NingunaRecomendacion },
				func(g *ConclusionsGroup, v bool) { g.NingunaRecomendacion = v }),
		},
		selects: []selectField[ConclusionsGroup]{
			{"trastornoOrigen", DisorderOriginOptions,
				func(g *ConclusionsGroup, v string) { g.TrastornoOrigen = v }},
			{"doss", DossOptions, func(g *ConclusionsGroup, v string) { g.Doss = v }},
			{"fils", FilsOptions, func(g *ConclusionsGroup, v string) { g.Fils = v }},
			{"fois", FoisOptions, func(g *ConclusionsGroup, v string) { g.Fois = v }},
		},
		texts: []textField[ConclusionsGroup]{
			{"usoEstimulacionOtros", func(g *ConclusionsGroup, v string) { g.UsoEstimulacionOtros = v }},
			{"rehabilitacionDeglutoriaOtros", func(g *ConclusionsGroup, v string) { g.RehabilitacionDeglutoriaOtros = v }},
			{"derivacionOtros", func(g *ConclusionsGroup, v string) { g.DerivacionOtros = v }},
			{"observaciones", func(g *ConclusionsGroup, v string) { g.Observaciones = v }},
		},
		tags: []tagField[ConclusionsGroup]{
			{"alimentosPermitidosConsistencias", PermittedConsistencyOptions,
				func(g *ConclusionsGroup, v []string) { g.AlimentosPermitidosConsistencias = v }},
			{"bebidasPermitidasConsistencias", PermittedConsistencyOptions,
				func(g *ConclusionsGroup, v []string) { g.BebidasPermitidasConsistencias = v }},
			{"maniobraDeglutoriaTipos", SwallowManeuverOptions,
				func(g *ConclusionsGroup, v []string) { g.ManiobraDeglutoriaTipos = v }},
			{"rehabilitacionDeglutoriaTipos", RehabilitationTypeOptions,
				func(g *ConclusionsGroup, v []string) { g.RehabilitacionDeglutoriaTipos = v }},
			{"viaAlternativaTipos", AlternativeRouteOptions,
				func(g *ConclusionsGroup, v []string) { g.ViaAlternativaTipos = v }},
		},
		exclusions: exclusions,
		reveals: []reveal[ConclusionsGroup]{
			{"trastornoDeglucion", func(g *ConclusionsGroup) { g.TrastornoOrigen = "" }},
			{"escalaSeveridad", func(g *ConclusionsGroup) {
				g.Doss = ""
				g.Fils = ""
				g.Fois = ""
			}},
			{"alimentosPermitidos", func(g *ConclusionsGroup) { g.AlimentosPermitidosConsistencias = nil }},
			{"bebidasPermitidas", func(g *ConclusionsGroup) { g.BebidasPermitidasConsistencias = nil }},
			{"maniobraDeglutoria", func(g *ConclusionsGroup) { g.ManiobraDeglutoriaTipos = nil }},
			{"usoEstimulacionSensorial", func(g *ConclusionsGroup) {
				g.UsoEstimulacionTermica = false
				g.UsoEstimulacionMecanica = false
				g.UsoEstimulacionElectrica = false
				g.UsoEstimulacionFarmacologica = false
				g.UsoEstimulacionOtros = ""
			}},
			{"rehabilitacionDeglutoria", func(g *ConclusionsGroup) {
				g.RehabilitacionDeglutoriaTipos = nil
				g.RehabilitacionDeglutoriaOtros = ""
			}},
			{"instalacionViaAlternativa", func(g *ConclusionsGroup) { g.ViaAlternativaTipos = nil }},
		},
		// "Ninguna recomendación" also discards the free-text annexes that hang
		// off groups without a single parent switch.
		after: func(g *ConclusionsGroup, name string, v bool) {
			if name == "ningunaRecomendacion" && v {
				g.DerivacionOtros = ""
			}
		},
		checks: []check[ConclusionsGroup]{
			{"sinTrastornoDeglucion", "Seleccione un diagnóstico deglutorio.", nil,
				func(g *ConclusionsGroup) bool {
					return g.SinTrastornoDeglucion || g.TrastornoDeglucion || g.NoEsPosibleDeterminarGeneral
				}},
			{"trastornoOrigen", "Indique el origen del trastorno de deglución.",
				func(g *ConclusionsGroup) bool { return g.TrastornoDeglucion },
				func(g *ConclusionsGroup) bool { return g.TrastornoOrigen != "" }},
			{"doss", "Registre al menos una escala de severidad.",
				func(g *ConclusionsGroup) bool { return g.EscalaSeveridad },
				func(g *ConclusionsGroup) bool { return g.Doss != "" || g.Fils != "" || g.Fois != "" }},
			{"alimentacionTotalBoca", "Seleccione una vía de alimentación sugerida.", nil,
				func(g *ConclusionsGroup) bool {
					return g.AlimentacionTotalBoca || g.AlimentacionEnteral || g.AlimentacionMixta
				}},
			{"alimentosPermitidosConsistencias", "Seleccione las consistencias de alimentos permitidas.",
				func(g *ConclusionsGroup) bool { return g.AlimentosPermitidos },
				func(g *ConclusionsGroup) bool { return len(g.AlimentosPermitidosConsistencias) > 0 }},
			{"bebidasPermitidasConsistencias", "Seleccione las consistencias de bebidas permitidas.",
				func(g *ConclusionsGroup) bool { return g.BebidasPermitidas },
				func(g *ConclusionsGroup) bool { return len(g.BebidasPermitidasConsistencias) > 0 }},
			{"maniobraDeglutoriaTipos", "Seleccione al menos una maniobra deglutoria.",
				func(g *ConclusionsGroup) bool { return g.ManiobraDeglutoria },
				func(g *ConclusionsGroup) bool { return len(g.ManiobraDeglutoriaTipos) > 0 }},
			{"usoEstimulacionTermica", "Seleccione al menos un tipo de estimulación sensorial.",
				func(g *ConclusionsGroup) bool { return g.UsoEstimulacionSensorial },
				func(g *ConclusionsGroup) bool {
					return g.UsoEstimulacionTermica || g.UsoEstimulacionMecanica ||
						g.UsoEstimulacionElectrica || g.UsoEstimulacionFarmacologica ||
						notBlank(g.UsoEstimulacionOtros)
				}},
			{"rehabilitacionDeglutoriaTipos", "Seleccione al menos un tipo de rehabilitación deglutoria.",
				func(g *ConclusionsGroup) bool { return g.RehabilitacionDeglutoria },
				func(g *ConclusionsGroup) bool {
					return len(g.RehabilitacionDeglutoriaTipos) > 0 || notBlank(g.RehabilitacionDeglutoriaOtros)
				}},
			{"viaAlternativaTipos", "Seleccione el tipo de vía alternativa.",
				func(g *ConclusionsGroup) bool { return g.InstalacionViaAlternativa },
				func(g *ConclusionsGroup) bool { return len(g.ViaAlternativaTipos) > 0 }},
		},
	}
	return &formStage[ConclusionsGroup]{
		id:    StageConclusions,
		title: "Etapa final - Conclusiones y recomendaciones",
		def:   d,
		fromRecord: func(r *Record) *ConclusionsGroup { return r.Conclusions },
		assign:     func(r *Record, g *ConclusionsGroup) { r.Conclusions = g },
		clone:      ConclusionsGroup.clone,
	}
}
