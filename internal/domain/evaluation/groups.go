package evaluation

// Stage groups. Field identifiers follow the clinical capture form: the early
// stages use the English names of the intake form, the clinical finding
// stages keep the Spanish terminology the professionals work with.

// IdentificationGroup is the stage-1 group. Age is a pointer so that an
// entered age of 0 (infants) is distinguishable from no entry at all.
type IdentificationGroup struct {
	PatientName            string   `json:"patientName"`
	Age                    *int     `json:"age,omitempty"`
	MedicalHistory         bool     `json:"medicalHistory"`
	SelectedMedicalHistory []string `json:"selectedMedicalHistory,omitempty"`
	OtherMedicalHistory    string   `json:"otherMedicalHistory,omitempty"`
	SwallowingHistory      string   `json:"swallowingHistory,omitempty"`
}

func (g IdentificationGroup) clone() IdentificationGroup {
	if g.Age != nil {
		v := *g.Age
		g.Age = &v
	}
	g.SelectedMedicalHistory = cloneStrings(g.SelectedMedicalHistory)
	return g
}

// RespirationGroup is the stage-2 group.
type RespirationGroup struct {
	NoArtificialAirway     bool     `json:"noArtificialAirway"`
	SelectedOxygenDelivery []string `json:"selectedOxygenDelivery,omitempty"`
	OrotrachealIntubation  bool     `json:"orotrachealIntubation"`
	Tracheostomy           bool     `json:"tracheostomy"`
}

func (g RespirationGroup) clone() RespirationGroup {
	g.SelectedOxygenDelivery = cloneStrings(g.SelectedOxygenDelivery)
	return g
}

// NutritionGroup is the stage-3 group.
type NutritionGroup struct {
	HasOralFeeding            bool     `json:"hasOralFeeding"`
	SelectedOralConsistencies []string `json:"selectedOralConsistencies,omitempty"`
	HasNonOralFeeding         bool     `json:"hasNonOralFeeding"`
	HasMixedFeeding           bool     `json:"hasMixedFeeding"`
}

func (g NutritionGroup) clone() NutritionGroup {
	g.SelectedOralConsistencies = cloneStrings(g.SelectedOralConsistencies)
	return g
}

// ConsciousnessGroup is the stage-4 group.
type ConsciousnessGroup struct {
	IsVigil                      bool     `json:"isVigil"`
	HasAlteredConsciousness      bool     `json:"hasAlteredConsciousness"`
	SelectedAlteredConsciousness []string `json:"selectedAlteredConsciousness,omitempty"`
}

func (g ConsciousnessGroup) clone() ConsciousnessGroup {
	g.SelectedAlteredConsciousness = cloneStrings(g.SelectedAlteredConsciousness)
	return g
}

// CommunicationGroup is the stage-5 group. The two base states are mutually
// exclusive with each other and with both alteration switches; the two
// alteration switches may be asserted together.
type CommunicationGroup struct {
	IsCooperativeAndOriented         bool `json:"isCooperativeAndOriented"`
	IsNotEvaluable                   bool `json:"isNotEvaluable"`
	HasCognitiveBehavioralAlteration bool `json:"hasCognitiveBehavioralAlteration"`
	HasVoiceAlteration               bool `json:"hasVoiceAlteration"`

	SelectedCooperation          string `json:"selectedCooperation,omitempty"`
	SelectedAttention            string `json:"selectedAttention,omitempty"`
	SelectedCalmness             string `json:"selectedCalmness,omitempty"`
	SelectedOrientation          string `json:"selectedOrientation,omitempty"`
	SelectedInstructionFollowing string `json:"selectedInstructionFollowing,omitempty"`
	SelectedVoiceAlterationType  string `json:"selectedVoiceAlterationType,omitempty"`
}

// OrofacialGroup is the stage-6 group.
type OrofacialGroup struct {
	NoPresentaAlteracion bool `json:"noPresentaAlteracion"`

	AlteracionEstructuras bool `json:"alteracionEstructuras"`

	AlteracionMotora                    bool `json:"alteracionMotora"`
	RangoFuerzaRostroMandibula          bool `json:"rangoFuerzaRostroMandibula"`
	RangoFuerzaRostroMandibulaDerecha   bool `json:"rangoFuerzaRostroMandibulaDerecha"`
	RangoFuerzaRostroMandibulaIzquierda bool `json:"rangoFuerzaRostroMandibulaIzquierda"`
	RangoFuerzaLabios                   bool `json:"rangoFuerzaLabios"`
	RangoFuerzaLabiosDerecha            bool `json:"rangoFuerzaLabiosDerecha"`
	RangoFuerzaLabiosIzquierda          bool `json:"rangoFuerzaLabiosIzquierda"`
	RangoFuerzaLengua                   bool `json:"rangoFuerzaLengua"`
	RangoFuerzaLenguaDerecha            bool `json:"rangoFuerzaLenguaDerecha"`
	RangoFuerzaLenguaIzquierda          bool `json:"rangoFuerzaLenguaIzquierda"`

	AlteracionSensibilidad         bool `json:"alteracionSensibilidad"`
	SensibilidadExtraoralDerecha   bool `json:"sensibilidadExtraoralDerecha"`
	SensibilidadExtraoralIzquierda bool `json:"sensibilidadExtraoralIzquierda"`
	SensibilidadIntraoralDerecha   bool `json:"sensibilidadIntraoralDerecha"`
	SensibilidadIntraoralIzquierda bool `json:"sensibilidadIntraoralIzquierda"`

	AsimetriaFacial bool `json:"asimetriaFacial"`

	HigieneOral    bool `json:"higieneOral"`
	HigieneBuena   bool `json:"higieneBuena"`
	HigieneMala    bool `json:"higieneMala"`
	HigieneRegular bool `json:"higieneRegular"`
}

// DentitionGroup is the stage-7 group.
type DentitionGroup struct {
	NoPresentaAlteracion bool `json:"noPresentaAlteracion"`
	PerdidaPiezas        bool `json:"perdidaPiezas"`

	Superior              bool `json:"superior"`
	Inferior              bool `json:"inferior"`
	Adaptada              bool `json:"adaptada"`
	NoAdaptada            bool `json:"noAdaptada"`
	Total                 bool `json:"total"`
	Parcial               bool `json:"parcial"`
	UsoAdhesivo           bool `json:"usoAdhesivo"`
	EvaluacionConProtesis bool `json:"evaluacionConProtesis"`
	EvaluacionSinProtesis bool `json:"evaluacionSinProtesis"`
}

// ReflexesGroup is the stage-8 group.
type ReflexesGroup struct {
	NoPresentaAlteracion bool `json:"noPresentaAlteracion"`
	PresentaAlteracion   bool `json:"presentaAlteracion"`

	TosVoluntariaProductiva   bool `json:"tosVoluntariaProductiva"`
	TosVoluntariaNoProductiva bool `json:"tosVoluntariaNoProductiva"`
	TosVoluntariaAusente      bool `json:"tosVoluntariaAusente"`
	TosReflejaProductiva      bool `json:"tosReflejaProductiva"`
	TosReflejaNoProductiva    bool `json:"tosReflejaNoProductiva"`
	TosReflejaAusente         bool `json:"tosReflejaAusente"`
}

// NonNutritiveGroup is the stage-9 group (deglución no nutritiva).
type NonNutritiveGroup struct {
	SinAlteracion bool `json:"sinAlteracion"`

	AcumulacionSaliva        bool `json:"acumulacionSaliva"`
	EscapeAnterior           bool `json:"escapeAnterior"`
	Xerostomia               bool `json:"xerostomia"`
	NoDegluteEspontaneamente bool `json:"noDegluteEspontaneamente"`
	RmoMasDeUnSegundo        bool `json:"rmoMasDeUnSegundo"`
	ExcursionLaringeaAusente bool `json:"excursionLaringeaAusente"`
	Odinofagia               bool `json:"odinofagia"`

	VozHumedaSinAclaramiento bool `json:"vozHumedaSinAclaramiento"`
	AclaraVozEspontanea      bool `json:"aclaraVozEspontanea"`
	AclaraVozSolicitud       bool `json:"aclaraVozSolicitud"`
	AclaraVozDegluciones     bool `json:"aclaraVozDegluciones"`
	AclaraVozCarraspeo       bool `json:"aclaraVozCarraspeo"`
	AclaraVozTos             bool `json:"aclaraVozTos"`

	AscultacionCervicalHumeda   bool `json:"ascultacionCervicalHumeda"`
	BdtInmediato                bool `json:"bdtInmediato"`
	EvaluacionPenetracion       bool `json:"evaluacionPenetracion"`
	EvaluacionAspiracion        bool `json:"evaluacionAspiracion"`
	EvaluacionAspiracionSilente bool `json:"evaluacionAspiracionSilente"`
}

// ConsistencyEvaluation captures one administered consistency in stage 10.
// A zero Volume means the consistency was not evaluated.
type ConsistencyEvaluation struct {
	Volume        int    `json:"volume,omitempty"` // ml, one of 3, 5, 10, 20
	Cough         bool   `json:"cough"`
	WetVoice      bool   `json:"wetVoice"`
	VoiceClearing bool   `json:"voiceClearing"`
	Stridor       bool   `json:"stridor"`
	Dyspnea       bool   `json:"dyspnea"`
	Cyanosis      bool   `json:"cyanosis"`
	OtherSigns    string `json:"otherSigns,omitempty"`
}

// Evaluated reports whether this consistency was administered.
func (c ConsistencyEvaluation) Evaluated() bool { return c.Volume > 0 }

// NutritiveGroup is the stage-10 group (deglución nutritiva). Evaluated
// records that the stage was entered at all, regardless of how many
// consistencies were administered.
type NutritiveGroup struct {
	Evaluated  bool                  `json:"evaluated"`
	FineLiquid ConsistencyEvaluation `json:"fineLiquid"`
	Nectar     ConsistencyEvaluation `json:"nectar"`
	Honey      ConsistencyEvaluation `json:"honey"`
	Puree      ConsistencyEvaluation `json:"puree"`
	SoftSolid  ConsistencyEvaluation `json:"softSolid"`
	Solid      ConsistencyEvaluation `json:"solid"`
}

// Consistencies returns the six per-consistency evaluations in fixed order.
func (g *NutritiveGroup) Consistencies() []*ConsistencyEvaluation {
	return []*ConsistencyEvaluation{
		&g.FineLiquid, &g.Nectar, &g.Honey, &g.Puree, &g.SoftSolid, &g.Solid,
	}
}

// ConclusionsGroup is the stage-10.4 group.
type ConclusionsGroup struct {
	SinTrastornoDeglucion        bool   `json:"sinTrastornoDeglucion"`
	TrastornoDeglucion           bool   `json:"trastornoDeglucion"`
	TrastornoOrigen              string `json:"trastornoOrigen,omitempty"`
	NoEsPosibleDeterminarGeneral bool   `json:"noEsPosibleDeterminarGeneral"`

	EscalaSeveridad bool   `json:"escalaSeveridad"`
	Doss            string `json:"doss,omitempty"`
	Fils            string `json:"fils,omitempty"`
	Fois            string `json:"fois,omitempty"`

	AlimentacionTotalBoca bool `json:"alimentacionTotalBoca"`
	AlimentacionEnteral   bool `json:"alimentacionEnteral"`
	AlimentacionMixta     bool `json:"alimentacionMixta"`
	SoloConEspecialista   bool `json:"soloConEspecialista"`

	AlimentosPermitidos              bool     `json:"alimentosPermitidos"`
	AlimentosPermitidosConsistencias []string `json:"alimentosPermitidosConsistencias,omitempty"`
	BebidasPermitidas                bool     `json:"bebidasPermitidas"`
	BebidasPermitidasConsistencias   []string `json:"bebidasPermitidasConsistencias,omitempty"`
	NingunaViscosidadPermitida       bool     `json:"ningunaViscosidadPermitida"`

	AsistenciaVigilancia     bool     `json:"asistenciaVigilancia"`
	Posicion45a90            bool     `json:"posicion45a90"`
	ManiobraDeglutoria       bool     `json:"maniobraDeglutoria"`
	ManiobraDeglutoriaTipos  []string `json:"maniobraDeglutoriaTipos,omitempty"`
	VerificarResiduosBoca    bool     `json:"verificarResiduosBoca"`
	ModificacionVolumen      bool     `json:"modificacionVolumen"`
	ModificacionVelocidad    bool     `json:"modificacionVelocidad"`
	ModificacionTemperatura  bool     `json:"modificacionTemperatura"`
	ModificacionSabor        bool     `json:"modificacionSabor"`
	ModificacionTextura      bool     `json:"modificacionTextura"`
	ModificacionConsistencia bool     `json:"modificacionConsistencia"`

	UsoEspesante       bool `json:"usoEspesante"`
	UsoCucharaMedidora bool `json:"usoCucharaMedidora"`
	UsoVasoAdaptado    bool `json:"usoVasoAdaptado"`
	UsoJeringa         bool `json:"usoJeringa"`
	UsoBombilla        bool `json:"usoBombilla"`
	UsoProtesisDental  bool `json:"usoProtesisDental"`

	UsoEstimulacionSensorial     bool   `json:"usoEstimulacionSensorial"`
	UsoEstimulacionTermica       bool   `json:"usoEstimulacionTermica"`
	UsoEstimulacionMecanica      bool   `json:"usoEstimulacionMecanica"`
	UsoEstimulacionElectrica     bool   `json:"usoEstimulacionElectrica"`
	UsoEstimulacionFarmacologica bool   `json:"usoEstimulacionFarmacologica"`
	UsoEstimulacionOtros         string `json:"usoEstimulacionOtros,omitempty"`

	RehabilitacionDeglutoria      bool     `json:"rehabilitacionDeglutoria"`
	RehabilitacionDeglutoriaTipos []string `json:"rehabilitacionDeglutoriaTipos,omitempty"`
	RehabilitacionDeglutoriaOtros string   `json:"rehabilitacionDeglutoriaOtros,omitempty"`

	DerivacionNutricionista        bool   `json:"derivacionNutricionista"`
	DerivacionKinesiologo          bool   `json:"derivacionKinesiologo"`
	DerivacionTerapeutaOcupacional bool   `json:"derivacionTerapeutaOcupacional"`
	DerivacionMedico               bool   `json:"derivacionMedico"`
	DerivacionOtros                string `json:"derivacionOtros,omitempty"`

	OptimizarHigieneOral      bool     `json:"optimizarHigieneOral"`
	InstalacionViaAlternativa bool     `json:"instalacionViaAlternativa"`
	ViaAlternativaTipos       []string `json:"viaAlternativaTipos,omitempty"`
	EvaluacionComplementaria  bool     `json:"evaluacionComplementaria"`
	TerapiaDeglucion          bool     `json:"terapiaDeglucion"`
	EvaluacionComunicativa    bool     `json:"evaluacionComunicativa"`

	NingunaRecomendacion bool `json:"ningunaRecomendacion"`

	Observaciones string `json:"observaciones,omitempty"`
}

func (g ConclusionsGroup) clone() ConclusionsGroup {
	g.AlimentosPermitidosConsistencias = cloneStrings(g.AlimentosPermitidosConsistencias)
	g.BebidasPermitidasConsistencias = cloneStrings(g.BebidasPermitidasConsistencias)
	g.ManiobraDeglutoriaTipos = cloneStrings(g.ManiobraDeglutoriaTipos)
	g.RehabilitacionDeglutoriaTipos = cloneStrings(g.RehabilitacionDeglutoriaTipos)
	g.ViaAlternativaTipos = cloneStrings(g.ViaAlternativaTipos)
	return g
}
