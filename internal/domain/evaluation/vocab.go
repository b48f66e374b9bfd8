package evaluation

// Closed vocabularies referenced by the stage forms. Values are the literal
// options presented to the professional and are emitted verbatim in the
// summary document.

var MedicalHistoryOptions = []string{
	"ACV",
	"TEC",
	"Tumor",
	"TNC menor",
	"TNC mayor",
	"EPOC",
	"COVID-19",
	"OTRO",
}

var OxygenDeliveryOptions = []string{
	"FIO2 ambiental",
	"Con uso de CNAF",
	"Con uso de cánula nasal",
	"Con uso de MMV",
	"Con uso de VMNI sin ventana",
	"Con uso de VMNI con ventana",
}

var OralConsistencyOptions = []string{
	"Líquido fino",
	"Líquido espeso",
	"Papilla licuada",
	"Papilla espesa",
	"Papilla",
	"Sólido blando",
	"Sólidos",
}

var AlteredConsciousnessOptions = []string{
	"Somnoliento",
	"Soporo",
	"Coma",
	"En proceso de destete por sedación",
	"Sedado",
}

var (
	CooperationOptions          = []string{"Cooperador", "Cooperador parcial", "No cooperador"}
	AttentionOptions            = []string{"Atento", "Atento parcial", "Inatento"}
	CalmnessOptions             = []string{"Tranquilo", "Agitado"}
	OrientationOptions          = []string{"Orientado", "Orientado parcial", "No orientado"}
	InstructionFollowingOptions = []string{"Sigue órdenes simples", "Sigue órdenes complejas", "No sigue órdenes"}
)

var VoiceAlterationOptions = []string{
	"Voz húmeda",
	"Voz ronca",
	"Voz soplada",
	"Voz forzada",
	"Baja intensidad",
	"Alta intensidad",
	"Tono agudo",
	"Tono grave",
}

// VolumeOptions are the bolus volumes, in millilitres, for stage 10.
var VolumeOptions = []int{3, 5, 10, 20}

var DisorderOriginOptions = []string{
	"neurogenico",
	"mecanico",
	"iatrogenico",
	"mixto",
	"no_determinar",
}

var (
	DossOptions = []string{"1", "2", "3", "4", "5", "6", "7"}
	FilsOptions = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	FoisOptions = []string{"1", "2", "3", "4", "5", "6", "7"}
)

var PermittedConsistencyOptions = []string{
	"liquido_fino",
	"liquido_espeso",
	"papilla",
	"solido_blando",
	"solidos",
}

var SwallowManeuverOptions = []string{
	"mendelsohn",
	"supraglotica",
	"super_supraglotica",
	"deglucion_forzada",
}

var RehabilitationTypeOptions = []string{
	"ejercicios_fuerza",
	"ejercicios_rango",
	"maniobras_compensatorias",
	"terapia_miofuncional",
	"otros",
}

var AlternativeRouteOptions = []string{
	"SNG",
	"SNY",
	"SOG",
	"GTT",
	"YTT",
	"NPT",
}

func vocabContains(vocab []string, v string) bool {
	for _, o := range vocab {
		if o == v {
			return true
		}
	}
	return false
}
