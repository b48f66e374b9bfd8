package evaluation

// Definitions for the intake stages (1-5): identification, respiration,
// nutrition, consciousness and communication.

func identificationStage() Stage {
	d := &stageDef[IdentificationGroup]{
		bools: []boolField[IdentificationGroup]{
			{"medicalHistory",
				func(g *IdentificationGroup) bool { return g.MedicalHistory },
				func(g *IdentificationGroup, v bool) { g.MedicalHistory = v }},
		},
		texts: []textField[IdentificationGroup]{
			{"patientName", func(g *IdentificationGroup, v string) { g.PatientName = v }},
			{"otherMedicalHistory", func(g *IdentificationGroup, v string) { g.OtherMedicalHistory = v }},
			{"swallowingHistory", func(g *IdentificationGroup, v string) { g.SwallowingHistory = v }},
		},
		ints: []intField[IdentificationGroup]{
			{"age", nil, func(g *IdentificationGroup, v int) { g.Age = &v }},
		},
		tags: []tagField[IdentificationGroup]{
			{"selectedMedicalHistory", MedicalHistoryOptions,
				func(g *IdentificationGroup, v []string) { g.SelectedMedicalHistory = v }},
		},
		reveals: []reveal[IdentificationGroup]{
			{"medicalHistory", func(g *IdentificationGroup) {
				g.SelectedMedicalHistory = nil
				g.OtherMedicalHistory = ""
			}},
		},
		checks: []check[IdentificationGroup]{
			{"patientName", "El nombre del paciente es obligatorio.", nil,
				func(g *IdentificationGroup) bool { return notBlank(g.PatientName) }},
			{"age", "La edad es obligatoria y debe estar entre 0 y 120.", nil,
				func(g *IdentificationGroup) bool { return g.Age != nil && *g.Age >= 0 && *g.Age <= 120 }},
			{"selectedMedicalHistory", "Seleccione al menos un antecedente médico.",
				func(g *IdentificationGroup) bool { return g.MedicalHistory },
				func(g *IdentificationGroup) bool { return len(g.SelectedMedicalHistory) > 0 }},
		},
	}
	return &formStage[IdentificationGroup]{
		id:    StageIdentification,
		title: "Etapa 1 - Identificación",
		def:   d,
		fromRecord: func(r *Record) *IdentificationGroup { return r.Identification },
		assign:     func(r *Record, g *IdentificationGroup) { r.Identification = g },
		clone:      IdentificationGroup.clone,
	}
}

func respirationStage() Stage {
	d := &stageDef[RespirationGroup]{
		bools: []boolField[RespirationGroup]{
			{"noArtificialAirway",
				func(g *RespirationGroup) bool { return g.NoArtificialAirway },
				func(g *RespirationGroup, v bool) { g.NoArtificialAirway = v }},
			{"orotrachealIntubation",
				func(g *RespirationGroup) bool { return g.OrotrachealIntubation },
				func(g *RespirationGroup, v bool) { g.OrotrachealIntubation = v }},
			{"tracheostomy",
				func(g *RespirationGroup) bool { return g.Tracheostomy },
				func(g *RespirationGroup, v bool) { g.Tracheostomy = v }},
		},
		tags: []tagField[RespirationGroup]{
			{"selectedOxygenDelivery", OxygenDeliveryOptions,
				func(g *RespirationGroup, v []string) { g.SelectedOxygenDelivery = v }},
		},
		reveals: []reveal[RespirationGroup]{
			{"noArtificialAirway", func(g *RespirationGroup) { g.SelectedOxygenDelivery = nil }},
		},
	}
	return &formStage[RespirationGroup]{
		id:    StageRespiration,
		title: "Etapa 2 - Respiración",
		def:   d,
		fromRecord: func(r *Record) *RespirationGroup { return r.Respiration },
		assign:     func(r *Record, g *RespirationGroup) { r.Respiration = g },
		clone:      RespirationGroup.clone,
	}
}

func nutritionStage() Stage {
	d := &stageDef[NutritionGroup]{
		bools: []boolField[NutritionGroup]{
			{"hasOralFeeding",
				func(g *NutritionGroup) bool { return g.HasOralFeeding },
				func(g *NutritionGroup, v bool) { g.HasOralFeeding = v }},
			{"hasNonOralFeeding",
				func(g *NutritionGroup) bool { return g.HasNonOralFeeding },
				func(g *NutritionGroup, v bool) { g.HasNonOralFeeding = v }},
			{"hasMixedFeeding",
				func(g *NutritionGroup) bool { return g.HasMixedFeeding },
				func(g *NutritionGroup, v bool) { g.HasMixedFeeding = v }},
		},
		tags: []tagField[NutritionGroup]{
			{"selectedOralConsistencies", OralConsistencyOptions,
				func(g *NutritionGroup, v []string) { g.SelectedOralConsistencies = v }},
		},
		reveals: []reveal[NutritionGroup]{
			{"hasOralFeeding", func(g *NutritionGroup) { g.SelectedOralConsistencies = nil }},
		},
		checks: []check[NutritionGroup]{
			{"selectedOralConsistencies", "Seleccione al menos una consistencia de alimentación oral.",
				func(g *NutritionGroup) bool { return g.HasOralFeeding },
				func(g *NutritionGroup) bool { return len(g.SelectedOralConsistencies) > 0 }},
		},
	}
	return &formStage[NutritionGroup]{
		id:    StageNutrition,
		title: "Etapa 3 - Nutrición",
		def:   d,
		fromRecord: func(r *Record) *NutritionGroup { return r.Nutrition },
		assign:     func(r *Record, g *NutritionGroup) { r.Nutrition = g },
		clone:      NutritionGroup.clone,
	}
}

func consciousnessStage() Stage {
	d := &stageDef[ConsciousnessGroup]{
		bools: []boolField[ConsciousnessGroup]{
			{"isVigil",
				func(g *ConsciousnessGroup) bool { return g.IsVigil },
				func(g *ConsciousnessGroup, v bool) { g.IsVigil = v }},
			{"hasAlteredConsciousness",
				func(g *ConsciousnessGroup) bool { return g.HasAlteredConsciousness },
				func(g *ConsciousnessGroup, v bool) { g.HasAlteredConsciousness = v }},
		},
		tags: []tagField[ConsciousnessGroup]{
			{"selectedAlteredConsciousness", AlteredConsciousnessOptions,
				func(g *ConsciousnessGroup, v []string) { g.SelectedAlteredConsciousness = v }},
		},
		exclusions: []exclusion{
			{members: []string{"isVigil", "hasAlteredConsciousness"}},
		},
		reveals: []reveal[ConsciousnessGroup]{
			{"hasAlteredConsciousness", func(g *ConsciousnessGroup) { g.SelectedAlteredConsciousness = nil }},
		},
		checks: []check[ConsciousnessGroup]{
			{"isVigil", "Seleccione una opción de estado de conciencia.", nil,
				func(g *ConsciousnessGroup) bool { return g.IsVigil || g.HasAlteredConsciousness }},
			{"selectedAlteredConsciousness", "Seleccione al menos una opción de alteración de conciencia.",
				func(g *ConsciousnessGroup) bool { return g.HasAlteredConsciousness },
				func(g *ConsciousnessGroup) bool { return len(g.SelectedAlteredConsciousness) > 0 }},
		},
	}
	return &formStage[ConsciousnessGroup]{
		id:    StageConsciousness,
		title: "Etapa 4 - Estado de conciencia",
		def:   d,
		fromRecord: func(r *Record) *ConsciousnessGroup { return r.Consciousness },
		assign:     func(r *Record, g *ConsciousnessGroup) { r.Consciousness = g },
		clone:      ConsciousnessGroup.clone,
	}
}

func communicationStage() Stage {
	clearCognitive := func(g *CommunicationGroup) {
		g.SelectedCooperation = ""
		g.SelectedAttention = ""
		g.SelectedCalmness = ""
		g.SelectedOrientation = ""
		g.SelectedInstructionFollowing = ""
	}
	d := &stageDef[CommunicationGroup]{
		bools: []boolField[CommunicationGroup]{
			{"isCooperativeAndOriented",
				func(g *CommunicationGroup) bool { return g.IsCooperativeAndOriented },
				func(g *CommunicationGroup, v bool) { g.IsCooperativeAndOriented = v }},
			{"isNotEvaluable",
				func(g *CommunicationGroup) bool { return g.IsNotEvaluable },
				func(g *CommunicationGroup, v bool) { g.IsNotEvaluable = v }},
			{"hasCognitiveBehavioralAlteration",
				func(g *CommunicationGroup) bool { return g.HasCognitiveBehavioralAlteration },
				func(g *CommunicationGroup, v bool) { g.HasCognitiveBehavioralAlteration = v }},
			{"hasVoiceAlteration",
				func(g *CommunicationGroup) bool { return g.HasVoiceAlteration },
				func(g *CommunicationGroup, v bool) { g.HasVoiceAlteration = v }},
		},
		selects: []selectField[CommunicationGroup]{
			{"selectedCooperation", CooperationOptions,
				func(g *CommunicationGroup, v string) { g.SelectedCooperation = v }},
			{"selectedAttention", AttentionOptions,
				func(g *CommunicationGroup, v string) { g.SelectedAttention = v }},
			{"selectedCalmness", CalmnessOptions,
				func(g *CommunicationGroup, v string) { g.SelectedCalmness = v }},
			{"selectedOrientation", OrientationOptions,
				func(g *CommunicationGroup, v string) { g.SelectedOrientation = v }},
			{"selectedInstructionFollowing", InstructionFollowingOptions,
				func(g *CommunicationGroup, v string) { g.SelectedInstructionFollowing = v }},
			{"selectedVoiceAlterationType", VoiceAlterationOptions,
				func(g *CommunicationGroup, v string) { g.SelectedVoiceAlterationType = v }},
		},
		// The two base states exclude each other and both alteration
		// switches; the alterations may be asserted together.
		exclusions: []exclusion{
			{members: []string{"isCooperativeAndOriented", "isNotEvaluable"}},
			{members: []string{"isCooperativeAndOriented", "hasCognitiveBehavioralAlteration"}},
			{members: []string{"isCooperativeAndOriented", "hasVoiceAlteration"}},
			{members: []string{"isNotEvaluable", "hasCognitiveBehavioralAlteration"}},
			{members: []string{"isNotEvaluable", "hasVoiceAlteration"}},
		},
		reveals: []reveal[CommunicationGroup]{
			{"hasCognitiveBehavioralAlteration", clearCognitive},
			{"hasVoiceAlteration", func(g *CommunicationGroup) { g.SelectedVoiceAlterationType = "" }},
		},
		checks: []check[CommunicationGroup]{
			{"isCooperativeAndOriented", "Seleccione al menos una opción de comunicación.", nil,
				func(g *CommunicationGroup) bool {
					return g.IsCooperativeAndOriented || g.IsNotEvaluable ||
						g.HasCognitiveBehavioralAlteration || g.HasVoiceAlteration
				}},
			{"selectedCooperation", "Complete todas las sub-opciones de alteración cognitiva-conductual.",
				func(g *CommunicationGroup) bool { return g.HasCognitiveBehavioralAlteration },
				func(g *CommunicationGroup) bool {
					return g.SelectedCooperation != "" && g.SelectedAttention != "" &&
						g.SelectedCalmness != "" && g.SelectedOrientation != "" &&
						g.SelectedInstructionFollowing != ""
				}},
			{"selectedVoiceAlterationType", "Seleccione el tipo de alteración en la voz.",
				func(g *CommunicationGroup) bool { return g.HasVoiceAlteration },
				func(g *CommunicationGroup) bool { return g.SelectedVoiceAlterationType != "" }},
		},
	}
	return &formStage[CommunicationGroup]{
		id:    StageCommunication,
		title: "Etapa 5 - Comunicación",
		def:   d,
		fromRecord: func(r *Record) *CommunicationGroup { return r.Communication },
		assign:     func(r *Record, g *CommunicationGroup) { r.Communication = g },
	}
}
