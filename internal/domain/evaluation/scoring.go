package evaluation

import "math"

// countNonNutritiveIssues counts the asserted risk indicators of stage 9.
// Detail fields (escape anterior, the voice-clearing modes) do not count on
// their own.
func countNonNutritiveIssues(g NonNutritiveGroup) int {
	flags := []bool{
		g.AcumulacionSaliva,
		g.Xerostomia,
		g.NoDegluteEspontaneamente,
		g.RmoMasDeUnSegundo,
		g.ExcursionLaringeaAusente,
		g.Odinofagia,
		g.VozHumedaSinAclaramiento,
		g.AscultacionCervicalHumeda,
		g.BdtInmediato,
		g.EvaluacionPenetracion,
		g.EvaluacionAspiracion,
		g.EvaluacionAspiracionSilente,
	}
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// NonNutritiveScore is the stage-9 percentage: 100 minus the share of the
// twelve risk indicators found, floored at zero and rounded to one decimal.
func NonNutritiveScore(g NonNutritiveGroup) float64 {
	k := countNonNutritiveIssues(g)
	score := 100 - float64(k)/float64(len(nonNutritiveIndicators))*100
	return round1(math.Max(0, score))
}

// NutritiveScore is the stage-10 percentage. Each evaluated consistency
// contributes its possible alarm signs to the denominator (the six switches,
// plus one when free-text signs were recorded, which then also count as
// found). No evaluated consistency yields a full score.
func NutritiveScore(g NutritiveGroup) float64 {
	possible, found := 0, 0
	for _, c := range g.Consistencies() {
		if !c.Evaluated() {
			continue
		}
		possible += 6
		for _, sign := range []bool{c.Cough, c.WetVoice, c.VoiceClearing, c.Stridor, c.Dyspnea, c.Cyanosis} {
			if sign {
				found++
			}
		}
		if notBlank(c.OtherSigns) {
			possible++
			found++
		}
	}
	if possible == 0 {
		return 100
	}
	score := 100 - float64(found)/float64(possible)*100
	return round1(math.Max(0, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
