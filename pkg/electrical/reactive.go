package electrical

import "math"

// ReactivePower derives the reactive power q from the active power pW and
// the power factor cosPhi: q = p * tan(acos(cos_phi)). A power factor
// outside [-1, 1] yields NaN through the arc-cosine domain; guarding
// against that is the caller's responsibility.
func ReactivePower(pW, cosPhi float64) float64 {
	return pW * math.Tan(math.Acos(cosPhi))
}

// ReactivePowerToSusceptance converts a reactive power in var to the
// equivalent shunt susceptance at nominal voltage: b = q / u².
func ReactivePowerToSusceptance(qVar, uNomV float64) float64 {
	return qVar / (uNomV * uNomV)
}
