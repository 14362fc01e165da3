package electrical

import "math"

// Wind-turbine curve constants. The region boundaries apply to the wind
// speed normalized to the reference hub height.
const (
	// CutInWindSpeed is the speed below which the turbine produces nothing (m/s)
	CutInWindSpeed = 3.0
	// NominalWindSpeed is the speed at which nominal power is reached (m/s)
	NominalWindSpeed = 14.0
	// CuttingOutWindSpeed is the speed at which output starts ramping down (m/s)
	CuttingOutWindSpeed = 25.0
	// CutOutWindSpeed is the speed at which the turbine shuts off completely (m/s)
	CutOutWindSpeed = 30.0

	// referenceHubHeight is the hub height the curve constants are defined at (m)
	referenceHubHeight = 10.0
	// windShearExponent is the Hellmann exponent for open terrain
	windShearExponent = 0.143
)

// PowerWindSpeed estimates the generated power of a wind turbine with
// nominal power pNomW at a measured wind speed, with the speed first
// corrected from the 10 m reference height to the turbine's axis height
// using the Hellmann power-law wind-shear profile.
//
// The normalized speed is classified into four regions: zero below
// cut-in, a cube-law ramp from cut-in to nominal (aerodynamic power rises
// with the cube of the wind speed), flat nominal output up to the
// cutting-out speed, and a linear ramp down to zero at cut-out. The curve
// is continuous at every boundary except the shutoff at cut-out itself.
func PowerWindSpeed(pNomW, windSpeedMS, axisHeightM float64) float64 {
	if math.IsNaN(pNomW) || math.IsNaN(windSpeedMS) || math.IsNaN(axisHeightM) {
		return math.NaN()
	}

	v := windSpeedMS * math.Pow(axisHeightM/referenceHubHeight, windShearExponent)

	switch {
	case v < CutInWindSpeed:
		return 0.0
	case v < NominalWindSpeed:
		frac := (v - CutInWindSpeed) / (NominalWindSpeed - CutInWindSpeed)
		return pNomW * frac * frac * frac
	case v < CuttingOutWindSpeed:
		return pNomW
	case v < CutOutWindSpeed:
		return pNomW * (1.0 - (v-CuttingOutWindSpeed)/(CutOutWindSpeed-CuttingOutWindSpeed))
	default:
		return 0.0
	}
}

// CutOutWindSpeedAt returns the raw wind speed at which a turbine at the
// given axis height shuts off. The boundary is derived from the shear
// profile and the normalized cut-out constant rather than hard-coded, so
// it stays consistent if the curve constants change.
func CutOutWindSpeedAt(axisHeightM float64) float64 {
	return CutOutWindSpeed / math.Pow(axisHeightM/referenceHubHeight, windShearExponent)
}
