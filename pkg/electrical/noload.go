package electrical

import (
	"fmt"
	"math"

	apperrors "gridconv/pkg/errors"
)

// RelativeNoLoadCurrent calculates the relative no-load current of a
// transformer as a fraction of its nominal current.
//
// Parameters:
//   - i0A: measured no-load current in ampere
//   - p0W: no-load (iron) losses in watt
//   - sNomVA: nominal apparent power in volt-ampere
//   - uNomV: nominal line-to-line voltage in volt
//
// The result is the larger of the current-based and the loss-based
// estimate. A value above 1.0 means the nameplate data is internally
// inconsistent and yields an infeasible-quantity error; NaN inputs
// propagate to a NaN result without error.
func RelativeNoLoadCurrent(i0A, p0W, sNomVA, uNomV float64) (float64, error) {
	iNom := sNomVA / (uNomV * math.Sqrt(3))
	iRel := math.Max(i0A/iNom, p0W/sNomVA)
	if iRel > 1.0 {
		return 0, apperrors.NewInfeasibleError(
			fmt.Sprintf("relative no-load current can't be more than 100%% (got %.2f%%)", iRel*100.0),
		)
	}
	return iRel, nil
}
