package vectorgroup

import (
	"fmt"
	"strconv"

	apperrors "gridconv/pkg/errors"
)

// splitCode scans a designation left to right and splits it into the
// primary descriptor (run of uppercase letters), the secondary descriptor
// (run of lowercase letters) and the clock suffix (everything after the
// second run). Classification and range checks happen in the callers, so
// a code like "XNd11" splits fine here and fails there with a precise
// message.
func splitCode(code string) (from, to, clock string) {
	i := 0
	for i < len(code) && code[i] >= 'A' && code[i] <= 'Z' {
		i++
	}
	j := i
	for j < len(code) && code[j] >= 'a' && code[j] <= 'z' {
		j++
	}
	return code[:i], code[i:j], code[j:]
}

// WindingFrom returns the winding type of the primary side of the
// vector-group designation code. When neutralGrounding is false the
// grounded variants are never returned; the N suffix is still parsed but
// ignored for classification.
func WindingFrom(code string, neutralGrounding bool) (WindingType, error) {
	from, _, _ := splitCode(code)
	switch from {
	case "Y":
		return Wye, nil
	case "YN":
		if neutralGrounding {
			return WyeN, nil
		}
		return Wye, nil
	case "D":
		return Delta, nil
	case "Z":
		return Zigzag, nil
	case "ZN":
		if neutralGrounding {
			return ZigzagN, nil
		}
		return Zigzag, nil
	default:
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("unrecognized primary winding %q in vector group %q", from, code), nil,
		).WithContext("code", code)
	}
}

// WindingTo returns the winding type of the secondary side of the
// vector-group designation code. The policy mirrors WindingFrom with the
// lowercase letter set.
func WindingTo(code string, neutralGrounding bool) (WindingType, error) {
	_, to, _ := splitCode(code)
	switch to {
	case "y":
		return Wye, nil
	case "yn":
		if neutralGrounding {
			return WyeN, nil
		}
		return Wye, nil
	case "d":
		return Delta, nil
	case "z":
		return Zigzag, nil
	case "zn":
		if neutralGrounding {
			return ZigzagN, nil
		}
		return Zigzag, nil
	default:
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("unrecognized secondary winding %q in vector group %q", to, code), nil,
		).WithContext("code", code)
	}
}

// Clock returns the clock number of the vector-group designation code,
// the phase displacement between primary and secondary in multiples of
// 30 degrees.
func Clock(code string) (int, error) {
	_, _, suffix := splitCode(code)
	clock, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("non-numeric clock number %q in vector group %q", suffix, code), err,
		).WithContext("code", code)
	}
	if clock < MinClock || clock > MaxClock {
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("clock number %d in vector group %q outside [%d, %d]", clock, code, MinClock, MaxClock), nil,
		).WithContext("code", code)
	}
	return clock, nil
}
