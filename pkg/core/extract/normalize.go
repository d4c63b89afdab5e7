package extract

import (
	"strconv"
	"strings"

	"controlstates/pkg/models"
)

// Normalize converts a raw cell string into a numeric value. It strips the
// currency marker, thousands separators and the percent marker, then parses
// the residue: a decimal point means float, otherwise integer. Anything that
// still fails to parse is null. Total over all inputs, never panics.
//
//	"4,873,623"      -> 4873623 (int)
//	"$1,074,541,845" -> 1074541845 (int)
//	"-0.5%"          -> -0.5 (float)
//	"", "N/A"        -> nil
func Normalize(raw string) *models.Number {
	val := strings.TrimSpace(raw)
	if val == "" {
		return nil
	}

	val = strings.ReplaceAll(val, "$", "")
	val = strings.ReplaceAll(val, ",", "")
	val = strings.ReplaceAll(val, "%", "")

	if strings.Contains(val, ".") {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		return models.Float(f)
	}

	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	return models.Int(i)
}
