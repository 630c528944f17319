package data

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/leebrouse/films/internal/validator"
)

const (
	MinAccordance = 0.0
	MaxAccordance = 10.0
)

// ParseAccordance converts a loosely typed value into an accordance score.
// Only floating-point values are accepted; integers are a type error.
func ParseAccordance(v any) (float64, error) {
	var score float64

	switch n := v.(type) {
	case float64:
		score = n
	case float32:
		// Widen through the shortest decimal so 8.3 stays 8.3.
		f, err := strconv.ParseFloat(strconv.FormatFloat(float64(n), 'g', -1, 32), 64)
		if err != nil {
			return 0, typeError("accordance", "a floating-point number", v)
		}
		score = f
	case json.Number:
		f, err := n.Float64()
		if errors.Is(err, strconv.ErrRange) {
			return 0, rangeError("accordance", "from 0 to 10", v)
		}
		if err != nil {
			return 0, typeError("accordance", "a floating-point number", v)
		}
		score = f
	default:
		return 0, typeError("accordance", "a floating-point number", v)
	}

	if err := checkAccordance(score); err != nil {
		return 0, err
	}

	return score, nil
}

// checkAccordance rejects scores outside [0, 10], NaN included.
func checkAccordance(score float64) error {
	if !validator.Between(score, MinAccordance, MaxAccordance) {
		return rangeError("accordance", "from 0 to 10", score)
	}
	return nil
}

func formatAccordance(o Optional[float64]) string {
	score, ok := o.Get()
	if !ok {
		return "not set"
	}
	return strconv.FormatFloat(score, 'f', -1, 64)
}
