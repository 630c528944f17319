package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Runtime is a film duration in minutes.
type Runtime int32

// MarshalJSON encodes the runtime as "<runtime> mins".
func (r Runtime) MarshalJSON() ([]byte, error) {
	jsonValue := fmt.Sprintf("%d mins", r)

	return []byte(strconv.Quote(jsonValue)), nil
}

// UnmarshalJSON accepts either the "<runtime> mins" string form or a bare
// integer. A quoted value in any other shape is ErrInvalidRuntimeFormat; a
// bare value that is not an integer is ErrInvalidType.
func (r *Runtime) UnmarshalJSON(jsonValue []byte) error {
	jsonValue = bytes.TrimSpace(jsonValue)
	if bytes.Equal(jsonValue, []byte("null")) {
		return nil
	}

	if len(jsonValue) > 0 && jsonValue[0] == '"' {
		unquoted, err := strconv.Unquote(string(jsonValue))
		if err != nil {
			return ErrInvalidRuntimeFormat
		}

		parts := strings.Split(unquoted, " ")
		if len(parts) != 2 || parts[1] != "mins" {
			return ErrInvalidRuntimeFormat
		}

		i, err := strconv.ParseInt(parts[0], 10, 32)
		if err != nil {
			return ErrInvalidRuntimeFormat
		}

		*r = Runtime(i)
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(jsonValue))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParseRuntime(raw)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// ParseRuntime converts a loosely typed value into a Runtime. Only integer
// kinds are accepted: floats are a type error even when they are whole.
// Values that don't fit in 32 bits are out of range. Positivity is checked by
// the film setters, not here.
func ParseRuntime(v any) (Runtime, error) {
	var i int64

	switch n := v.(type) {
	case Runtime:
		return n, nil
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint:
		return runtimeFromUint(uint64(n), v)
	case uint8:
		return runtimeFromUint(uint64(n), v)
	case uint16:
		return runtimeFromUint(uint64(n), v)
	case uint32:
		return runtimeFromUint(uint64(n), v)
	case uint64:
		return runtimeFromUint(n, v)
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			if f, ferr := n.Float64(); ferr == nil {
				return 0, typeError("duration", "an integer", f)
			}
			return 0, typeError("duration", "an integer", v)
		}
		i = parsed
	default:
		return 0, typeError("duration", "an integer", v)
	}

	switch {
	case i > math.MaxInt32:
		return 0, rangeError("duration", fmt.Sprintf("at most %d", math.MaxInt32), v)
	case i < math.MinInt32:
		return 0, rangeError("duration", "greater than zero", v)
	}

	return Runtime(i), nil
}

func runtimeFromUint(u uint64, original any) (Runtime, error) {
	if u > math.MaxInt32 {
		return 0, rangeError("duration", fmt.Sprintf("at most %d", math.MaxInt32), original)
	}
	return Runtime(u), nil
}
