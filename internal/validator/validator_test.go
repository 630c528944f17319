package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_AddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.AddError("duration", "must be an integer")
	v.AddError("duration", "must be greater than zero")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"duration": "must be an integer"}, v.Errors)
}

func TestValidator_Check(t *testing.T) {
	v := New()

	v.Check(true, "name", "ignored")
	assert.True(t, v.Valid())

	v.Check(false, "accordance", "must be from 0 to 10")
	assert.Equal(t, "must be from 0 to 10", v.Errors["accordance"])
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("json", "text", "json"))
	assert.False(t, PermittedValue("yaml", "text", "json"))
	assert.False(t, PermittedValue(1))
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{name: "lower bound", value: 0, want: true},
		{name: "upper bound", value: 10, want: true},
		{name: "inside", value: 8.3, want: true},
		{name: "below", value: -0.1, want: false},
		{name: "above", value: 10.01, want: false},
		{name: "NaN", value: math.NaN(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Between(tt.value, 0, 10))
		})
	}
}
