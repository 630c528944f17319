package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leebrouse/films/internal/validator"
)

func TestValidateFilmInput(t *testing.T) {
	tests := []struct {
		name  string
		input FilmInput
		want  map[string]string
	}{
		{
			name:  "valid without accordance",
			input: FilmInput{Name: "Jumanji", Duration: 118},
			want:  map[string]string{},
		},
		{
			name:  "valid with accordance",
			input: FilmInput{Name: "Jumanji", Duration: 118, Accordance: 8.9},
			want:  map[string]string{},
		},
		{
			name:  "float duration and int accordance",
			input: FilmInput{Name: "Jumanji", Duration: 118.5, Accordance: 9},
			want: map[string]string{
				"duration":   "must be an integer, got float64",
				"accordance": "must be a floating-point number, got int",
			},
		},
		{
			name:  "non-positive duration",
			input: FilmInput{Name: "Jumanji", Duration: 0},
			want:  map[string]string{"duration": "must be greater than zero"},
		},
		{
			name:  "accordance out of range",
			input: FilmInput{Name: "Jumanji", Duration: 118, Accordance: -1.0},
			want:  map[string]string{"accordance": "must be from 0 to 10, got -1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateFilmInput(v, tt.input)
			assert.Equal(t, tt.want, v.Errors)
		})
	}
}

func TestFilmInput_Build(t *testing.T) {
	comment := "Plenty of plot twists"

	p, err := FilmInput{Name: "Jumanji", Duration: 118, Comment: &comment, Accordance: 8.9}.Build()
	require.NoError(t, err)
	require.IsType(t, &Film{}, p)
	assert.Equal(t, `Film "Jumanji", duration 118`, p.String())
	got, ok := p.Comment()
	assert.True(t, ok)
	assert.Equal(t, comment, got)
	assert.Equal(t, "Accordance with the theme: 8.9", p.DisplayAccordance())

	p, err = FilmInput{Name: "Alvin and the Chipmunks", Duration: 87, Comedy: true, Year: 2007}.Build()
	require.NoError(t, err)
	require.IsType(t, &ComedyFilm{}, p)
	assert.Equal(t, `Comedy film "Alvin and the Chipmunks", duration 87, 2007`, p.String())

	_, err = FilmInput{Name: "Jumanji", Duration: "118"}.Build()
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = FilmInput{Name: "Jumanji", Duration: 118, Accordance: 11.0}.Build()
	require.ErrorIs(t, err, ErrOutOfRange)
}
