package data

import (
	"github.com/leebrouse/films/internal/validator"
)

// FilmInput carries film fields from a loosely typed source such as command
// line flags. Duration and Accordance keep whatever type the source produced
// so that type errors can be reported; a nil Accordance means "not set".
type FilmInput struct {
	Name       string
	Duration   any
	Comedy     bool
	Year       int
	Comment    *string
	Accordance any
}

// ValidateFilmInput records one message per invalid field.
func ValidateFilmInput(v *validator.Validator, in FilmInput) {
	d, err := ParseRuntime(in.Duration)
	if err != nil {
		v.AddError("duration", fieldMessage(err))
	} else {
		v.Check(d > 0, "duration", "must be greater than zero")
	}

	if in.Accordance != nil {
		if _, err := ParseAccordance(in.Accordance); err != nil {
			v.AddError("accordance", fieldMessage(err))
		}
	}
}

// Build constructs a Film, or a ComedyFilm when in.Comedy is set, and applies
// the optional annotations through the setters.
func (in FilmInput) Build() (Picture, error) {
	d, err := ParseRuntime(in.Duration)
	if err != nil {
		return nil, err
	}

	var p Picture
	if in.Comedy {
		c, err := NewComedyFilm(in.Name, d, in.Year)
		if err != nil {
			return nil, err
		}
		p = c
	} else {
		f, err := NewFilm(in.Name, d)
		if err != nil {
			return nil, err
		}
		p = f
	}

	if in.Comment != nil {
		p.SetComment(*in.Comment)
	}

	if in.Accordance != nil {
		if err := p.SetAccordanceValue(in.Accordance); err != nil {
			return nil, err
		}
	}

	return p, nil
}
