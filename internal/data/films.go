package data

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Picture is the behaviour shared by every kind of film. Rendering and
// accordance display differ per kind; the rest comes from Film.
type Picture interface {
	fmt.Stringer
	fmt.GoStringer

	Duration() Runtime
	SetDuration(d Runtime) error
	SetDurationValue(v any) error

	Comment() (string, bool)
	SetComment(text string)

	Accordance() (float64, bool)
	SetAccordance(score float64) error
	SetAccordanceValue(v any) error
	DisplayAccordance() string
}

// {
// 	"name": "Jumanji",
// 	"duration": "118 mins",
// 	"comment": "Plenty of plot twists",
// 	"accordance": 8.9
// }

type Film struct {
	Name       string
	duration   Runtime
	comment    Optional[string]
	accordance Optional[float64]
}

// NewFilm creates a film with no comment and no accordance. The duration
// goes through SetDuration, so a non-positive value is rejected.
func NewFilm(name string, duration Runtime) (*Film, error) {
	f := &Film{Name: name}
	if err := f.SetDuration(duration); err != nil {
		return nil, err
	}

	f.comment = Optional[string]{}
	f.accordance = Optional[float64]{}

	return f, nil
}

func (f *Film) Duration() Runtime {
	return f.duration
}

// SetDuration replaces the duration; it must be greater than zero.
func (f *Film) SetDuration(d Runtime) error {
	if d <= 0 {
		return rangeError("duration", "greater than zero", d)
	}

	f.duration = d
	return nil
}

// SetDurationValue is SetDuration for values of unknown type. Anything that
// isn't an integer is rejected with ErrInvalidType.
func (f *Film) SetDurationValue(v any) error {
	d, err := ParseRuntime(v)
	if err != nil {
		return err
	}

	return f.SetDuration(d)
}

// Comment returns the comment and whether one was ever set.
func (f *Film) Comment() (string, bool) {
	return f.comment.Get()
}

func (f *Film) SetComment(text string) {
	f.comment = Some(text)
}

func (f *Film) Accordance() (float64, bool) {
	return f.accordance.Get()
}

// SetAccordance stores a score in [0, 10].
func (f *Film) SetAccordance(score float64) error {
	if err := checkAccordance(score); err != nil {
		return err
	}

	f.accordance = Some(score)
	return nil
}

// SetAccordanceValue is SetAccordance for values of unknown type. Only
// floating-point values are accepted.
func (f *Film) SetAccordanceValue(v any) error {
	score, err := ParseAccordance(v)
	if err != nil {
		return err
	}

	return f.SetAccordance(score)
}

func (f *Film) DisplayAccordance() string {
	return "Accordance with the theme: " + formatAccordance(f.accordance)
}

func (f Film) String() string {
	return fmt.Sprintf("Film \"%s\", duration %d", f.Name, f.duration)
}

// GoString renders the film the way it would be constructed.
func (f Film) GoString() string {
	return fmt.Sprintf("Film(name=%q, dur=%d)", f.Name, f.duration)
}

func (f Film) MarshalJSON() ([]byte, error) {
	return json.Marshal(filmDocument{
		Name:       f.Name,
		Duration:   f.duration,
		Comment:    f.comment,
		Accordance: f.accordance,
	})
}

func (f *Film) UnmarshalJSON(data []byte) error {
	var doc filmInputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	film, err := NewFilm(doc.Name, doc.Duration)
	if err != nil {
		return err
	}

	if err := doc.annotate(film); err != nil {
		return err
	}

	*f = *film
	return nil
}

// ComedyFilm is a Film of the comedy genre with a release year.
type ComedyFilm struct {
	Film
	Year int
}

// NewComedyFilm creates a comedy with no comment and no accordance.
func NewComedyFilm(name string, duration Runtime, year int) (*ComedyFilm, error) {
	base, err := NewFilm(name, duration)
	if err != nil {
		return nil, err
	}

	c := &ComedyFilm{Film: *base, Year: year}
	c.comment = Optional[string]{}
	c.accordance = Optional[float64]{}

	return c, nil
}

func (c *ComedyFilm) DisplayAccordance() string {
	return "Accordance with the comedy genre: " + formatAccordance(c.accordance)
}

func (c ComedyFilm) String() string {
	return fmt.Sprintf("Comedy film \"%s\", duration %d, %d", c.Name, c.duration, c.Year)
}

func (c ComedyFilm) GoString() string {
	return fmt.Sprintf("ComedyFilm(name=%q, dur=%d, year=%d)", c.Name, c.duration, c.Year)
}

func (c ComedyFilm) MarshalJSON() ([]byte, error) {
	return json.Marshal(filmDocument{
		Name:       c.Name,
		Duration:   c.duration,
		Year:       c.Year,
		Comment:    c.comment,
		Accordance: c.accordance,
	})
}

func (c *ComedyFilm) UnmarshalJSON(data []byte) error {
	var doc filmInputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	comedy, err := NewComedyFilm(doc.Name, doc.Duration, doc.Year)
	if err != nil {
		return err
	}

	if err := doc.annotate(&comedy.Film); err != nil {
		return err
	}

	*c = *comedy
	return nil
}

type filmDocument struct {
	Name       string            `json:"name"`
	Duration   Runtime           `json:"duration"`
	Year       int               `json:"year,omitempty"`
	Comment    Optional[string]  `json:"comment"`
	Accordance Optional[float64] `json:"accordance"`
}

type filmInputDocument struct {
	Name       string          `json:"name"`
	Duration   Runtime         `json:"duration"`
	Year       int             `json:"year"`
	Comment    *string         `json:"comment"`
	Accordance json.RawMessage `json:"accordance"`
}

// annotate applies the optional fields of the document through the setters.
func (doc filmInputDocument) annotate(f *Film) error {
	if doc.Comment != nil {
		f.SetComment(*doc.Comment)
	}

	if len(doc.Accordance) == 0 || bytes.Equal(doc.Accordance, []byte("null")) {
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(doc.Accordance))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	return f.SetAccordanceValue(raw)
}
