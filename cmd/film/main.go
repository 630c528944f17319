package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/leebrouse/films/internal/data"
	filmvalidator "github.com/leebrouse/films/internal/validator"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

const (
	exitInvalidFilm  = 2
	exitInvalidFlags = 3
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// showFlags holds the parsed flags for the show command.
type showFlags struct {
	Name       string
	Duration   string `validate:"required"`
	Comedy     bool
	Year       int
	Comment    string
	Accordance string
	Format     string `validate:"oneof=text json"`
	LogLevel   string `validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var ee *exitErr
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "film",
		Short:         "Describe films and comedies",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return codeError(exitInvalidFlags, "invalid flags: %s", err)
	})

	var flags showFlags
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Build a film from flags and print its descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, stdout, stderr)
		},
	}

	f := showCmd.Flags()
	f.StringVar(&flags.Name, "name", "", "Film name")
	f.StringVar(&flags.Duration, "duration", "", "Duration in minutes (positive integer)")
	f.BoolVar(&flags.Comedy, "comedy", false, "Describe the film as a comedy")
	f.IntVar(&flags.Year, "year", 0, "Release year (comedies only)")
	f.StringVar(&flags.Comment, "comment", "", "Free-text comment")
	f.StringVar(&flags.Accordance, "accordance", "", "Accordance score, a float from 0 to 10")
	f.StringVar(&flags.Format, "format", "text", "Output format: text or json")
	f.StringVar(&flags.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(showCmd)

	return root
}

func runShow(cmd *cobra.Command, flags showFlags, stdout, stderr io.Writer) error {
	if err := validate.Struct(flags); err != nil {
		return codeError(exitInvalidFlags, "invalid flags: %s", formatValidationErrors(err))
	}

	level, err := log.ParseLevel(flags.LogLevel)
	if err != nil {
		return codeError(exitInvalidFlags, "invalid flags: %s", err)
	}
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "film", Level: level})

	input := data.FilmInput{
		Name:     flags.Name,
		Duration: literal(flags.Duration),
		Comedy:   flags.Comedy,
		Year:     flags.Year,
	}
	if cmd.Flags().Changed("comment") {
		input.Comment = &flags.Comment
	}
	if cmd.Flags().Changed("accordance") {
		input.Accordance = literal(flags.Accordance)
	}

	v := filmvalidator.New()
	if data.ValidateFilmInput(v, input); !v.Valid() {
		logger.Warn("rejected film input", "name", flags.Name, "fields", len(v.Errors))
		return codeError(exitInvalidFilm, "invalid film: %s", formatFieldErrors(v.Errors))
	}

	logger.Debug("building film", "name", flags.Name, "comedy", flags.Comedy)
	p, err := input.Build()
	if err != nil {
		return codeError(exitInvalidFilm, "%s", err)
	}

	logger.Debug("writing film", "format", flags.Format)
	switch flags.Format {
	case "json":
		js, err := json.MarshalIndent(p, "", "\t")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(js))
		return err
	default:
		return writeText(stdout, p)
	}
}

func writeText(w io.Writer, p data.Picture) error {
	lines := []string{p.String(), p.GoString(), p.DisplayAccordance()}
	if comment, ok := p.Comment(); ok {
		lines = append(lines, "Comment: "+comment)
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// literal turns flag text into the value a caller would have written in Go:
// an int, a float64, or the string itself.
func literal(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func formatFieldErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+errs[k])
	}
	return strings.Join(parts, "; ")
}

// formatValidationErrors converts validator errors to a readable form.
func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := flagName(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("--%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("--%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("--%s failed validation: %s", field, e.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// flagName converts "LogLevel" to "log-level".
func flagName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
