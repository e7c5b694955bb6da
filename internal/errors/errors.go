// Package errors renders frontend and elaboration failures as
// human-readable diagnostics: source context, line/column, and a caret
// pointing at the offending span.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratioSolver/riddle/internal/lexer"
	"github.com/ratioSolver/riddle/internal/parser"
)

// Kind names one of the taxonomy of failures a RiDDLe frontend or
// elaborator can raise.
type Kind string

const (
	LexError        Kind = "LexError"
	ParseError      Kind = "ParseError"
	IoError         Kind = "IoError"
	DuplicateName   Kind = "DuplicateName"
	UnresolvedName  Kind = "UnresolvedName"
	TypeMismatch    Kind = "TypeMismatch"
	Inconsistency   Kind = "Inconsistency"
	NotImplemented  Kind = "NotImplemented"
)

// Diagnostic is a single reported failure with enough context to print
// a source-pointing message: its kind, position, message, and the
// source text and file it was read from.
type Diagnostic struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a Diagnostic.
func New(kind Kind, pos lexer.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with color disabled.
func (d *Diagnostic) Error() string { return d.Format(false) }

var (
	boldRed = color.New(color.FgRed, color.Bold)
	bold    = color.New(color.Bold)
	dim     = color.New(color.Faint)
)

// Format renders the diagnostic: a header naming the kind, file, and
// position, the offending source line, and a caret under the column
// the failure was reported at. When useColor is false, fatih/color's
// global NoColor detection is bypassed so tests get stable plain text.
func (d *Diagnostic) Format(useColor bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s", d.Kind, d.headerLocation())
	if useColor {
		sb.WriteString(bold.Sprint(header))
	} else {
		sb.WriteString(header)
	}
	sb.WriteString("\n")

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.StartCol))
		caret := "^"
		if useColor {
			caret = boldRed.Sprint(caret)
		}
		sb.WriteString(caret)
		sb.WriteString("\n")
	}

	if useColor {
		sb.WriteString(bold.Sprint(d.Message))
	} else {
		sb.WriteString(d.Message)
	}
	return sb.String()
}

func (d *Diagnostic) headerLocation() string {
	if d.Pos.Line == 0 {
		if d.File != "" {
			return d.File
		}
		return ""
	}
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d", d.File, d.Pos.Line, d.Pos.StartCol)
	}
	return fmt.Sprintf("line %d:%d", d.Pos.Line, d.Pos.StartCol)
}

// Kinder is implemented by the riddle package's typed error taxonomy,
// letting FromError recover the right Kind without importing riddle
// (which would cycle back to this package).
type Kinder interface {
	error
	Kind() Kind
}

// FromError classifies a single frontend or elaboration failure into a
// Diagnostic ready for Format. Lexer and parser errors carry a
// position and are tagged LexError/ParseError; riddle's typed errors
// report their own Kind via Kinder; anything else falls back to a
// plain, position-less message.
func FromError(err error, source, file string) *Diagnostic {
	switch e := err.(type) {
	case *lexer.Error:
		return New(LexError, e.Pos, e.Message, source, file)
	case *parser.Error:
		return New(ParseError, e.Token.Pos, e.Error(), source, file)
	case Kinder:
		return New(e.Kind(), lexer.Position{}, e.Error(), source, file)
	default:
		return New(NotImplemented, lexer.Position{}, err.Error(), source, file)
	}
}

// FromErrors maps FromError over a batch, for callers (such as
// ReadFiles) that accumulate more than one failure.
func FromErrors(errs []error, source, file string) []*Diagnostic {
	diags := make([]*Diagnostic, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			diags = append(diags, FromError(err, source, file))
		}
	}
	return diags
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders multiple diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, useColor bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(useColor)
	}
	var sb strings.Builder
	header := fmt.Sprintf("%d error(s):\n\n", len(diags))
	if useColor {
		sb.WriteString(dim.Sprint(header))
	} else {
		sb.WriteString(header)
	}
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(diags)))
		sb.WriteString(d.Format(useColor))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
