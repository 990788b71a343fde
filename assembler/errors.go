package assembler

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an assembly diagnostic.
type ErrorKind int

const (
	// Unknown is used for kinds outside the table.
	Unknown ErrorKind = iota + 1
	NullPointer
	UndefinedLabel
	UnknownCommand
	InvalidArgument
	Overflow
	InvalidFilePath
	NoParameters
	MissingArguments
	InvalidAddressMethod
	ExtraneousText
	InvalidInstruction
	MissingComma
	InvalidData
	MissingOpeningQuotes
	MissingClosingQuotes
	UndefinedDirective
	MultipleLabelDefinitions
	InvalidLabelName
	ContraryLabelAttributes
	InvalidMacroName
	MissingMacroEnd
)

var errorMessages = map[ErrorKind]string{
	Unknown:                  "Unknown error",
	NullPointer:              "Null pointer",
	UndefinedLabel:           "Undefined label",
	UnknownCommand:           "Unknown command",
	InvalidArgument:          "Invalid argument",
	Overflow:                 "Not enough memory",
	InvalidFilePath:          "Invalid file path",
	NoParameters:             "Not enough parameters",
	MissingArguments:         "Missing arguments",
	InvalidAddressMethod:     "Invalid address method",
	ExtraneousText:           "Extraneous text",
	InvalidInstruction:       "Invalid instruction",
	MissingComma:             "Missing comma",
	InvalidData:              "Invalid data",
	MissingOpeningQuotes:     "Missing opening quotes",
	MissingClosingQuotes:     "Missing closing quotes",
	UndefinedDirective:       "Undefined directive",
	MultipleLabelDefinitions: "Multiple label definitions",
	InvalidLabelName:         "Invalid label name",
	ContraryLabelAttributes:  "Contrary label attributes",
	InvalidMacroName:         "Invalid macro name",
	MissingMacroEnd:          "Missing endm",
}

// Error returns the message text of the kind.
func (k ErrorKind) Error() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return errorMessages[Unknown]
}

// Diagnostic is one recorded problem, tied to the source line it was found on.
type Diagnostic struct {
	Line   int
	Kind   ErrorKind
	Detail string
}

// Message is the diagnostic text without the line number.
func (d Diagnostic) Message() string {
	if d.Detail == "" {
		return d.Kind.Error()
	}
	return d.Kind.Error() + ": " + d.Detail
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%04d\t%s", d.Line, d.Message())
}

// Unwrap exposes the kind to errors.Is.
func (d Diagnostic) Unwrap() error {
	return d.Kind
}

// Diagnostics is the accumulated result of a failed assembly.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap lets errors.Is match any of the contained kinds.
func (ds Diagnostics) Unwrap() []error {
	out := make([]error, len(ds))
	for i, d := range ds {
		out[i] = d
	}
	return out
}

// Count returns how many diagnostics of kind were recorded.
func (ds Diagnostics) Count(kind ErrorKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
