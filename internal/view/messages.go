package view

import (
	"fmt"
	"strings"
)

// Messages holds the user-facing strings for one locale.
type Messages struct {
	LineHeader   string // line number, text
	LineSkipped  string // line number
	TraceHeader  string
	EmptyStack   string
	Mismatch     string // expected closer, actual closer
	FinalEmpty   string
	FinalPending string // stack contents
	Result       string // verdict
	Balanced     string
	NotBalanced  string
	EmptyFile    string
	NotFound     string // path
	Summary      string // checked, balanced, not balanced, skipped
}

var english = Messages{
	LineHeader:   "Line %d: %s",
	LineSkipped:  "Line %d: [EMPTY] - skipped",
	TraceHeader:  "Processing character by character:",
	EmptyStack:   "[EMPTY] - no matching opening symbol",
	Mismatch:     "expected '%c' but found '%c'",
	FinalEmpty:   "FINAL: stack empty | [] - all symbols are balanced",
	FinalPending: "FINAL: stack not empty | [%s] - unclosed symbols",
	Result:       "Result: %s",
	Balanced:     "BALANCED",
	NotBalanced:  "NOT BALANCED",
	EmptyFile:    "The file is empty.",
	NotFound:     "the file '%s' was not found",
	Summary:      "%d checked: %d balanced, %d not balanced, %d skipped",
}

var spanish = Messages{
	LineHeader:   "Línea %d: %s",
	LineSkipped:  "Línea %d: [VACÍA] - Omitida",
	TraceHeader:  "Procesando carácter por carácter:",
	EmptyStack:   "[VACÍA] - No hay apertura correspondiente",
	Mismatch:     "Esperaba '%c' pero encontró '%c'",
	FinalEmpty:   "FINAL: Pila vacía | [] - Todos los símbolos están balanceados",
	FinalPending: "FINAL: Pila no vacía | [%s] - Símbolos sin cerrar",
	Result:       "Resultado: %s",
	Balanced:     "BALANCEADA",
	NotBalanced:  "NO BALANCEADA",
	EmptyFile:    "El archivo está vacío.",
	NotFound:     "el archivo '%s' no fue encontrado",
	Summary:      "%d revisadas: %d balanceadas, %d no balanceadas, %d omitidas",
}

var catalogs = map[string]Messages{
	"en": english,
	"es": spanish,
}

// ValidLocales returns the supported locale codes.
func ValidLocales() []string {
	return []string{"en", "es"}
}

// ValidateLocale checks a locale code. Empty selects the default.
func ValidateLocale(locale string) error {
	if locale == "" {
		return nil
	}
	if _, ok := catalogs[locale]; !ok {
		return fmt.Errorf("unsupported locale %q (valid: %s)", locale, strings.Join(ValidLocales(), ", "))
	}
	return nil
}

// MessagesFor returns the catalog for locale, falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalogs[locale]; ok {
		return m
	}
	return english
}

// Verdict returns the localized verdict word.
func (m Messages) Verdict(balanced bool) string {
	if balanced {
		return m.Balanced
	}
	return m.NotBalanced
}
