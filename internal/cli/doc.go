// Package cli is the process surface of the interpreter: it runs one
// interpretation over the raw arguments, renders usage text, and translates
// the error taxonomy into process exit codes.
package cli
