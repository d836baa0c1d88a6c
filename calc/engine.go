// Package calc implements the calculator's expression engine: a
// mutable arithmetic string edited one symbol at a time and evaluated
// on demand.
package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	zeroDisplay = "0"
	errDisplay  = "Error"

	// Operator glyphs as they appear on the buttons and in the
	// expression. Evaluate substitutes the ASCII forms.
	operators = "+-×÷"
)

// Engine holds the expression being edited and the string shown to the
// user. A trailing '=' marks a just-evaluated expression; the next
// digit then starts a fresh entry.
type Engine struct {
	expr    string
	display string
}

func NewEngine() *Engine {
	return &Engine{display: zeroDisplay}
}

// Expression returns the retained expression, including a trailing '='
// after a successful evaluation.
func (e *Engine) Expression() string { return e.expr }

// Display returns the string to show: the expression while editing, a
// formatted result or "Error" after evaluation, or "0" when empty.
func (e *Engine) Display() string { return e.display }

// AppendDigit appends d to the expression, or starts a fresh one when
// the display shows the zero placeholder or the expression was just
// evaluated. Non-digit input is ignored.
func (e *Engine) AppendDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if e.display == zeroDisplay || strings.HasSuffix(e.expr, "=") {
		e.expr = string(d)
	} else {
		e.expr += string(d)
	}
	e.display = e.expr
}

// AppendOperator appends one of + − × ÷. The press is ignored when the
// expression is empty, already ends in an operator, or ends in the '='
// marker, so operators never double up and '=' never lands mid-string.
func (e *Engine) AppendOperator(op rune) {
	if !strings.ContainsRune(operators, op) {
		return
	}
	if e.expr == "" {
		return
	}
	last, _ := utf8.DecodeLastRuneInString(e.expr)
	if strings.ContainsRune(operators+"=", last) {
		return
	}
	e.expr += string(op)
	e.display = e.expr
}

// Clear resets the expression and restores the zero placeholder.
func (e *Engine) Clear() {
	e.expr = ""
	e.display = zeroDisplay
}

// Evaluate computes the current expression. On success the display
// shows the result and the expression gains the trailing '=' marker.
// Any failure collapses to the "Error" display with the expression
// reset, so nothing partial is retained.
func (e *Engine) Evaluate() {
	ascii := strings.NewReplacer("×", "*", "÷", "/").Replace(e.expr)
	v, err := Eval(ascii)
	if err != nil {
		e.expr = ""
		e.display = errDisplay
		return
	}
	e.display = strconv.FormatFloat(v, 'g', -1, 64)
	e.expr += "="
}
