package diagnostics

import (
	"fmt"

	"github.com/ashlang/ash/internal/token"
)

// Code identifies a class of diagnostic. L-codes come from the lexer,
// P-codes from the parser, E-codes from the evaluator.
type Code string

const (
	ErrL001 Code = "L001" // invalid character
	ErrL002 Code = "L002" // unterminated string
	ErrL003 Code = "L003" // invalid numeric literal
	ErrL004 Code = "L004" // invalid escape sequence

	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected token
	ErrP003 Code = "P003" // unbalanced delimiter
	ErrP004 Code = "P004" // invalid declaration or assignment target
	ErrP005 Code = "P005" // invalid pipeline stage
	ErrP006 Code = "P006" // expression too complex

	ErrE001 Code = "E001" // runtime error
)

type Diagnostic struct {
	Code    Code
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code Code, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", d.File, d.Line, d.Column, d.Code, d.Message)
	}
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("[%s] %s", d.Code, d.Message)
}
