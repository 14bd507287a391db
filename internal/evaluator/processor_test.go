package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ashlang/ash/internal/lexer"
	"github.com/ashlang/ash/internal/parser"
	"github.com/ashlang/ash/internal/pipeline"
)

func TestRuntimeDiagnosticCarriesFile(t *testing.T) {
	var out bytes.Buffer
	pl := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&EvaluatorProcessor{Out: &out},
	)
	ctx := pl.Run(&pipeline.PipelineContext{FilePath: "boom.ash", Source: "missing"})

	if len(ctx.Errors) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", ctx.Errors)
	}
	d := ctx.Errors[0]
	if d.File != "boom.ash" {
		t.Errorf("runtime diagnostic must carry the script path, got %q", d.File)
	}
	if !strings.HasPrefix(d.Error(), "boom.ash:1:1:") {
		t.Errorf("unexpected rendering: %q", d.Error())
	}
}

func TestEvaluatorSkippedAfterParseErrors(t *testing.T) {
	var out bytes.Buffer
	pl := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&EvaluatorProcessor{Out: &out},
	)
	ctx := pl.Run(&pipeline.PipelineContext{FilePath: "boom.ash", Source: "1 + 2 := 3\nprint(1)"})

	if !ctx.HasErrors() {
		t.Fatal("expected a parse diagnostic")
	}
	if out.Len() != 0 {
		t.Errorf("evaluation must not run after parse errors, printed %q", out.String())
	}
}
