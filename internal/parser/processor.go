package parser

import (
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/pipeline"
	"github.com/ashlang/ash/internal/token"
)

// ParserProcessor turns the token stream into an AST, collecting syntax
// diagnostics into the pipeline context.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001,
			token.Token{Line: 1, Column: 1},
			"no token stream to parse",
		))
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	program := p.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
