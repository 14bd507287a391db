package lexer

import (
	"github.com/ashlang/ash/internal/pipeline"
)

// LexerProcessor builds the token stream for the rest of the pipeline. The
// stream is lazy; lex errors surface as ILLEGAL tokens that the parser
// converts into diagnostics, so this stage itself never fails.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = Stream(ctx.Source)
	return ctx
}
