package pipeline

import (
	"github.com/ashlang/ash/internal/ast"
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/token"
)

// PipelineContext carries the intermediate artifacts of a compilation run
// between processors.
type PipelineContext struct {
	FilePath    string
	Source      string
	TokenStream *token.Stream
	AstRoot     *ast.Program
	Errors      []*diagnostics.Diagnostic
}

// Processor is a single stage of the compilation pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// Pipeline runs a fixed sequence of processors over a shared context.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run feeds the context through every processor. Later stages still run
// after a diagnostic; each processor decides for itself whether earlier
// errors make its work moot, so one invocation reports everything it can.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
