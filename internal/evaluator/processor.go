package evaluator

import (
	"io"
	"path/filepath"

	"github.com/ashlang/ash/internal/config"
	"github.com/ashlang/ash/internal/diagnostics"
	"github.com/ashlang/ash/internal/pipeline"
	"github.com/ashlang/ash/internal/token"
)

// EvaluatorProcessor runs the parsed program. It is skipped when earlier
// stages reported diagnostics.
type EvaluatorProcessor struct {
	Out    io.Writer
	Config *config.Config
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	eval := New()
	if ep.Out != nil {
		eval.Out = ep.Out
	}
	if ep.Config != nil {
		eval.MaxDepth = ep.Config.MaxDepth
		eval.Trace = ep.Config.Trace
	}
	if ctx.FilePath != "" {
		eval.CurrentFile = filepath.Base(ctx.FilePath)
	} else {
		eval.CurrentFile = "<stdin>"
	}

	env := NewEnvironment()
	RegisterBuiltins(env)

	result := eval.Eval(ctx.AstRoot, env)
	if err, ok := result.(*Error); ok {
		// Unfinished children must not outlive the script.
		eval.Engine.KillAll()
		diag := diagnostics.NewError(
			diagnostics.ErrE001,
			token.Token{Line: err.Line, Column: err.Column},
			"%s", err.Message,
		)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
	}

	return ctx
}
