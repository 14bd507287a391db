package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ashlang/ash/internal/config"
	"github.com/ashlang/ash/internal/evaluator"
	"github.com/ashlang/ash/internal/lexer"
	"github.com/ashlang/ash/internal/parser"
	"github.com/ashlang/ash/internal/pipeline"
	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func main() {
	trace := flag.Bool("trace", false, "print each statement before it runs")
	configPath := flag.String("config", "", "path to an ash.yaml config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] script.ash\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	scriptPath := flag.Arg(0)
	if !isSourceFile(scriptPath) {
		fmt.Fprintf(os.Stderr, "error: %s is not an ash script\n", scriptPath)
		os.Exit(2)
	}

	cfg, err := config.LoadForScript(scriptPath, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if *trace {
		cfg.Trace = true
	}
	configureLogging(cfg.LogLevel)

	source, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx := &pipeline.PipelineContext{
		FilePath: scriptPath,
		Source:   string(source),
	}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{Out: os.Stdout, Config: cfg},
	)
	ctx = p.Run(ctx)

	if ctx.HasErrors() {
		reportDiagnostics(ctx)
		os.Exit(1)
	}
}

func configureLogging(level string) {
	verbosity := 0
	switch level {
	case "warning":
		verbosity = 1
	case "info":
		verbosity = 2
	case "debug":
		verbosity = 3
	}
	commonlog.Configure(verbosity, nil)
}

func reportDiagnostics(ctx *pipeline.PipelineContext) {
	color := isatty.IsTerminal(os.Stderr.Fd())
	for _, err := range ctx.Errors {
		if color {
			fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}
