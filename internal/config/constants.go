package config

const SourceFileExt = ".ash"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".ash", ".sh.ash"}

// DefaultMaxEvalDepth bounds evaluator recursion when no config overrides it.
const DefaultMaxEvalDepth = 10000

// Built-in function names
const (
	PrintFuncName = "print"
	LenFuncName   = "len"
	TypeFuncName  = "type"
)
