package ast

import (
	"github.com/ashlang/ash/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary
// token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// TargetKind distinguishes the shape of a declaration or assignment target.
// The parser resolves the shape so the evaluator never has to re-discover it.
type TargetKind int

const (
	TargetName TargetKind = iota
	TargetDestructure
	TargetPath
)

// Target is the left side of a declaration or assignment.
// Exactly one of Name, Names, Path is set, according to Kind.
type Target struct {
	Token token.Token
	Kind  TargetKind
	Name  *Identifier   // x := ...
	Names []*Identifier // [a, b] := ...
	Path  Expression    // xs[0] = ... / person.name.first := ... (Index/Property chain)
}

func (t *Target) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// DeclareStatement represents a new binding or map key: target := value.
type DeclareStatement struct {
	Token  token.Token // the ':=' token
	Target *Target
	Value  Expression
}

func (ds *DeclareStatement) statementNode()       {}
func (ds *DeclareStatement) TokenLiteral() string { return ds.Token.Lexeme }
func (ds *DeclareStatement) GetToken() token.Token {
	if ds == nil {
		return token.Token{}
	}
	return ds.Token
}

// AssignStatement represents reassignment of an existing binding or path:
// target = value.
type AssignStatement struct {
	Token  token.Token // the '=' token
	Target *Target
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// OpAssignStatement represents compound assignment: target op= value.
type OpAssignStatement struct {
	Token    token.Token // the '+=' (etc.) token
	Target   *Target
	Operator string // "+", "-", "*", "/", "%"
	Value    Expression
}

func (oas *OpAssignStatement) statementNode()       {}
func (oas *OpAssignStatement) TokenLiteral() string { return oas.Token.Lexeme }
func (oas *OpAssignStatement) GetToken() token.Token {
	if oas == nil {
		return token.Token{}
	}
	return oas.Token
}

// BlockStatement is a braced sequence of statements with its own scope.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// Branch is one `if`/`else if` arm.
type Branch struct {
	Cond Expression
	Body *BlockStatement
}

// IfStatement represents if/else if/else.
type IfStatement struct {
	Token    token.Token // the 'if' token
	Branches []*Branch
	Else     *BlockStatement // optional
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// WhileStatement represents while cond { ... }.
type WhileStatement struct {
	Token token.Token // the 'while' token
	Cond  Expression
	Body  *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// ForStatement represents for x in seq { ... } and for [k, v] in seq { ... }.
type ForStatement struct {
	Token token.Token   // the 'for' token
	Name  *Identifier   // value binding, nil when destructuring
	Names []*Identifier // [key, value] bindings, nil otherwise
	Iter  Expression
	Body  *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// BreakStatement breaks the innermost loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// FuncStatement declares a named function: fn name(params) { body }.
// The binding follows the same innermost-scope rules as ':='.
type FuncStatement struct {
	Token  token.Token // the 'fn' token
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (fs *FuncStatement) statementNode()       {}
func (fs *FuncStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *FuncStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// ReturnStatement unwinds the enclosing function: return expr, or bare
// return for <absent>.
type ReturnStatement struct {
	Token token.Token // the 'return' token
	Value Expression  // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// ContinueStatement continues the innermost loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}

// Identifier represents an identifier, e.g. a variable name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// StringLiteral represents a string, e.g. "hello".
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ListLiteral represents a list, e.g. [1, 2, 3].
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token {
	if ll == nil {
		return token.Token{}
	}
	return ll.Token
}

// MapPair is one key/value entry of a map literal. Keys are always strings;
// the parser resolves quoted and bare-identifier forms to the same thing.
type MapPair struct {
	Token token.Token // the key token
	Key   string
	Value Expression
}

// MapLiteral represents a map literal, e.g. {"a": 1, "b": 2}.
type MapLiteral struct {
	Token token.Token // the '{' token
	Pairs []*MapPair
}

func (ml *MapLiteral) expressionNode()      {}
func (ml *MapLiteral) TokenLiteral() string { return ml.Token.Lexeme }
func (ml *MapLiteral) GetToken() token.Token {
	if ml == nil {
		return token.Token{}
	}
	return ml.Token
}

// PrefixExpression represents !expr and -expr.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// InfixExpression represents a binary operation.
type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// IndexExpression represents target[key].
type IndexExpression struct {
	Token token.Token // the '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *IndexExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// PropertyExpression represents target.name, sugar for target["name"].
type PropertyExpression struct {
	Token token.Token // the '.' token
	Left  Expression
	Name  string
}

func (pe *PropertyExpression) expressionNode()      {}
func (pe *PropertyExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PropertyExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// FunctionLiteral represents an anonymous function: fn(params) { body }.
type FunctionLiteral struct {
	Token  token.Token // the 'fn' token
	Params []*Identifier
	Body   *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// FallibleExpression represents ? expr.
type FallibleExpression struct {
	Token token.Token // the '?' token
	Inner Expression
}

func (fe *FallibleExpression) expressionNode()      {}
func (fe *FallibleExpression) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *FallibleExpression) GetToken() token.Token {
	if fe == nil {
		return token.Token{}
	}
	return fe.Token
}

// CallExpression represents callee(args...).
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// ChainExpression represents x -> f: evaluate x, then call f with x as the
// leading argument.
type ChainExpression struct {
	Token token.Token // the '->' token
	Left  Expression
	Right Expression
}

func (ce *ChainExpression) expressionNode()      {}
func (ce *ChainExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *ChainExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// SpawnExpression represents $prog(arg, ...). Program is an Identifier or a
// StringLiteral; args are evaluated to strings passed literally (no shell).
type SpawnExpression struct {
	Token   token.Token // the '$' token
	Program Expression
	Args    []Expression
}

func (se *SpawnExpression) expressionNode()      {}
func (se *SpawnExpression) TokenLiteral() string { return se.Token.Lexeme }
func (se *SpawnExpression) GetToken() token.Token {
	if se == nil {
		return token.Token{}
	}
	return se.Token
}

// PipelineExpression represents $a() | $b() | $c(): OS-level byte-stream
// piping between concurrently started processes.
type PipelineExpression struct {
	Token  token.Token // the first '|' token
	Stages []*SpawnExpression
}

func (pe *PipelineExpression) expressionNode()      {}
func (pe *PipelineExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PipelineExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}
