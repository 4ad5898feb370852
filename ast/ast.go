package ast

// Node is any parsed program fragment. Statements and expressions share one
// tree; every node exclusively owns its children.
type Node interface {
	is_Node()
}

type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Equal
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual
	And
	Or
	Not
)

func (o Operator) String() string {
	return [...]string{
		Add:          "cuddle",
		Subtract:     "breakup",
		Multiply:     "kiss",
		Divide:       "split",
		Equal:        "soulmate",
		NotEqual:     "heartbreak",
		Less:         "envies",
		Greater:      "admires",
		LessEqual:    "yearns",
		GreaterEqual: "adores",
		And:          "and",
		Or:           "or",
		Not:          "not",
	}[o]
}

// DeclaredType is a type annotation as written in source.
type DeclaredType int

const (
	DeclaredNumber DeclaredType = iota
	DeclaredText
	DeclaredFeeling
)

func (t DeclaredType) String() string {
	switch t {
	case DeclaredNumber:
		return "number"
	case DeclaredText:
		return "text"
	}
	return "feeling"
}

type Literal interface {
	is_Literal()
}

type NumberLiteral int64

func (v NumberLiteral) is_Literal() {}

type TextLiteral string

func (v TextLiteral) is_Literal() {}

type BooleanLiteral bool

func (v BooleanLiteral) is_Literal() {}

type NullLiteral struct{}

func (v NullLiteral) is_Literal() {}

type Program struct {
	Statements []Node
}

func (v Program) is_Node() {}

type VariableDecl struct {
	Name string
	// IsConstant is recorded for declarations made with forever; it is not
	// enforced when evaluating.
	IsConstant  bool
	Declared    *DeclaredType
	Initializer Node
}

func (v VariableDecl) is_Node() {}

type Param struct {
	Name string
	Kind DeclaredType
}

type FunctionDecl struct {
	Name    string
	Params  []Param
	Returns *DeclaredType
	Body    []Node
}

func (v FunctionDecl) is_Node() {}

type If struct {
	Condition Node
	Then      []Node
	// Else is nil when there is no butterflies branch.
	Else []Node
}

func (v If) is_Node() {}

type While struct {
	Condition Node
	Body      []Node
}

func (v While) is_Node() {}

type Block []Node

func (v Block) is_Node() {}

type ExpressionStmt struct {
	Expr Node
}

func (v ExpressionStmt) is_Node() {}

type PrintStmt struct {
	Expr Node
}

func (v PrintStmt) is_Node() {}

type ReturnStmt struct {
	// Value is nil for a bare promise.
	Value Node
}

func (v ReturnStmt) is_Node() {}

type Binary struct {
	Left     Node
	Operator Operator
	Right    Node
}

func (v Binary) is_Node() {}

type Unary struct {
	Operator Operator
	Operand  Node
}

func (v Unary) is_Node() {}

type Assign struct {
	Name  string
	Value Node
}

func (v Assign) is_Node() {}

type Variable struct {
	Name string
}

func (v Variable) is_Node() {}

type Lit struct {
	Literal
}

func (v Lit) is_Node() {}

type Grouping struct {
	Inner Node
}

func (v Grouping) is_Node() {}

type Call struct {
	Callee    string
	Arguments []Node
}

func (v Call) is_Node() {}
