package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func typeToString(t *DeclaredType) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func list(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, Sexp(n))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Sexp renders a node as a compact s-expression, making grouping and
// precedence visible.
func Sexp(n Node) string {
	switch v := n.(type) {
	case nil:
		return "nil"
	case Program:
		return "(program " + list(v.Statements) + ")"
	case VariableDecl:
		kw := "heart"
		if v.IsConstant {
			kw = "forever"
		}
		if v.Declared != nil {
			return fmt.Sprintf("(%s %s:%s %s)", kw, v.Name, typeToString(v.Declared), Sexp(v.Initializer))
		}
		return fmt.Sprintf("(%s %s %s)", kw, v.Name, Sexp(v.Initializer))
	case FunctionDecl:
		var params []string
		for _, p := range v.Params {
			params = append(params, p.Name+":"+p.Kind.String())
		}
		ret := ""
		if v.Returns != nil {
			ret = " -> " + typeToString(v.Returns)
		}
		return fmt.Sprintf("(devotion %s(%s)%s %s)", v.Name, strings.Join(params, ", "), ret, list(v.Body))
	case If:
		if v.Else != nil {
			return fmt.Sprintf("(crush %s %s %s)", Sexp(v.Condition), list(v.Then), list(v.Else))
		}
		return fmt.Sprintf("(crush %s %s)", Sexp(v.Condition), list(v.Then))
	case While:
		return fmt.Sprintf("(dating %s %s)", Sexp(v.Condition), list(v.Body))
	case Block:
		return "(block " + list(v) + ")"
	case ExpressionStmt:
		return Sexp(v.Expr) + ";"
	case PrintStmt:
		return "(whisper " + Sexp(v.Expr) + ")"
	case ReturnStmt:
		if v.Value == nil {
			return "(promise)"
		}
		return "(promise " + Sexp(v.Value) + ")"
	case Binary:
		return fmt.Sprintf("(%s %s %s)", v.Operator, Sexp(v.Left), Sexp(v.Right))
	case Unary:
		return fmt.Sprintf("(%s %s)", v.Operator, Sexp(v.Operand))
	case Assign:
		return fmt.Sprintf("(match %s %s)", v.Name, Sexp(v.Value))
	case Variable:
		return v.Name
	case Lit:
		switch l := v.Literal.(type) {
		case NumberLiteral:
			return strconv.FormatInt(int64(l), 10)
		case TextLiteral:
			return strconv.Quote(string(l))
		case BooleanLiteral:
			if l {
				return "yes"
			}
			return "no"
		}
		return "lonely"
	case Grouping:
		return "(group " + Sexp(v.Inner) + ")"
	case Call:
		return fmt.Sprintf("(call %s %s)", v.Callee, list(v.Arguments))
	}

	panic(fmt.Sprintf("unhandled node %T", n))
}
