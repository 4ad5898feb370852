package interpreter

import (
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/values"
)

func checkType(v values.Value, expected values.Type) error {
	if v.Type() != expected {
		return errors.TypeError{
			Expected: expected.String(),
			Found:    v.Type().String(),
			Value:    v.Debug(),
		}
	}
	return nil
}

func checkOperands(left, right values.Value, expected values.Type) error {
	if err := checkType(left, expected); err != nil {
		return err
	}
	return checkType(right, expected)
}

func (in *Interpreter) logical(n ast.Binary) (values.Value, error) {
	left, err := in.expr(n.Left)
	if err != nil {
		return nil, err
	}
	if err := checkType(left, values.BooleanType); err != nil {
		return nil, err
	}
	if n.Operator == ast.And && !bool(left.(values.Boolean)) {
		return left, nil
	}
	if n.Operator == ast.Or && bool(left.(values.Boolean)) {
		return left, nil
	}

	right, err := in.expr(n.Right)
	if err != nil {
		return nil, err
	}
	if err := checkType(right, values.BooleanType); err != nil {
		return nil, err
	}
	return right, nil
}

func (in *Interpreter) binary(n ast.Binary) (values.Value, error) {
	if n.Operator == ast.And || n.Operator == ast.Or {
		return in.logical(n)
	}

	left, err := in.expr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.expr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case ast.Equal, ast.NotEqual:
		eq, ok := values.Equal(left, right)
		if !ok {
			return nil, errors.NewRuntimeError("invalid operation")
		}
		if n.Operator == ast.NotEqual {
			eq = !eq
		}
		return values.Boolean(eq), nil
	case ast.Add:
		if l, ok := left.(values.Text); ok {
			if r, ok := right.(values.Text); ok {
				return l + r, nil
			}
		}
	}

	if err := checkOperands(left, right, values.NumberType); err != nil {
		return nil, err
	}
	a, b := left.(values.Number), right.(values.Number)

	switch n.Operator {
	case ast.Add:
		return a + b, nil
	case ast.Subtract:
		return a - b, nil
	case ast.Multiply:
		return a * b, nil
	case ast.Divide:
		if b == 0 {
			return nil, errors.NewRuntimeError("cannot divide by zero")
		}
		return a / b, nil
	case ast.Less:
		return values.Boolean(a < b), nil
	case ast.Greater:
		return values.Boolean(a > b), nil
	case ast.LessEqual:
		return values.Boolean(a <= b), nil
	case ast.GreaterEqual:
		return values.Boolean(a >= b), nil
	}

	return nil, errors.NewRuntimeError("invalid operation")
}

func (in *Interpreter) unary(n ast.Unary) (values.Value, error) {
	operand, err := in.expr(n.Operand)
	if err != nil {
		return nil, err
	}
	if n.Operator != ast.Not {
		return nil, errors.NewRuntimeError("invalid operation")
	}
	if err := checkType(operand, values.BooleanType); err != nil {
		return nil, err
	}
	return !operand.(values.Boolean), nil
}
