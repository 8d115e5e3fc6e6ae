package lang

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
)

// Evaluate evaluates each statement of prog in order against env.
//
// Top-level results are discarded. Evaluation stops at the first error;
// output written and bindings made before it remain.
func Evaluate(
	ctx context.Context,
	prog *Program,
	env *Env,
	opts ...Option,
) error {
	ev := newEvaluator(env, opts...)

	for i, stmt := range prog.All() {
		err := ctx.Err()
		if err != nil {
			return err
		}

		value, err := ev.eval(stmt)
		if err != nil {
			ev.logger.TraceContext(
				ctx,
				"statement failed",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			return err
		}

		ev.logger.TraceContext(
			ctx,
			"statement evaluated",
			slog.Int("index", i),
			slog.String("statement", stmt.String()),
			slog.Int64("value", value),
		)
	}

	return nil
}

// EvaluateExpr evaluates a single expression against env and returns its
// value.
func EvaluateExpr(
	ctx context.Context,
	expr Expr,
	env *Env,
	opts ...Option,
) (int64, error) {
	err := ctx.Err()
	if err != nil {
		return 0, err
	}

	return newEvaluator(env, opts...).eval(expr)
}

// evaluator holds the state for recursive evaluation.
type evaluator struct {
	config

	env *Env
}

func newEvaluator(env *Env, opts ...Option) *evaluator {
	return &evaluator{
		config: makeConfig(opts...),
		env:    env,
	}
}

// eval recursively evaluates an expression to its value.
func (ev *evaluator) eval(e Expr) (int64, error) {
	switch n := e.(type) {
	case *Number:
		return n.Value, nil

	case *Variable:
		value, ok := ev.env.Get(n.Identifier())
		if !ok {
			return 0, ErrUndefinedVariable.WithPosition(n.Pos()).
				With(slog.String("name", n.Identifier()))
		}

		return value, nil

	case *Assignment:
		value, err := ev.eval(n.Value)
		if err != nil {
			return 0, err
		}

		ev.env.Set(n.Target.Identifier(), value)

		return value, nil

	case *BinaryOperation:
		lhs, err := ev.eval(n.Left)
		if err != nil {
			return 0, err
		}

		rhs, err := ev.eval(n.Right)
		if err != nil {
			return 0, err
		}

		return ev.apply(n.Operator, lhs, rhs)

	case *FunctionCall:
		fn, ok := builtins[n.Callee.Identifier()]
		if !ok {
			return 0, ErrUndefinedFunction.WithPosition(n.Pos()).
				With(slog.String("name", n.Callee.Identifier()))
		}

		arg, err := ev.eval(n.Argument)
		if err != nil {
			return 0, err
		}

		return fn(ev, arg)

	default:
		return 0, ErrSyntax.With(slog.String("node", fmt.Sprintf("%T", e)))
	}
}

// apply computes lhs op rhs.
func (ev *evaluator) apply(op Token, lhs, rhs int64) (int64, error) {
	var (
		result   int64
		overflow bool
	)

	switch op.Kind {
	case KindPlus:
		result = lhs + rhs
		overflow = (lhs > 0 && rhs > 0 && result < 0) ||
			(lhs < 0 && rhs < 0 && result >= 0)

	case KindMinus:
		result = lhs - rhs
		overflow = (lhs >= 0 && rhs < 0 && result < 0) ||
			(lhs < 0 && rhs > 0 && result >= 0)

	case KindStar:
		result = lhs * rhs
		overflow = lhs != 0 &&
			(result/lhs != rhs || (lhs == -1 && rhs == math.MinInt64))

	case KindSlash:
		if rhs == 0 {
			return 0, ErrDivisionByZero.WithPosition(op.Pos).
				With(slog.Int64("dividend", lhs))
		}

		// Go defines MinInt64 / -1 as MinInt64.
		result = lhs / rhs
		overflow = lhs == math.MinInt64 && rhs == -1

	default:
		return 0, ErrInvalidOperator.WithPosition(op.Pos).
			With(slog.String("operator", op.String()))
	}

	if overflow && ev.checked {
		return 0, ErrOverflow.WithPosition(op.Pos).
			With(
				slog.Int64("lhs", lhs),
				slog.String("operator", op.Text),
				slog.Int64("rhs", rhs),
			)
	}

	return result, nil
}

// builtin is a function callable from source with one argument.
type builtin func(ev *evaluator, arg int64) (int64, error)

// builtins are the functions resolvable by name in a call expression.
var builtins = map[string]builtin{
	"print": printBuiltin,
}

// Builtins returns the names of the built-in functions in sorted order.
func Builtins() []string { return sortedKeys(builtins) }

// printBuiltin writes arg as a decimal line to the output writer and yields
// arg.
func printBuiltin(ev *evaluator, arg int64) (int64, error) {
	_, err := io.WriteString(ev.output, strconv.FormatInt(arg, 10)+"\n")
	if err != nil {
		return 0, ErrOutput.Wrap(err)
	}

	return arg, nil
}
