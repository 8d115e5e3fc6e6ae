// Package lang implements a minimal integer expression language: a lexer, a
// recursive-descent parser, and a tree-walking evaluator.
//
// # Pipeline
//
// Source text is converted to tokens by [Lex], tokens to a [Program] by
// [Parse], and each statement of the program is evaluated in order by
// [Evaluate] against a single [Env]. [Run] performs all three steps, and
// [ParseString] and [ParseReader] cache parsed programs by source content.
//
// # Grammar
//
// One expression per line. From lowest to highest precedence:
//
//	program    → (expr NEWLINE)*
//	expr       → assignment
//	assignment → IDENTIFIER '=' expr | term
//	term       → factor (('+' | '-') factor)*
//	factor     → primary (('*' | '/') primary)*
//	primary    → NUMBER | IDENTIFIER '(' expr ')' | IDENTIFIER | '(' expr ')'
//
// Binary operators associate left. Assignment associates right and yields
// the assigned value, so "a = b = 2" binds both names to 2.
//
// A number literal must be followed by a space, ')', a newline, or the end of
// input. "2*3" is therefore a lexical error and "2 * 3" is not.
//
// # Example
//
//	a = b = 2 * 3
//	c = print(a + 3)
//	print(c - b - 2)
//
// prints 9 and 1, leaving a = 6, b = 6, and c = 9.
//
// # Arithmetic
//
// Values are signed 64-bit integers. Division truncates toward zero and
// division by zero is an error. Overflow wraps around unless
// [WithCheckedArithmetic] is given, in which case it fails with
// [ErrOverflow].
package lang
