package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
)

var flAST bool

var rootCmd = &cobra.Command{
	Use:   "calc [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Calc evaluates arithmetic expressions built from numbers, the
binary operators + - * /, unary negation and parentheses, with the usual
precedence and left-associativity. Results are IEEE-754 double precision.

With arguments, each argument is evaluated as one expression. Without
arguments, calc reads one expression per line from stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return repl(cmd)
		}
		for _, arg := range args {
			if err := evalLine(cmd, arg); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flAST, "ast", false, "Print the parse tree before the result")
}

func evalLine(cmd *cobra.Command, line string) error {
	expr, err := parser.Parse(line)
	if err != nil {
		return err
	}
	if flAST {
		fmt.Fprintln(cmd.OutOrStdout(), expr.Dump())
	}
	result, err := evaluator.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
	return nil
}

func repl(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Bad input only ends the current line, not the loop.
		if err := evalLine(cmd, line); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "calc: %s\n", err)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "calc: %s\n", err)
		os.Exit(1)
	}
}
