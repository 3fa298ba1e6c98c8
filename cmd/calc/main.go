package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"calc/internal/eval"
	"calc/internal/parse"
)

var cli struct {
	Graph  bool     `short:"g" help:"Print the expression tree as a graphviz graph instead of its value."`
	NoExec bool     `short:"n" name:"noexec" help:"Parse only."`
	Print  bool     `short:"p" help:"Print the parsed tree to stderr."`
	Trace  bool     `short:"x" help:"Trace each reduction to stderr."`
	Expr   []string `arg:"" optional:"" help:"Expressions to evaluate, e.g. '2*(3+4)'. Read from stdin when absent."`
}

type options struct {
	graph  bool
	noexec bool
	print  bool
	trace  bool
}

func main() {
	kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Evaluate single-digit arithmetic expressions with + - * / and parentheses."),
		kong.UsageOnError(),
	)
	opts := options{graph: cli.Graph, noexec: cli.NoExec, print: cli.Print, trace: cli.Trace}

	if len(cli.Expr) > 0 {
		for _, input := range cli.Expr {
			if err := run(opts, input, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		return
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(opts)
		return
	}
	if err := runScript(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses input and writes either its value or its graph to stdout.
func run(o options, input string, stdout, stderr io.Writer) error {
	ast, err := parse.ParseString(input)
	if err != nil {
		return err
	}
	if o.print {
		fmt.Fprint(stderr, parse.Dump(ast))
	}
	if o.noexec {
		return nil
	}
	if o.graph {
		return eval.WriteGraph(stdout, ast)
	}
	ev := &eval.Evaluator{Trace: o.trace, TraceWriter: stderr}
	v, err := ev.Eval(ast)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, v)
	return err
}

// runScript evaluates one expression per non-blank line and stops at
// the first error.
func runScript(o options, rd io.Reader, stdout, stderr io.Writer) error {
	sc := bufio.NewScanner(rd)
	lineno := 0
	for sc.Scan() {
		lineno++
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		if err := run(o, input, stdout, stderr); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return sc.Err()
}

func runInteractive(o options) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if err := run(o, input, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			defer f.Close()
			_, _ = line.WriteHistory(f)
		}
	}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".calc_history")
}
