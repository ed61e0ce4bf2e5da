package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/peterh/liner"
	"github.com/sergev/lambda/lang"
	"github.com/sergev/lambda/runtime"
)

var errQuit = errors.New("quit")

const usage = `commands:
  list                 show the program catalog
  show NAME            print a program and its expression tree
  eval NAME            evaluate by substitution
  env NAME             evaluate with an environment (failures are fatal)
  envopt NAME          evaluate with an environment and optional result
  count N              increment a counter N times in the state effect
  fib N                N-th Fibonacci number via the state effect
  help                 this text
  quit                 leave the REPL
`

func main() {
	defer reportFatal()

	args := os.Args[1:]
	if len(args) > 0 {
		if err := runCommand(os.Stdout, args); err != nil && !errors.Is(err, errQuit) {
			fmt.Fprintf(os.Stderr, "lambda: %v\n", err)
			os.Exit(1)
		}
		return
	}
	runREPL()
}

// reportFatal turns an evaluator FatalError into a process exit.
func reportFatal() {
	r := recover()
	if r == nil {
		return
	}
	if ferr, ok := lang.AsFatal(r); ok {
		fmt.Fprintf(os.Stderr, "lambda: fatal: %v\n", ferr)
		os.Exit(2)
	}
	panic(r)
}

func runREPL() {
	if !isInteractive() {
		runBufferedREPL(bufio.NewReader(os.Stdin), os.Stdout)
		return
	}
	runInteractiveREPL()
}

func runCommand(out io.Writer, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	cmd, rest := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprint(out, usage)
		return nil
	case "quit", "exit":
		return errQuit
	case "list":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, p := range runtime.Programs() {
			fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Source)
		}
		return w.Flush()
	case "show":
		p, err := programArg(cmd, rest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p.Source)
		fmt.Fprintln(out, lang.Format(p.Exp))
		return nil
	case "count", "fib":
		if len(rest) != 1 {
			return fmt.Errorf("%s expects a count", cmd)
		}
		if cmd == "fib" {
			n, err := runtime.ParseFibIndex(rest[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, runtime.Fib(n))
			return nil
		}
		n, err := runtime.ParseCount(rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, runtime.Count(n))
		return nil
	}

	mode, err := runtime.ParseMode(cmd)
	if err != nil {
		return fmt.Errorf("%w (try help)", err)
	}
	p, err := programArg(cmd, rest)
	if err != nil {
		return err
	}
	res, err := runtime.Evaluate(mode, p.Exp)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res)
	return nil
}

func programArg(cmd string, rest []string) (runtime.Program, error) {
	if len(rest) != 1 {
		return runtime.Program{}, fmt.Errorf("%s expects a program name", cmd)
	}
	return runtime.Lookup(rest[0])
}

// execLine runs one input line and reports whether the REPL should stop.
func execLine(out io.Writer, line string) bool {
	err := runCommand(out, strings.Fields(line))
	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return false
}

func runBufferedREPL(reader *bufio.Reader, out io.Writer) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
		if execLine(out, line) || errors.Is(err, io.EOF) {
			return
		}
	}
}

func runInteractiveREPL() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completeLine)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := state.Prompt("lambda> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if execLine(os.Stdout, input) {
			return
		}
	}
}

var commandWords = []string{"count", "env", "envopt", "eval", "exit", "fib", "help", "list", "quit", "show"}

// completeLine completes command words, and program names after a
// command that takes one.
func completeLine(line string) []string {
	fields := strings.Fields(line)
	trailingSpace := strings.HasSuffix(line, " ")
	var out []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !trailingSpace):
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		for _, w := range commandWords {
			if strings.HasPrefix(w, prefix) {
				out = append(out, w)
			}
		}
	case takesProgram(fields[0]) && (len(fields) == 1 || (len(fields) == 2 && !trailingSpace)):
		prefix := ""
		if len(fields) == 2 {
			prefix = fields[1]
		}
		for _, p := range runtime.Programs() {
			if strings.HasPrefix(p.Name, prefix) {
				out = append(out, fields[0]+" "+p.Name)
			}
		}
	}
	return out
}

func takesProgram(cmd string) bool {
	switch cmd {
	case "show", "eval", "env", "envopt":
		return true
	}
	return false
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".lambda_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
