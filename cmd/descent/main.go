package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/zephyrtronium/descent"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		depth  int
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.IntVar(&depth, "depth", 0, "maximum nesting depth, 0 for unlimited")
	flag.Parse()
	if depth < 0 {
		log.Fatalf("depth (%d) must not be negative", depth)
	}
	opts := []descent.Option{descent.MaxDepth(depth)}

	if flag.NArg() > 0 {
		if inname != "" {
			log.Fatal("cannot use -in together with arguments")
		}
		for _, arg := range flag.Args() {
			r, err := descent.Eval(arg, opts...)
			if err != nil {
				fmt.Fprintln(os.Stderr, descent.Annotate(arg, err))
				os.Exit(1)
			}
			fmt.Println(r)
		}
		return
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		f = in
	} else if isatty.IsTerminal(os.Stdin.Fd()) {
		repl(opts)
		return
	}
	if err := evalLines(f, opts); err != nil {
		os.Exit(1)
	}
}

// evalLines evaluates each nonblank line of f as one expression. It reports
// whether any line failed, after printing a diagnostic for each failure.
func evalLines(f *os.File, opts []descent.Option) error {
	scanner := bufio.NewScanner(f)
	var bad error
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := descent.Eval(line, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, descent.Annotate(line, err))
			bad = err
			continue
		}
		fmt.Println(r)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	return bad
}

func repl(opts []descent.Option) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := descent.Eval(line, opts...)
		if err != nil {
			fmt.Println(descent.Annotate(line, err))
			continue
		}
		fmt.Println(r)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
