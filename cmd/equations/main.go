// Command equations evaluates infix expressions over arbitrary-precision
// decimals, one result per expression.
//
// Expressions come from the command line, from a batch file with one
// expression per line, or interactively from stdin. A variable table can be
// loaded from a CSV or YAML file; its values are substituted into each
// expression before evaluation, longest name first. In interactive use, a
// name that resolves to nothing prompts for a value.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/apd/v3"

	"github.com/zephyrtronium/equations"
)

var cli struct {
	Precision uint32   `short:"p" default:"7" help:"Significant digits for calculations."`
	Rounding  string   `default:"half-even" enum:"half-even,half-up,half-down,up,down,floor,ceiling,05up" help:"Rounding mode for calculations."`
	Vars      string   `short:"v" type:"existingfile" help:"Variable file: CSV with name,value per line, or a YAML mapping."`
	Batch     string   `short:"f" type:"existingfile" help:"File with one expression per line."`
	Exprs     []string `arg:"" optional:"" name:"expression" help:"Expressions to evaluate. With none and no batch file, read expressions from stdin."`
}

var roundings = map[string]apd.Rounder{
	"half-even": apd.RoundHalfEven,
	"half-up":   apd.RoundHalfUp,
	"half-down": apd.RoundHalfDown,
	"up":        apd.RoundUp,
	"down":      apd.RoundDown,
	"floor":     apd.RoundFloor,
	"ceiling":   apd.RoundCeiling,
	"05up":      apd.Round05Up,
}

func main() {
	log.SetFlags(0)
	kong.Parse(&cli,
		kong.Name("equations"),
		kong.Description("Evaluate infix expressions over arbitrary-precision decimals."),
	)
	vars := map[string]string{}
	if cli.Vars != "" {
		m, err := loadVars(cli.Vars)
		if err != nil {
			log.Fatal(err)
		}
		vars = m
	}
	switch {
	case cli.Batch != "":
		f, err := os.Open(cli.Batch)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := batch(f, vars); err != nil {
			log.Fatal(err)
		}
	case len(cli.Exprs) > 0:
		ask := asker(bufio.NewScanner(os.Stdin))
		for _, src := range cli.Exprs {
			r, err := eval(src, vars, ask)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(r.Text('f'))
		}
	default:
		interactive(vars)
	}
}

// eval substitutes the variable table into src and evaluates it. When ask is
// not nil, names that resolve to nothing are bound interactively and the
// evaluation retried.
func eval(src string, vars map[string]string, ask func(name string) (string, bool)) (*apd.Decimal, error) {
	e := equations.New(substitute(src, vars),
		equations.Prec(cli.Precision),
		equations.Rounding(roundings[cli.Rounding]),
	)
	for {
		r, err := e.Eval()
		var nerr *equations.NameError
		if err == nil || ask == nil || !errors.As(err, &nerr) {
			return r, err
		}
		val, ok := ask(nerr.Name)
		if !ok {
			return nil, err
		}
		if err := e.SetString(nerr.Name, val); err != nil {
			return nil, err
		}
	}
}

// batch evaluates one expression per line, reporting each result or error
// with its line number. Errors do not stop the batch.
func batch(r io.Reader, vars map[string]string) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := eval(line, vars, nil)
		if err != nil {
			fmt.Printf("line %d: %s: %v\n", n, line, err)
			continue
		}
		fmt.Printf("line %d: %s = %s\n", n, line, v.Text('f'))
	}
	return sc.Err()
}

// interactive reads expressions from stdin until EOF or "exit".
func interactive(vars map[string]string) {
	sc := bufio.NewScanner(os.Stdin)
	ask := asker(sc)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			fmt.Print("> ")
			continue
		case "exit", "quit":
			return
		}
		v, err := eval(line, vars, ask)
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(v.Text('f'))
		}
		fmt.Print("> ")
	}
}

// asker prompts on stdout for the value of a name and reads the reply from
// sc.
func asker(sc *bufio.Scanner) func(name string) (string, bool) {
	return func(name string) (string, bool) {
		fmt.Printf("Enter value for %s: ", name)
		if !sc.Scan() {
			return "", false
		}
		v := strings.TrimSpace(sc.Text())
		if v == "" {
			return "", false
		}
		return v, true
	}
}
