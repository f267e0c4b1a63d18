package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dripjson/dripjson"
	"github.com/dripjson/dripjson/internal/escape"
	"github.com/dripjson/dripjson/token"
	"github.com/dripjson/dripjson/value"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go4.org/mem"
)

func main() {
	var colorMode string
	flag.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: jget [options] [step ...] < input.json

Extracts a value from a JSON stream, reading only as much input as needed.
Each step is an object key or an array index; steps are applied in order.
Steps must follow document order: requesting an entry located before one
already passed fails.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	var useColors bool
	switch colorMode {
	case "always":
		useColors = true
	case "never":
		useColors = false
	case "auto":
		useColors = isatty.IsTerminal(os.Stdout.Fd())
	default:
		fatalError("invalid -color value: %q (use auto, always, or never)", colorMode)
	}

	var stdout io.Writer = os.Stdout
	if useColors {
		stdout = colorable.NewColorableStdout()
	}

	v, err := dripjson.Load(os.Stdin)
	if err != nil {
		fatalError("unable to read input: %s", err)
	}
	for _, step := range flag.Args() {
		if i, convErr := strconv.Atoi(step); convErr == nil {
			if _, isArray := v.(*value.Array); isArray {
				v, err = value.Index(v, i)
				if err != nil {
					fatalError("step %q: %s", step, err)
				}
				continue
			}
		}
		v, err = value.Key(v, step)
		if err != nil {
			fatalError("step %q: %s", step, err)
		}
	}
	p := printer{out: stdout, colors: useColors}
	if err := p.printValue(v); err != nil {
		fatalError("error while reading value: %s", err)
	}
	fmt.Fprintln(stdout)
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

const (
	colorOff     = "\033[0m"
	stringColor  = "\033[32m"
	numberColor  = "\033[36m"
	literalColor = "\033[33m"
	keyColor     = "\033[34;1m"
)

type printer struct {
	out    io.Writer
	colors bool
}

// printValue writes v back out as compact JSON, consuming lazy containers
// as it goes.
func (p *printer) printValue(v value.Value) error {
	switch x := v.(type) {
	case *value.Scalar:
		p.printScalar(x.Scalar(), false)
		return nil
	case *value.Object:
		io.WriteString(p.out, "{")
		first := true
		for x.Advance() {
			if !first {
				io.WriteString(p.out, ",")
			}
			first = false
			p.printKey(x.CurrentKey())
			io.WriteString(p.out, ":")
			if err := p.printValue(x.CurrentValue()); err != nil {
				return err
			}
		}
		if err := x.Err(); err != nil {
			return err
		}
		io.WriteString(p.out, "}")
		return nil
	case *value.Array:
		io.WriteString(p.out, "[")
		first := true
		for x.Advance() {
			if !first {
				io.WriteString(p.out, ",")
			}
			first = false
			if err := p.printValue(x.CurrentValue()); err != nil {
				return err
			}
		}
		if err := x.Err(); err != nil {
			return err
		}
		io.WriteString(p.out, "]")
		return nil
	default:
		return fmt.Errorf("unknown value type %T", v)
	}
}

func (p *printer) printScalar(s *token.Scalar, asKey bool) {
	var color string
	switch {
	case asKey:
		color = keyColor
	case s.Type() == token.String:
		color = stringColor
	case s.Type() == token.Number:
		color = numberColor
	default:
		color = literalColor
	}
	if p.colors {
		io.WriteString(p.out, color)
	}
	p.out.Write(s.Bytes)
	if p.colors {
		io.WriteString(p.out, colorOff)
	}
}

func (p *printer) printKey(key string) {
	quoted := make([]byte, 0, len(key)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, escape.Quote(mem.S(key))...)
	quoted = append(quoted, '"')
	p.printScalar(token.NewScalar(token.String, quoted), true)
}
