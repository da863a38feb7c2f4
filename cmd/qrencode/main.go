// Command qrencode renders a QR Code Model 2 symbol from text given
// on the command line or read from standard input.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/kasanami/qrencode"
)

var g = struct {
	out     string
	level   string
	version int
	mask    int
	typ     string
	scale   int
	quiet   int
}{
	level:   "m",
	version: 0,
	mask:    -1,
	scale:   4,
	quiet:   4,
}

// opt adapts a no-argument callback to getopt's Value interface, for
// boolean "do something and exit" flags such as -h.
type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprintln(w, "Usage:", cl.Program(), cl.UsageLine(), "[string ...]")
	fmt.Fprintln(w, "If no string is given, data is read from standard input.")
	cl.PrintOptions(w)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.FlagLong(&g.out, "output", 'o', `output file, or "-" for standard output`, "file")
	getopt.FlagLong(&g.level, "level", 'l', "error correction level, one of l,m,q,h", "l|m|q|h")
	getopt.FlagLong(&g.version, "version", 'v', "QR version, or 0 for automatic", "ver")
	getopt.FlagLong(&g.mask, "mask", 'k', "mask pattern 0-7, or -1 for automatic", "mask")
	getopt.FlagLong(&g.typ, "type", 't', "output format, png or pbm; default inferred from -o", "type")
	getopt.FlagLong(&g.scale, "scale", 's', "pixels per module (PNG only)", "scale")
	getopt.FlagLong(&g.quiet, "quiet", 'q', "quiet zone width in modules", "modules")
	getopt.Parse()
}

func eclFromFlag(s string) (qrencode.Ecl, error) {
	switch strings.ToLower(s) {
	case "l":
		return qrencode.Low, nil
	case "m":
		return qrencode.Medium, nil
	case "q":
		return qrencode.Quartile, nil
	case "h":
		return qrencode.High, nil
	default:
		return 0, fmt.Errorf("qrencode: invalid error correction level %q", s)
	}
}

func outputType() string {
	if g.typ != "" {
		return g.typ
	}
	if strings.ToLower(path.Ext(g.out)) == ".pbm" {
		return "pbm"
	}
	return "png"
}

func main() {
	log.SetFlags(0)
	parseFlags()

	ecl, err := eclFromFlag(g.level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}

	var text string
	if args := getopt.Args(); len(args) != 0 {
		text = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		text, _ = strings.CutSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	minV, maxV := qrencode.MinVersion, qrencode.MaxVersion
	if g.version != 0 {
		minV, maxV = g.version, g.version
	}
	segs, err := qrencode.MakeSegments(text)
	if err != nil {
		log.Fatalln(err)
	}
	code, err := qrencode.EncodeSegments(segs, ecl, minV, maxV, g.mask, true)
	if err != nil {
		log.Fatalln(err)
	}

	var out io.Writer = os.Stdout
	if g.out != "" && g.out != "-" {
		f, err := os.Create(g.out)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		out = f
	} else if isatty.IsTerminal(os.Stdout.Fd()) {
		log.Fatalln("refusing to write binary image data to a terminal; use -o to write to a file")
	}

	var buf bytes.Buffer
	switch outputType() {
	case "pbm":
		err = qrencode.WritePBM(code, &buf, g.quiet)
	default:
		err = qrencode.WritePNG(code, &buf, g.scale, g.quiet)
	}
	if err != nil {
		log.Fatalln(err)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		log.Fatalln(err)
	}
}
