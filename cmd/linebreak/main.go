// Command linebreak reads UTF-8 text and prints the UAX #14 break
// opportunities the line-break engine finds in it, one per line as
// codeUnitOffset/wrap/required.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf16"

	"github.com/pkg/errors"

	"github.com/acaly/fonts/linebreak"
)

// pipeName indicates that stdin/stdout is being used as the file name.
const pipeName = "-"

var (
	source      = flag.String("in", pipeName, "input file (- for stdin)")
	destination = flag.String("out", pipeName, "output file (- for stdout)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if err := run(*source, *destination); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// run's flag parsing is handled by the flag package itself, which exits
// with status 2 on a bad flag; anything run returns is an I/O failure
// and exits 1.
func run(in, out string) error {
	src, err := openInput(in)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer src.Close()

	dst, err := openOutput(out)
	if err != nil {
		return errors.Wrap(err, "open output")
	}
	defer dst.Close()

	text, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	units := utf16.Encode([]rune(string(text)))
	w := bufio.NewWriter(dst)
	defer w.Flush()

	s := linebreak.NewScanner(units)
	var lb linebreak.LineBreak
	for s.TryGetNextBreak(&lb) {
		req := "soft"
		if lb.Required {
			req = "required"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", lb.PositionRequired, lb.PositionWrap, req)
	}
	return nil
}

func openInput(name string) (io.ReadCloser, error) {
	if name == pipeName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func openOutput(name string) (io.WriteCloser, error) {
	if name == pipeName {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
