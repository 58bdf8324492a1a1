package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flexon-format/go-flexon/data"
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/parse"

	"github.com/klauspost/compress/gzip"
)

// readArg reads one document from a file argument, "-" meaning stdin.
// Files ending in .gz are decompressed on the fly.
func (cfg *MainConfig) readArg(arg string) (*data.Data, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(arg, ".gz") {
			zr, err := gzip.NewReader(f)
			if err != nil {
				return nil, fmt.Errorf("could not decompress %q: %w", arg, err)
			}
			defer zr.Close()
			r = zr
		}
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", arg, err)
	}
	if cfg.inFormat() == YAMLFormat {
		d, err := data.FromYAML(in)
		if err != nil {
			return nil, fmt.Errorf("error decoding %q: %w", arg, err)
		}
		return d, nil
	}
	return parse.Decode(in), nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, d *data.Data) error {
	if cfg.outFormat() == YAMLFormat {
		b, err := d.ToYAML()
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	if err := encode.Encode(d, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// orStdin substitutes stdin for an empty file list.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
