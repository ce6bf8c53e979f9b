// Command jflat prints the leaves of JSON documents as path, kind and value,
// one per line.
//
// Usage:
//
//	jflat [--compression none|zstd|s2|lz4] [--index PATH]... FILE...
//
// Environment variables (JFLAT_LOG_LEVEL, JFLAT_MAX_DEPTH, JFLAT_MAX_SIZE,
// JFLAT_STRICT, JFLAT_NO_COLOR) tune traversal and logging; see --help.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/format"
	"github.com/arloliu/jflat/index"
	"github.com/arloliu/jflat/internal/config"
	"github.com/arloliu/jflat/internal/logging"
	"github.com/arloliu/jflat/payload"
	"github.com/arloliu/jflat/scalar"
)

type cliArgs struct {
	Compression format.CompressionType `arg:"-c,--compression" default:"none" help:"compression of the input files: none, zstd, s2 or lz4"`
	Index       []string               `arg:"-i,--index,separate" help:"print only the leaf at PATH (repeatable), e.g. .cfg.led.on"`
	Files       []string               `arg:"positional,required" placeholder:"FILE" help:"JSON documents to flatten"`
}

func (cliArgs) Description() string {
	return "jflat flattens JSON objects into dotted leaf paths.\n"
}

func (cliArgs) Epilogue() string {
	cfg, err := config.Load(config.Map{})
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("Environment:\n")
	cfg.Usage(&buf)

	return buf.String()
}

func main() {
	var args cliArgs
	arg.MustParse(&args)

	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run(os.Stdout, os.Stderr, cfg, args))
}

// run flattens every file and returns the process exit status.
func run(stdout, stderr io.Writer, cfg *config.C, args cliArgs) int {
	var logOpts []logging.Option
	if cfg.NoColor {
		logOpts = append(logOpts, logging.WithoutColor())
	}
	log := logging.New(stderr, cfg.Level(), logOpts...)
	out := newPrinter(stdout, cfg.NoColor)

	status := 0
	for _, file := range args.Files {
		if err := flattenFile(out, log, cfg, args, file); log.Check(err) {
			status = 1
		}
	}

	return status
}

func flattenFile(out *printer, log *logging.Logger, cfg *config.C, args cliArgs, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := payload.Read(f, args.Compression, cfg.PayloadOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	defer p.Release()
	log.Debugf("%s: %d bytes decoded (%s)", file, p.Len(), p.Compression())

	if len(args.Index) > 0 {
		return printIndexed(out, log, cfg, args.Index, p, file)
	}

	it, err := p.Iterator(cfg.FlattenOptions(log)...)
	if err != nil {
		return err
	}
	for it.Next() {
		if it.Truncated() {
			log.Warnf("%s: path truncated to %d bytes: %s", file, flatten.MaxPathLength, it.PathBytes())
		}
		out.leaf(it.PathBytes(), it.Value())
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return nil
}

func printIndexed(out *printer, log *logging.Logger, cfg *config.C, paths []string, p *payload.Payload, file string) error {
	idx, err := p.Index(index.WithFlattenOptions(cfg.FlattenOptions(log)...))
	if err != nil {
		if idx == nil {
			return err
		}
		log.Warnf("%s: partial index: %v", file, err)
	}
	if idx.HasCollision() {
		log.Debugf("%s: path hash collision, exact-path fallback in use", file)
	}

	var missing int
	for _, path := range paths {
		leaf, ok := idx.Get(path)
		if !ok {
			log.Warnf("%s: no leaf at %s", file, path)
			missing++
			continue
		}
		out.leaf([]byte(leaf.Path), leaf.Value)
	}
	if missing > 0 {
		return fmt.Errorf("%s: %d of %d paths not found", file, missing, len(paths))
	}

	return nil
}

type printer struct {
	w       io.Writer
	noColor bool
	kinds   map[document.Kind]*color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	return &printer{
		w:       w,
		noColor: noColor,
		kinds: map[document.Kind]*color.Color{
			document.KindString: color.New(color.FgGreen),
			document.KindNumber: color.New(color.FgCyan),
			document.KindTrue:   color.New(color.FgYellow),
			document.KindFalse:  color.New(color.FgYellow),
			document.KindNull:   color.New(color.FgHiBlack),
			document.KindArray:  color.New(color.FgMagenta),
		},
	}
}

func (p *printer) leaf(path []byte, v document.Value) {
	kind := v.Kind().String()
	if c, ok := p.kinds[v.Kind()]; ok && !p.noColor {
		kind = c.Sprint(kind)
	}

	fmt.Fprintf(p.w, "%s\t%s\t%s\n", path, kind, scalar.Bytes(v))
}
