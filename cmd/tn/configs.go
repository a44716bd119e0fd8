package main

import (
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treenav/go-treenav/encode"
	"github.com/treenav/go-treenav/ir"
	"github.com/treenav/go-treenav/parse"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Color   bool `cli:"name=color desc='colorize output'"`
	Compact bool `cli:"name=compact aliases=1 desc='compact single-line output'"`

	InFormat  *parse.Format
	PatchFile string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **parse.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parse.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	f := parse.AutoFormat
	switch {
	case cfg.J:
		f = parse.JSONFormat
	case cfg.Y:
		f = parse.YAMLFormat
	}
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return []parse.Option{parse.WithFormat(f)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc reads and parses a document argument ("-" for stdin), applying
// the -patch operations first when given.
func readDoc(cfg *MainConfig, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.PatchFile == "" {
		return node, nil
	}
	return applyPatch(cfg, node)
}

func applyPatch(cfg *MainConfig, node *ir.Node) (*ir.Node, error) {
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", cfg.PatchFile, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", cfg.PatchFile, err)
	}
	doc := []byte(encode.MustString(node))
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error applying patch %s: %w", cfg.PatchFile, err)
	}
	return parse.JSON(out)
}

type GetConfig struct {
	*MainConfig

	Contract bool `cli:"name=c desc='print the aggregate contract of the path'"`

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
