package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	flatkind "github.com/flatkind/flatkind"
	gen "github.com/flatkind/flatkind/internal/gen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "flatkind CLI\n\nUsage:\n  flatkind generate -schema schema.yaml [-kinds K1,K2] [-o out.js] [-v]\n  flatkind inspect -schema schema.yaml")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var schemaPath string
	var kindsCSV string
	var out string
	var verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema document (.json or .yaml)")
	fs.StringVar(&kindsCSV, "kinds", "", "comma-separated kind names to emit (default: all)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	schema := loadSchema(logger, schemaPath)
	logger.Debug("schema compiled",
		zap.Int("kinds", len(schema.Names())),
		zap.String("fingerprint", fmt.Sprintf("0x%016x", schema.Fingerprint())))

	code, err := gen.RenderModule(schema, gen.Options{Exports: splitCSV(kindsCSV)})
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}
	if out == "" {
		if _, err := os.Stdout.Write(code); err != nil {
			logger.Fatal("writing stdout", zap.Error(err))
		}
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("creating output dir", zap.Error(err))
		}
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		logger.Fatal("writing output", zap.Error(err))
	}
	logger.Debug("wrote generated module", zap.String("path", out), zap.Int("bytes", len(code)))
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema document (.json or .yaml)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	logger := newLogger(false)
	defer func() { _ = logger.Sync() }()

	schema := loadSchema(logger, schemaPath)
	fmt.Printf("fingerprint 0x%016x\n", schema.Fingerprint())
	for _, name := range schema.Names() {
		k, err := schema.Lookup(name)
		if err != nil {
			logger.Fatal("lookup failed", zap.Error(err))
		}
		line := fmt.Sprintf("%-24s size=%-4d align=%d", k.Name(), k.Size(), k.Alignment())
		if n := k.Niche(); n != nil {
			line += "  " + n.String()
		}
		fmt.Println(line)
	}
}

func loadSchema(logger *zap.Logger, path string) *flatkind.Schema {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading schema", zap.Error(err))
	}
	var defs []flatkind.Def
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		defs, err = flatkind.LoadYAML(data)
	case ".json":
		defs, err = flatkind.LoadJSON(data)
	default:
		logger.Fatal("unsupported schema extension", zap.String("path", path))
	}
	if err != nil {
		logger.Fatal("loading schema", zap.Error(err))
	}
	schema, err := flatkind.Compile(defs)
	if err != nil {
		logger.Fatal("compiling schema", zap.Error(err))
	}
	return schema
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
