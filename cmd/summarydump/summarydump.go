// summarydump loads serialized summary files and prints the symbols,
// aliases and module names they provide.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/davecgh/go-spew/spew"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/siddharthashw/angular/pkg/collections"
	"github.com/siddharthashw/angular/pkg/genfile"
	"github.com/siddharthashw/angular/pkg/host"
	"github.com/siddharthashw/angular/pkg/summary"
	"github.com/siddharthashw/angular/pkg/symbol"
)

type config struct {
	summaryDir   string
	pattern      string
	configFile   string
	excludeGlobs collections.StringSlice
	debug        bool
	wantProgress bool
}

func main() {
	log.SetPrefix("summarydump: ")
	log.SetFlags(0) // don't print timestamps

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("summarydump", flag.ContinueOnError)
	fs.StringVar(&cfg.summaryDir, "summary_dir", ".", "directory containing summary files")
	fs.StringVar(&cfg.pattern, "pattern", "**/*"+genfile.SummaryExt, "glob pattern of summary files to dump")
	fs.StringVar(&cfg.configFile, "config", "", "optional yaml host configuration file")
	fs.Var(&cfg.excludeGlobs, "exclude", "glob pattern of source files (repeatable)")
	fs.BoolVar(&cfg.debug, "debug", false, "dump decoded summaries")
	fs.BoolVar(&cfg.wantProgress, "progress", false, "print progress while loading")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if len(fs.Args()) > 0 {
		return nil, fmt.Errorf("positional args are not supported, got %v", fs.Args())
	}
	return cfg, nil
}

func run(cfg *config) error {
	hostConfig := &host.Config{BasePath: cfg.summaryDir, ExcludeGlobs: cfg.excludeGlobs}
	if cfg.configFile != "" {
		c, err := host.LoadConfig(cfg.configFile)
		if err != nil {
			return err
		}
		hostConfig = c
	}

	logger := zerolog.New(os.Stderr)

	storeHost, err := host.NewFileSystemHost(hostConfig, host.WithLogger(logger))
	if err != nil {
		return err
	}

	cache := symbol.NewCache()
	resolver := summary.NewAotResolver(storeHost, cache, summary.WithLogger(logger))

	summaryFiles, err := doublestar.Glob(os.DirFS(cfg.summaryDir), cfg.pattern)
	if err != nil {
		return fmt.Errorf("globbing %q: %w", cfg.pattern, err)
	}
	if len(summaryFiles) == 0 {
		return fmt.Errorf("no summary files match %q under %s", cfg.pattern, cfg.summaryDir)
	}

	output := mobyprogress.NewProgressOutput(mobyprogress.NewOut(os.Stderr))

	for i, summaryFile := range summaryFiles {
		if cfg.wantProgress {
			writeLoadProgress(output, summaryFile, i+1, len(summaryFiles), i+1 == len(summaryFiles))
		}
		libFile := strings.TrimSuffix(summaryFile, genfile.SummaryExt) + ".d.ts"
		if err := dumpFile(resolver, libFile, cfg.debug); err != nil {
			return err
		}
	}

	return nil
}

func dumpFile(resolver summary.Resolver, libFile string, debug bool) error {
	symbols, err := resolver.SymbolsOf(libFile)
	if err != nil {
		return err
	}

	if moduleName, ok := resolver.KnownModuleName(libFile); ok {
		fmt.Printf("%s (module %s)\n", libFile, moduleName)
	} else {
		fmt.Println(libFile)
	}

	for _, sym := range symbols {
		s, err := resolver.ResolveSummary(sym)
		if err != nil {
			return err
		}
		alias, err := resolver.ImportAsOf(sym)
		if err != nil {
			return err
		}
		if alias != nil {
			fmt.Printf("  %s -> %s\n", sym.Name, alias)
		} else {
			fmt.Printf("  %s\n", sym.Name)
		}
		if debug && s != nil {
			fmt.Print(spew.Sdump(s.Metadata))
		}
	}

	return nil
}

func writeLoadProgress(output mobyprogress.Output, id string, current, total int, lastUpdate bool) {
	output.WriteProgress(mobyprogress.Progress{
		ID:         id,
		Action:     "loading summaries",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "files",
		LastUpdate: lastUpdate,
	})
}
