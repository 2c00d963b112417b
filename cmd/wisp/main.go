// Command wisp is a small demo CLI for the value core: it wires a
// pkg/exec.State up to a handful of named scenarios straight out of
// spec.md §8 (prototype read-through, the locked wall, slice edges,
// metadispatch non-recursion) and runs one of them, or all of them,
// the way cmd/paserati drives a full script through its compiler
// pipeline. There is no lexer or parser here — compilation is out of
// scope (spec.md §1) — so "source" is a named Go-native scenario
// rather than text.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/rtlog"
	"github.com/wisplang/wisp/pkg/exec"
	"github.com/wisplang/wisp/pkg/value"
)

func main() {
	listFlag := flag.Bool("list", false, "List available demo scenarios and exit")
	demoFlag := flag.String("demo", "", "Run a single named scenario (default: run all)")
	verboseFlag := flag.Bool("v", false, "Enable debug-level call tracing")
	flag.Parse()

	cfg, err := config.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "wisp.toml: %s\n", err)
		os.Exit(70)
	}
	level := slog.LevelInfo
	if cfg != nil {
		level = rtlog.ParseLevel(cfg.Log.Level)
	}
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := rtlog.New(level)

	if *listFlag {
		for _, d := range demos {
			fmt.Println(d.name)
		}
		return
	}

	names := []string{*demoFlag}
	if *demoFlag == "" {
		names = make([]string, len(demos))
		for i, d := range demos {
			names[i] = d.name
		}
	}

	exit := 0
	for _, name := range names {
		d, ok := demoByName(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown demo %q (use -list)\n", name)
			exit = 64
			continue
		}
		state := exec.NewState()
		state.Log = logger
		result, err := d.run(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", d.name, err)
			exit = 70
			continue
		}
		str, serr := value.ToDisplayString(result)
		if serr != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", d.name, serr)
			exit = 70
			continue
		}
		fmt.Printf("%s => %s\n", d.name, str)
	}
	if exit != 0 {
		os.Exit(exit)
	}
}

func demoByName(name string) (demoScenario, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demoScenario{}, false
}

func init() {
	sort.Slice(demos, func(i, j int) bool { return demos[i].name < demos[j].name })
}
