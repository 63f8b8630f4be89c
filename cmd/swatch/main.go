package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/packviz/swatch"
	"github.com/packviz/swatch/internal/executor"
)

var (
	fDir     = flag.String("dir", "", "Augment result tables in the given directory instead of the configured one.")
	fList    = flag.Bool("list", false, "Display the matching result files and their status, then exit.")
	fWatch   = flag.Bool("watch", false, "After the first pass, keep running and re-augment result files as they appear or change.")
	fPreview = flag.Bool("preview", false, "Browse the colored results in a terminal UI instead of writing anything.")

	fVersion = flag.Bool("version", false, "Display the version and exit.")
	fHelp    = flag.Bool("help", false, "Display the help text and exit.")
)

func main() {
	flag.Parse()

	if *fVersion {
		fmt.Println(versionText())
		os.Exit(0)
	} else if *fHelp {
		fmt.Println("\n" + helpText())
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := swatch.LoadConfig(".")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	dir := cfg.Results
	if *fDir != "" {
		dir = *fDir
	}

	switch {
	case *fList:
		text, err := listText(dir)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		fmt.Print(text)

	case *fPreview:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println("-preview requires a terminal.")
			os.Exit(1)
		}
		runUntilSignal(func(ctx context.Context) error {
			return swatch.Preview(ctx, dir)
		})

	case *fWatch:
		runUntilSignal(func(ctx context.Context) error {
			return swatch.Watch(ctx, dir, os.Stdout)
		})

	default:
		if _, err := swatch.Batch(dir, os.Stdout); err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
	}
}

// runUntilSignal runs fn until it exits on its own or a signal arrives.
// Whichever happens first is the cause of program exit, so its error decides
// the exit code; the other is just a side effect of the first thing dying.
func runUntilSignal(fn func(context.Context) error) {
	ex := executor.New(fn)

	exitReason := &first[error]{}
	done := make(chan struct{})
	go func() {
		exitReason.set(<-ex.Wait())
		close(done)
	}()
	ex.Execute()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	select {
	case <-sigs:
		exitReason.set(ex.Cancel())
		<-done
	case <-done:
	}

	if err := exitReason.get(); err != nil && errors.Is(err, context.Canceled) {
		fmt.Printf("Canceled\n")
		os.Exit(0)
	} else if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func listText(dir string) (string, error) {
	names, err := swatch.Matches(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", swatch.ErrNoResults, err)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: no %s files in %s", swatch.ErrNoResults, swatch.Pattern, dir)
	}

	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("RESULTS"))
	for _, name := range names {
		var status string
		if table, err := swatch.LoadTable(filepath.Join(dir, name)); err != nil {
			status = err.Error()
		} else if table.Schema.Has(swatch.FieldColor) {
			status = "augmented"
		} else {
			status = "pending"
		}

		tinted := lipgloss.NewStyle().Foreground(lipgloss.Color(swatch.ColorFor(name))).Render(name)
		fmt.Fprintf(b, "  %s\n", tinted)
		fmt.Fprintf(b, "    Status: %s\n", italicStyle.Render(status))
	}
	return b.String(), nil
}

func init() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, usageText())
		fmt.Fprintln(w, flagText())
		os.Exit(0)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true)
)

func helpText() string {
	b := &strings.Builder{}
	b.WriteString("Swatch bakes a Color column into the packer's result tables so that\n")
	b.WriteString("every tool renders the same product in the same color.\n")
	b.WriteString("\n")
	b.WriteString("With no flags, swatch augments every " + swatch.Pattern + " file in the\n")
	b.WriteString("configured results directory (swatch.toml, default \"Results\") and\n")
	b.WriteString("prints a per-file color report.\n")
	b.WriteString("\n")
	b.WriteString(usageText())
	b.WriteString("\n")
	b.WriteString(flagText())
	b.WriteString("\n")
	b.WriteString(versionText())

	return b.String()
}

func usageText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("USAGE"))
	b.WriteString("  swatch [flags]\n")
	return b.String()
}

func flagText() string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("FLAGS"))

	f := flag.CommandLine

	f.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&b, "  -%s", f.Name) // Two spaces before -; see next two comments.
		name, usage := flag.UnquoteUsage(f)
		if len(name) > 0 {
			b.WriteString("=")
			b.WriteString(name)
		}
		// Print the default value only if it differs to the zero value
		// for this flag type.
		if isZero := isZeroValue(f, f.DefValue); !isZero {
			fmt.Fprintf(&b, " (default %q)", f.DefValue)
		}
		b.WriteString("\n")

		usage = strings.ReplaceAll(usage, "\n", "\n    \t")
		usage = wordwrap.String(usage, 52)
		usage = indent.String(usage, 8)
		b.WriteString(usage)

		b.WriteString("\n")
	})
	return b.String()
}

// isZeroValue determines whether the string represents the zero
// value for a flag.
func isZeroValue(f *flag.Flag, value string) (ok bool) {
	// Build a zero value of the flag's Value type, and see if the
	// result of calling its String method equals the value passed in.
	// This works unless the Value type is itself an interface type.
	typ := reflect.TypeOf(f.Value)
	var z reflect.Value
	if typ.Kind() == reflect.Pointer {
		z = reflect.New(typ.Elem())
	} else {
		z = reflect.Zero(typ)
	}
	return value == z.Interface().(flag.Value).String()
}

func versionText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("VERSION"))
	fmt.Fprintln(b, "  Version:", swatch.Version)
	if swatch.Revision != "unknown" {
		if swatch.DirtyBuild {
			fmt.Fprintln(b, "  Dirty Build")
			fmt.Fprintln(b, "  Last commit:", swatch.ReleaseDate)
		} else {
			fmt.Fprintln(b, "  Revision:", swatch.Revision)
			fmt.Fprintln(b, "  Committed:", swatch.ReleaseDate)
		}
	}
	return b.String()
}
