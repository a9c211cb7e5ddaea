package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/fatih/color"
)

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
)

const rule = "═══════════════════════════════════════════════════════════"

func okMark() string   { return colorGreen.Sprint("✓") }
func failMark() string { return colorRed.Sprint("✗") }
func warnMark() string { return colorYellow.Sprint("⚠️ ") }

// banner prints a ruled section title to stderr
func banner(title string) {
	fmt.Fprintf(os.Stderr, "\n%s\n", rule)
	fmt.Fprintf(os.Stderr, "  %s\n", colorCyan.Sprint(title))
	fmt.Fprintf(os.Stderr, "%s\n\n", rule)
}

// summary prints the closing totals of a batch
func summary(title string, total, ok, failed int, output string) {
	banner(title)
	fmt.Fprintf(os.Stderr, "  Total:     %d\n", total)
	fmt.Fprintf(os.Stderr, "  Success:   %s\n", colorGreen.Sprint(ok))
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "  Failures:  %s\n", colorRed.Sprint(failed))
	} else {
		fmt.Fprintf(os.Stderr, "  Failures:  0\n")
	}
	if output != "" {
		fmt.Fprintf(os.Stderr, "  Output:    %s\n", output)
	}
	fmt.Fprintf(os.Stderr, "\n")
}

// progressWriter returns stderr when verbose, otherwise a discarding writer
func progressWriter(verbose bool) io.Writer {
	if verbose {
		return os.Stderr
	}
	return io.Discard
}

// suggest returns up to three candidates closest to name by edit distance
func suggest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	needle := strings.ToLower(name)
	limit := max(3, len([]rune(needle))/2)

	var matches []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d <= limit {
			matches = append(matches, scored{name: c, dist: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	var out []string
	for i := 0; i < len(matches) && i < 3; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

// unknownError formats an unknown-name error with suggestions
func unknownError(kind, name string, candidates []string) error {
	if hints := suggest(name, candidates); len(hints) > 0 {
		return fmt.Errorf("unknown %s %q (did you mean: %s?)", kind, name, strings.Join(hints, ", "))
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}
