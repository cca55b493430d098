// Package catalog writes the idea for every possible wizard selection to disk.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/sourcegraph/conc/pool"

	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/output"
	"github.com/julianshen/buildgen/internal/wizard"
)

// DefaultWorkers is used when Export is given a non-positive worker count.
const DefaultWorkers = 4

// Combinations returns every known Space × Vibe × Timeframe selection in
// option order.
func Combinations() []wizard.Selection {
	var out []wizard.Selection
	for _, sp := range idea.Spaces() {
		for _, v := range idea.Vibes() {
			for _, tf := range idea.Timeframes() {
				out = append(out, wizard.Selection{Space: string(sp), Vibe: string(v), Time: string(tf)})
			}
		}
	}
	return out
}

// FileName is the file a selection is written to, e.g.
// "productivity-solo-builder-a-weekend.md".
func FileName(sel wizard.Selection, ext string) string {
	return slug(sel.Space) + "-" + slug(sel.Vibe) + "-" + slug(sel.Time) + "." + ext
}

// slug lowercases s and joins its alphanumeric runs with dashes.
func slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

// Export composes every combination, formats it with f and writes it into
// dir using up to workers goroutines. It returns the written paths sorted.
// Once ctx is cancelled no further combinations are started.
func Export(ctx context.Context, dir string, f output.Formatter, workers int) ([]string, error) {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	p := pool.New().WithMaxGoroutines(workers).WithErrors().WithContext(ctx).WithCancelOnError()
	var mu sync.Mutex
	var paths []string

	for _, sel := range Combinations() {
		if ctx.Err() != nil {
			break
		}
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := writeOne(dir, f, sel)
			if err != nil {
				return err
			}
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return nil
		})
	}

	err := p.Wait()
	if err == nil {
		err = ctx.Err()
	}
	sort.Strings(paths)
	if err != nil {
		return paths, fmt.Errorf("exporting catalog: %w", err)
	}

	slog.InfoContext(ctx, "catalog exported", "dir", dir, "files", len(paths))
	return paths, nil
}

func writeOne(dir string, f output.Formatter, sel wizard.Selection) (string, error) {
	data, err := f.Format(output.NewReport(sel))
	if err != nil {
		return "", fmt.Errorf("formatting %s/%s/%s: %w", sel.Space, sel.Vibe, sel.Time, err)
	}
	path := filepath.Join(dir, FileName(sel, f.Extension()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
