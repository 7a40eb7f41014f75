package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"arrayfmt/internal/ast"
	"arrayfmt/internal/diag"
	"arrayfmt/internal/format"
	"arrayfmt/internal/observ"
	"arrayfmt/internal/source"
	"arrayfmt/internal/trace"
)

// ErrNoSourceFiles is returned when the paths contain nothing to format.
var ErrNoSourceFiles = errors.New("format: no source files found")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	Jobs           int
	MaxDiagnostics int

	// Verify runs the round-trip check on every file and reports a failure
	// as the file's error.
	Verify bool

	// Extensions filter files found while walking directories.
	Extensions []string
	Options    format.Options

	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	// Diagnostics holds what the scanner, parser and formatter reported;
	// FileSet resolves their spans.
	Diagnostics *diag.Bag
	FileSet     *source.FileSet
}

// FormatPaths formats provided files or directories (recursively collecting
// files with a known extension). When opts.Check is true, files are not
// modified; Changed indicates whether formatting would update the file
// contents. When opts.Stdout is true, formatted content is returned in the
// results without touching files on disk.
//
// Files are formatted concurrently; results keep the sorted file order.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeDriver, "fmt", trace.ParentFrom(ctx))
	defer runSpan.End("")
	ctx = trace.WithParent(ctx, runSpan)

	phase := opts.Timer.Begin("collect")
	files, err := collectSourceFiles(ctx, paths, opts.Extensions)
	opts.Timer.End(phase, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}
	runSpan.WithExtra("files", fmt.Sprint(len(files)))

	optsKey, err := optionsDigest(opts.Options)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	phase = opts.Timer.Begin("format")
	results, err := formatAll(ctx, files, opts, optsKey)
	opts.Timer.End(phase, "")
	if err != nil {
		return results, err
	}

	if opts.Check || opts.Stdout {
		return results, nil
	}

	phase = opts.Timer.Begin("write")
	written := 0
	for i := range results {
		res := &results[i]
		if res.Err != nil || !res.Changed {
			continue
		}
		if err := writeFileAtomic(res.Path, res.Formatted); err != nil {
			res.Err = err
			res.Changed = false
			continue
		}
		written++
		storeClean(opts.Cache, res.Path, res.Formatted, optsKey)
	}
	opts.Timer.End(phase, fmt.Sprintf("%d written", written))
	return results, nil
}

func formatAll(ctx context.Context, files []string, opts FormatOptions, optsKey Digest) ([]FormatResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indexes are unique per goroutine, no mutex needed
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()
			emit(opts.Progress, Event{File: path, Status: StatusWorking})
			res := formatSingleFile(gctx, path, opts, optsKey)
			results[i] = res

			status := StatusDone
			switch {
			case res.Err != nil:
				status = StatusError
			case res.Cached:
				status = StatusCached
			}
			emit(opts.Progress, Event{
				File:    path,
				Status:  status,
				Changed: res.Changed,
				Err:     res.Err,
				Elapsed: time.Since(start),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatSingleFile(ctx context.Context, path string, opts FormatOptions, optsKey Digest) FormatResult {
	tracer := trace.FromContext(ctx)
	fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+path, trace.ParentFrom(ctx))
	result := FormatResult{Path: path}
	defer func() {
		detail := "unchanged"
		switch {
		case result.Err != nil:
			detail = "error"
		case result.Cached:
			detail = "cached"
		case result.Changed:
			detail = "changed"
		}
		fileSpan.End(detail)
	}()

	// #nosec G304 -- path comes from the command line or a directory walk
	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	key := cacheKey(data, optsKey)
	if !opts.Verify && opts.Cache.Has(key) {
		result.Cached = true
		result.Formatted = data
		return result
	}

	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.AddNormalized(path, data))

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	rep := diag.BagReporter{Bag: bag}
	result.Diagnostics = bag
	result.FileSet = fileSet

	parseSpan := trace.Begin(tracer, trace.ScopePass, "parse", fileSpan.ID())
	file, err := format.Parse(sf, rep)
	if err != nil {
		parseSpan.End("error")
		result.Err = err
		return result
	}
	parseSpan.WithExtra("arrays", fmt.Sprint(file.Count())).End("")
	if tracer.Level().ShouldEmit(trace.ScopeArray) {
		traceArrays(tracer, file, parseSpan.ID())
	}

	formatSpan := trace.Begin(tracer, trace.ScopePass, "format", fileSpan.ID())
	formatted, err := format.FormatFile(sf, file, opts.Options, rep)
	formatSpan.End("")
	if err != nil {
		result.Err = err
		return result
	}

	if opts.Verify {
		verifySpan := trace.Begin(tracer, trace.ScopePass, "verify", fileSpan.ID())
		ok, msg := format.CheckRoundTrip(sf, opts.Options)
		verifySpan.End(msg)
		if !ok {
			result.Err = fmt.Errorf("%s: round-trip check failed: %s", path, msg)
			return result
		}
	}

	formatted = sf.Restore(formatted)
	result.Formatted = formatted
	result.Changed = !bytes.Equal(data, formatted)
	if !result.Changed {
		storeClean(opts.Cache, path, data, optsKey)
	}
	return result
}

// traceArrays emits one span per array literal with its position and shape.
func traceArrays(tracer trace.Tracer, file *ast.File, parent uint64) {
	file.Walk(func(arr *ast.ArrayLit) bool {
		detail := "flat"
		switch {
		case arr.Sparse:
			detail = "sparse"
		case arr.HasComments:
			detail = "comments"
		case arr.Multiline():
			detail = "multiline"
		}
		sp := trace.Begin(tracer, trace.ScopeArray, "array", parent).
			WithExtra("at", arr.Range.Start.String()).
			WithExtra("elements", fmt.Sprint(len(arr.Elements))).
			WithExtra("depth", fmt.Sprint(arr.Depth()))
		if arr.Directive != nil {
			sp.WithExtra("directive", "yes")
		}
		sp.End(detail)
		return true
	})
}

// storeClean records content as formatted. Cache failures never fail a run.
func storeClean(cache *DiskCache, path string, content []byte, optsKey Digest) {
	if cache == nil {
		return
	}
	_ = cache.Put(cacheKey(content, optsKey), &DiskPayload{Path: path, Size: int64(len(content))})
}
