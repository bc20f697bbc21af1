package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"sesh/internal/diag"
	"sesh/internal/lexer"
	"sesh/internal/observ"
	"sesh/internal/source"
	"sesh/internal/token"
	"sesh/internal/trace"
)

// SourceExt is the extension of Selene source files.
const SourceExt = ".sel"

// TokenizeDirOptions configures TokenizeDir.
type TokenizeDirOptions struct {
	MaxDiagnostics int
	// Jobs bounds parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, is consulted before lexing and filled after.
	Cache *TokenCache
	// Events receives progress; TokenizeDir closes it when done.
	Events chan<- Event
}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // source.NoFile если файл не прочитан
	Tokens []token.Token
	Bag    *diag.Bag
	Cached bool // результат взят из кэша
}

// ListSources returns every *.sel file under dir, sorted.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// TokenizeDir lexes every source file under dir in parallel. Each file is
// scanned independently; the symbol table is the only shared state.
// Results are in ListSources order.
func TokenizeDir(ctx context.Context, dir string, opts TokenizeDirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}
	ctx, span := trace.Start(ctx, trace.ScopePass, "tokenize-dir")
	defer span.End("")
	timer := observ.TimerFrom(ctx)

	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	span.Set("files", strconv.Itoa(len(files)))

	// FileSet is not safe for concurrent Add: load everything up front.
	done := timer.Track("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		emit(opts.Events, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			fileIDs[i] = source.NoFile
			continue
		}
		fileIDs[i] = id
	}
	done(strconv.Itoa(len(files)) + " files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	done = timer.Track("lex")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(opts.MaxDiagnostics)
			results[i] = TokenizeDirResult{Path: path, FileID: fileIDs[i], Bag: bag}

			if loadErr, failed := loadErrors[i]; failed {
				bag.Add(ioDiagnostic(path, loadErr))
				emit(opts.Events, Event{File: path, Stage: StageLoad, Status: StatusError, Errors: 1})
				return nil
			}

			file := fileSet.Get(fileIDs[i])
			tokens, sink, cached := tokenizeCached(gctx, file, opts.Cache, opts.Events)
			sink.Report(diag.BagReporter{Bag: bag})
			results[i].Tokens = tokens
			results[i].Cached = cached

			status := StatusDone
			if sink.HasErrors() {
				status = StatusError
			}
			emit(opts.Events, Event{File: path, Stage: StageLex, Status: status, Errors: sink.Len(), Cached: cached})
			return nil
		})
	}
	err = g.Wait()
	done("")
	if err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// tokenizeCached returns the cached output for file when present, otherwise
// lexes it and stores the result. Cache failures fall back to lexing.
func tokenizeCached(ctx context.Context, file *source.File, cache *TokenCache, events chan<- Event) ([]token.Token, *lexer.Sink, bool) {
	if cache != nil {
		emit(events, Event{File: file.Path, Stage: StageCache, Status: StatusWorking})
		tokens, sink, ok, err := cache.Get(file)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error(), trace.CurrentSpan(ctx))
		}
		if ok {
			return tokens, sink, true
		}
	}

	emit(events, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})
	tokens, sink := lexFile(ctx, file)
	if cache != nil {
		if err := cache.Put(file, tokens, sink); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error(), trace.CurrentSpan(ctx))
		}
	}
	return tokens, sink, false
}
