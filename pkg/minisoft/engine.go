// Package minisoft is the public entry point for the MiniSoft compiler
// front-end: compile(source, verbose) -> CompilationResult. It wires the
// lexer, parser, semantic analyzer, and quadruple generator in a strict
// short-circuit pipeline: if an earlier stage produces errors, later
// stages do not run and their outputs are empty, never null.
package minisoft

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/config"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/Adel2411/minisoft-editor/internal/quad"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
	"github.com/Adel2411/minisoft-editor/internal/sourcemap"
)

// Engine holds the configuration a compilation runs under. It carries no
// mutable state between calls — Compile is a pure function of its source
// argument and the Engine's fixed configuration.
type Engine struct {
	cfg        config.CompilerConfig
	reporter   Reporter
	sourceName string
	maxErrors  int // 0 means unlimited
}

// Option configures an Engine at construction time using the standard
// functional-options pattern.
type Option func(*Engine)

// WithVerbose enables progress markers on reporter.
func WithVerbose(reporter Reporter) Option {
	return func(e *Engine) { e.reporter = reporter }
}

// WithConfig overrides the toolchain defaults.
func WithConfig(cfg config.CompilerConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithSourceName attaches a label (a file path, or "<stdin>") to the
// CompilationResult, so callers that serialize many results can tell them
// apart without threading the name through separately.
func WithSourceName(name string) Option {
	return func(e *Engine) { e.sourceName = name }
}

// WithMaxErrors caps how many diagnostics each family (lexical, semantic)
// reports before truncating, so a badly malformed source doesn't drown a
// caller in thousands of cascading errors. Zero (the default) is
// unlimited.
func WithMaxErrors(n int) Option {
	return func(e *Engine) { e.maxErrors = n }
}

// New creates an Engine with MiniSoft's fixed default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{cfg: config.Default(), reporter: noopReporter{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func truncate[T any](items []T, max int) []T {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}

// Compile runs the full pipeline over source and returns a
// CompilationResult. The returned error is non-nil only for an internal
// generator error (a programmer bug in an earlier stage reaching the
// quadruple generator) — ordinary lexical/syntax/semantic diagnostics are
// reported through CompilationResult.Errors, never as a Go error.
func (e *Engine) Compile(source string) (*CompilationResult, error) {
	return e.compileWith(source, e.reporter)
}

// compileWith runs the pipeline against an explicit reporter, letting
// CompileVerbose supply a per-call CollectingReporter without mutating
// shared Engine state (Compile stays safe to call concurrently).
func (e *Engine) compileWith(source string, reporter Reporter) (*CompilationResult, error) {
	smap := sourcemap.New(source)
	result := &CompilationResult{}

	result.Source = e.sourceName

	reporter.Notef("starting lexing")
	tokens, lexErrors := lexer.LexWithConfig(source, lexer.Config{
		MaxIdentifierLength: e.cfg.MaxIdentifierLength,
		IntMin:              int64(e.cfg.IntMin),
		IntMax:              int64(e.cfg.IntMax),
	})
	lexErrors = truncate(lexErrors, e.maxErrors)
	result.Tokens = tokensToView(tokens)
	reporter.Notef("lexing produced %d tokens, %d errors", len(tokens), len(lexErrors))

	var (
		program     *ast.Program
		syntaxError *parser.SyntaxError
		symtab      *semantic.SymbolTable
		semErrors   []*semantic.SemanticError
		quadProgram *quad.Program
	)

	if len(lexErrors) == 0 {
		reporter.Notef("starting parsing")
		program, syntaxError = parser.New(tokens).Parse()
		if syntaxError == nil {
			reporter.Notef("parsing produced %d declarations, %d statements", len(program.Declarations), len(program.Statements))

			reporter.Notef("starting semantic analysis")
			analyzer := semantic.NewWithConfig(source, semantic.Config{
				IntMin:           int64(e.cfg.IntMin),
				IntMax:           int64(e.cfg.IntMax),
				WarningsAsErrors: e.cfg.WarningsAsErrors,
			})
			symtab, semErrors = analyzer.Analyze(program)
			semErrors = truncate(semErrors, e.maxErrors)
			reporter.Notef("semantic analysis produced %d errors", len(semErrors))

			if len(semErrors) == 0 {
				reporter.Notef("starting quadruple generation")
				var genErr error
				quadProgram, genErr = quad.Generate(program, symtab)
				if genErr != nil {
					return nil, fmt.Errorf("minisoft: %w", genErr)
				}
				reporter.Notef("quadruple generation produced %d quadruples", len(quadProgram.Quadruples))
			}
		} else {
			reporter.Notef("parsing stopped at the first syntax error")
		}
	} else {
		reporter.Notef("lexing reported errors; later stages skipped")
	}

	result.AST = programToView(program)
	result.SymbolTable = symbolsToView(symtab)
	result.Quadruples = quadProgramToView(quadProgram)
	result.Errors = errorsToView(lexErrors, syntaxError, semErrors, smap)

	return result, nil
}
