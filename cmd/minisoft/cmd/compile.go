package cmd

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/pkg/minisoft"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Run the full MiniSoft pipeline and print the compilation result",
	Long: `Run the complete lex -> parse -> check -> generate pipeline over MiniSoft
source and print the result.

By default this prints a short summary; pass --json to print the full
CompilationResult (tokens, AST, symbol table, quadruples, and any
diagnostics) as JSON, matching the public pkg/minisoft.Engine contract.

If no file is given, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var dumpQuads bool

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolVar(&dumpQuads, "dump", false, "print the disassembled quadruple program")
}

func runCompile(cmd *cobra.Command, args []string) error {
	source, label, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigFrom(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := []minisoft.Option{minisoft.WithConfig(cfg), minisoft.WithSourceName(label)}
	if isVerbose(cmd) {
		opts = append(opts, minisoft.WithVerbose(minisoft.WriterReporter{W: cmd.ErrOrStderr()}))
	}
	engine := minisoft.New(opts...)

	if wantsJSON(cmd) {
		data, err := engine.CompileVerbose(source)
		if err != nil {
			return fmt.Errorf("compiling %s: %w", label, err)
		}
		fmt.Println(string(data))
		if minisoft.ErrorCount(data) > 0 {
			return fmt.Errorf("%s has %d diagnostic(s)", label, minisoft.ErrorCount(data))
		}
		return nil
	}

	result, err := engine.Compile(source)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", label, err)
	}

	fmt.Printf("%s: %d token(s), %d symbol(s), %d quadruple(s)\n",
		label, len(result.Tokens), len(result.SymbolTable), len(result.Quadruples.Quadruples))
	if dumpQuads {
		fmt.Print(result.Quadruples.Disassemble())
	}
	if !result.HasErrors() {
		return nil
	}
	for _, e := range result.Errors.Lexical {
		fmt.Printf("error: line %d, column %d: %s\n", e.Line, e.Column, e.Message)
	}
	if result.Errors.Syntax != nil {
		e := result.Errors.Syntax
		fmt.Printf("error: line %d, column %d: %s\n", e.Line, e.Column, e.Message)
	}
	for _, e := range result.Errors.Semantic {
		fmt.Printf("error: line %d, column %d: %s\n", e.Line, e.Column, e.Message)
	}
	return fmt.Errorf("%s failed to compile", label)
}
