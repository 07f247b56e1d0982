package cmd

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/diag"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
	"github.com/Adel2411/minisoft-editor/internal/sourcemap"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run semantic analysis over MiniSoft source",
	Long: `Lex, parse, and semantically analyze MiniSoft source, printing the
declared symbol table and any diagnostics.

If no file is given, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, _, err := readInput(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfigFrom(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	color := wantsColor(cmd)
	smap := sourcemap.New(source)

	tokens, lexErrs := lexer.LexWithConfig(source, lexer.Config{
		MaxIdentifierLength: cfg.MaxIdentifierLength,
		IntMin:              int64(cfg.IntMin),
		IntMax:              int64(cfg.IntMax),
	})
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Println(diag.FormatWithSourceColor(e, smap, color))
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	program, syntaxErr := parser.New(tokens).Parse()
	if syntaxErr != nil {
		fmt.Println(diag.FormatWithSourceColor(syntaxErr, smap, color))
		return fmt.Errorf("parsing failed")
	}

	analyzer := semantic.NewWithConfig(source, semantic.Config{
		IntMin:           int64(cfg.IntMin),
		IntMax:           int64(cfg.IntMax),
		WarningsAsErrors: cfg.WarningsAsErrors,
	})
	symtab, semErrs := analyzer.Analyze(program)

	for _, sym := range symtab.Ordered() {
		fmt.Printf("%-14s %-10s %s\n", sym.Name, sym.Kind, sym.Type)
	}
	for _, w := range analyzer.Warnings() {
		fmt.Printf("warning: %s\n", w)
	}
	if len(semErrs) == 0 {
		return nil
	}
	for _, e := range semErrs {
		fmt.Println(diag.FormatWithSourceColor(e, smap, color))
	}
	return fmt.Errorf("semantic analysis failed with %d error(s)", len(semErrs))
}
