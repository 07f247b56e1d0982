package cmd

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a MiniSoft file",
	Long: `Tokenize a MiniSoft program and print the resulting tokens.

If no file is given, source is read from stdin.

Examples:
  minisoft lex program.ms
  cat program.ms | minisoft lex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, label, err := readInput(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfigFrom(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if isVerbose(cmd) {
		fmt.Printf("Tokenizing: %s (%d bytes)\n---\n", label, len(source))
	}

	tokens, errs := lexer.LexWithConfig(source, lexer.Config{
		MaxIdentifierLength: cfg.MaxIdentifierLength,
		IntMin:              int64(cfg.IntMin),
		IntMax:              int64(cfg.IntMax),
	})
	for _, t := range tokens {
		if t.Kind == lexer.EOF {
			fmt.Println("EOF")
			continue
		}
		fmt.Printf("[%-10s] %q @%d:%d\n", t.Kind, t.Literal, t.Pos.Line, t.Pos.Column)
	}

	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		fmt.Printf("error: line %d, column %d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Errorf("lexing failed with %d error(s)", len(errs))
}
