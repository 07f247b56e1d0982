package cmd

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/spf13/cobra"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse MiniSoft source and display the AST",
	Long: `Parse MiniSoft source code and display its declarations and statements.

If no file is given, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the indented AST tree instead of a one-line summary")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, label, err := readInput(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfigFrom(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tokens, lexErrs := lexer.LexWithConfig(source, lexer.Config{
		MaxIdentifierLength: cfg.MaxIdentifierLength,
		IntMin:              int64(cfg.IntMin),
		IntMax:              int64(cfg.IntMax),
	})
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Printf("error: line %d, column %d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
		}
		return fmt.Errorf("lexing failed with %d error(s); parsing skipped", len(lexErrs))
	}

	program, syntaxErr := parser.New(tokens).Parse()
	if syntaxErr != nil {
		fmt.Printf("error: line %d, column %d: %s\n", syntaxErr.Pos.Line, syntaxErr.Pos.Column, syntaxErr.Message)
		return fmt.Errorf("parsing %s failed", label)
	}

	if dumpAST {
		dumpProgram(program)
		return nil
	}
	fmt.Printf("Program %q: %d declaration(s), %d statement(s)\n",
		program.Name, len(program.Declarations), len(program.Statements))
	return nil
}

func dumpProgram(p *ast.Program) {
	fmt.Printf("Program %q\n", p.Name)
	for _, d := range p.Declarations {
		dumpNode(d.Span(), declLabel(d), 1)
	}
	for _, s := range p.Statements {
		dumpStatement(s, 1)
	}
}

func declLabel(d ast.Declaration) string {
	switch decl := d.(type) {
	case *ast.VariableDecl:
		return fmt.Sprintf("Variable %v: %s", decl.Names, decl.Type)
	case *ast.ArrayDecl:
		return fmt.Sprintf("Array %v: %s[%d]", decl.Names, decl.Type, decl.Size)
	case *ast.VariableWithInitDecl:
		return fmt.Sprintf("VariableWithInit %v: %s", decl.Names, decl.Type)
	case *ast.ArrayWithInitDecl:
		return fmt.Sprintf("ArrayWithInit %v: %s[%d]", decl.Names, decl.Type, decl.Size)
	case *ast.ConstantDecl:
		return fmt.Sprintf("Constant %s: %s", decl.Name, decl.Type)
	default:
		return "Declaration"
	}
}

func dumpStatement(s ast.Statement, indent int) {
	switch stmt := s.(type) {
	case *ast.IfThenStmt:
		dumpNode(stmt.Span(), "IfThen", indent)
		for _, inner := range stmt.Then {
			dumpStatement(inner, indent+1)
		}
	case *ast.IfThenElseStmt:
		dumpNode(stmt.Span(), "IfThenElse", indent)
		for _, inner := range stmt.Then {
			dumpStatement(inner, indent+1)
		}
		for _, inner := range stmt.Else {
			dumpStatement(inner, indent+1)
		}
	case *ast.DoWhileStmt:
		dumpNode(stmt.Span(), "DoWhile", indent)
		for _, inner := range stmt.Body {
			dumpStatement(inner, indent+1)
		}
	case *ast.ForStmt:
		dumpNode(stmt.Span(), fmt.Sprintf("For %s", stmt.Var), indent)
		for _, inner := range stmt.Body {
			dumpStatement(inner, indent+1)
		}
	case *ast.ScopeStmt:
		dumpNode(stmt.Span(), "Scope", indent)
		for _, inner := range stmt.Body {
			dumpStatement(inner, indent+1)
		}
	case *ast.AssignmentStmt:
		dumpNode(stmt.Span(), "Assignment", indent)
	case *ast.InputStmt:
		dumpNode(stmt.Span(), "Input", indent)
	case *ast.OutputStmt:
		dumpNode(stmt.Span(), fmt.Sprintf("Output (%d args)", len(stmt.Args)), indent)
	case *ast.EmptyStmt:
		dumpNode(stmt.Span(), "Empty", indent)
	}
}

func dumpNode(span ast.Span, label string, indent int) {
	for i := 0; i < indent; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("%s [%d:%d]\n", label, span.Start, span.End)
}
