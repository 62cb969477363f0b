package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/preproc"
	"github.com/ImGajeed76/bfscript/report"
	"github.com/ImGajeed76/bfscript/syntax"
	"github.com/ImGajeed76/bfscript/walk"
)

// Compiler drives the full compilation pipeline for a single source file:
// preprocessing, parsing, and translation to tape-machine code.
type Compiler struct {
	// The absolute path to the root source file.
	srcPath string

	// The project configuration loaded from the source file's directory.
	Project *Project
}

// NewCompiler creates a new compiler for a source file.  `srcRelPath` is the
// path to the file as the user passed it.
func NewCompiler(srcRelPath string) *Compiler {
	srcPath, err := filepath.Abs(srcRelPath)
	if err != nil {
		report.ReportFatal("unable to resolve source path: %s", err.Error())
	}

	return &Compiler{
		srcPath: srcPath,
		Project: LoadProject(filepath.Dir(srcPath)),
	}
}

// Compile runs the full pipeline and returns the compiled code.  All
// compilation errors are reported to the user; the boolean indicates whether
// compilation succeeded.
func (c *Compiler) Compile() (string, bool) {
	// preprocess: expand includes and extract macro definitions
	src, err := preproc.Preprocess(c.srcPath)
	if err != nil {
		report.ReportError("Preprocess Error", err)
		return "", false
	}

	// parse the preprocessed source text
	stmts, err := c.parse(src.Text)
	if err != nil {
		report.ReportError("Syntax Error", err)
		return "", false
	}

	// translate the program into tape-machine code
	result, err := walk.Compile(stmts, src.Defines, walk.Config{
		TempPoolSize: c.Project.Compiler.TempPoolSize,
		CellBits:     c.Project.Compiler.CellBits,
	})
	if err != nil {
		report.ReportError("Compile Error", err)
		return "", false
	}

	report.ReportInfo("Temp Cells Used", fmt.Sprintf("%d of %d", result.MaxTempsUsed, c.Project.Compiler.TempPoolSize))
	return result.Code, true
}

// parse parses the source text into a statement list, converting parser
// panics into ordinary errors.
func (c *Compiler) parse(text string) (stmts []ast.Stmt, err error) {
	defer report.CatchErrors(&err)

	stmts = syntax.NewParser(text).Parse()
	return
}
