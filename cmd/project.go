package cmd

import (
	"os"
	"path/filepath"

	"github.com/ImGajeed76/bfscript/common"
	"github.com/ImGajeed76/bfscript/mem"
	"github.com/ImGajeed76/bfscript/report"
	"github.com/ImGajeed76/bfscript/walk"

	"github.com/pelletier/go-toml"
)

// Project represents the project configuration as it is encoded in TOML.  A
// project file is optional: every field has a working default.
type Project struct {
	Compiler    CompilerConfig    `toml:"compiler"`
	Interpreter InterpreterConfig `toml:"interpreter"`
}

// CompilerConfig configures code generation.
type CompilerConfig struct {
	// The number of low addresses reserved for intermediate results.
	TempPoolSize int `toml:"temp-pool-size"`

	// The cell width assumed when folding constant arithmetic.
	CellBits int `toml:"cell-bits"`
}

// InterpreterConfig configures the `run` subcommand.
type InterpreterConfig struct {
	MemorySize     int  `toml:"memory-size"`
	CellBits       int  `toml:"cell-bits"`
	InfiniteMemory bool `toml:"infinite-memory"`
	TimeLimitSecs  int  `toml:"time-limit-secs"`
}

// defaultProject returns a project with every field at its default.
func defaultProject() *Project {
	return &Project{
		Compiler: CompilerConfig{
			TempPoolSize: mem.DefaultTempPoolSize,
			CellBits:     walk.DefaultCellBits,
		},
		Interpreter: InterpreterConfig{
			MemorySize:    30000,
			CellBits:      8,
			TimeLimitSecs: 5,
		},
	}
}

// LoadProject loads the project file from the directory of the source file if
// one exists there.  `srcDir` is the absolute path to that directory.  Fields
// absent from the file keep their defaults.
func LoadProject(srcDir string) *Project {
	proj := defaultProject()

	buff, err := os.ReadFile(filepath.Join(srcDir, common.ProjectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return proj
		}

		report.ReportFatal("unable to read project file in `%s`: %s", srcDir, err.Error())
	}

	if err := toml.Unmarshal(buff, proj); err != nil {
		report.ReportFatal("error parsing project file in `%s`: %s", srcDir, err.Error())
	}

	validateProject(proj, srcDir)
	return proj
}

// validateProject checks that the loaded project contents are usable.
func validateProject(proj *Project, srcDir string) {
	if proj.Compiler.TempPoolSize < 1 {
		report.ReportFatal("project file in `%s`: temp-pool-size must be at least 1", srcDir)
	}

	if !validCellBits(proj.Compiler.CellBits) {
		report.ReportFatal("project file in `%s`: compiler cell-bits must be 8, 16, 32, or 64", srcDir)
	}

	if !validCellBits(proj.Interpreter.CellBits) {
		report.ReportFatal("project file in `%s`: interpreter cell-bits must be 8, 16, 32, or 64", srcDir)
	}

	if !proj.Interpreter.InfiniteMemory && proj.Interpreter.MemorySize < 1 {
		report.ReportFatal("project file in `%s`: memory-size must be at least 1", srcDir)
	}

	if proj.Interpreter.TimeLimitSecs < 1 {
		report.ReportFatal("project file in `%s`: time-limit-secs must be at least 1", srcDir)
	}
}

// validCellBits reports whether bits is a supported cell width.
func validCellBits(bits int) bool {
	switch bits {
	case 8, 16, 32, 64:
		return true
	}

	return false
}
