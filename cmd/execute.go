package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ImGajeed76/bfscript/common"
	"github.com/ImGajeed76/bfscript/interp"
	"github.com/ImGajeed76/bfscript/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `bfc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("bfc", "bfc compiles BFScript source files into tape-machine code", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("file-path", "the path to the source file to compile", true)
	buildCmd.AddStringArg("out", "o", "the path to write the compiled code to", false)

	runCmd := cli.AddSubcommand("run", "compile and execute a source file", true)
	runCmd.AddPrimaryArg("file-path", "the path to the source file to run", true)
	runCmd.AddStringArg("input", "in", "the input text fed to the program", false)

	cli.AddSubcommand("version", "print the BFScript version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execBuildCommand(subResult, result.Arguments["loglevel"].(string))
	case "run":
		execRunCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.ReportInfo("BFScript Version", common.BFScriptVersion)
	}
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, loglevel string) {
	report.InitReporter(logLevelFromString(loglevel))

	// get the primary argument: the source file path
	srcPath, _ := result.PrimaryArg()

	// create the compiler and run the full pipeline
	c := NewCompiler(srcPath)
	code, ok := c.Compile()
	if !ok {
		return
	}

	// write the compiled code to the output path
	outPath := strArgOr(result, "out", defaultOutputPath(srcPath))
	if err := os.WriteFile(outPath, []byte(code), 0644); err != nil {
		report.ReportFatal("unable to write output file: %s", err.Error())
	}

	report.ReportInfo("Compilation Finished", outPath)
}

// execRunCommand executes the run subcommand: it compiles the source file and
// immediately executes the result in the interpreter.
func execRunCommand(result *olive.ArgParseResult, loglevel string) {
	report.InitReporter(logLevelFromString(loglevel))

	srcPath, _ := result.PrimaryArg()

	c := NewCompiler(srcPath)
	code, ok := c.Compile()
	if !ok {
		return
	}

	opts := []interp.Option{
		interp.WithCellBits(c.Project.Interpreter.CellBits),
		interp.WithInput(strArgOr(result, "input", "")),
		interp.WithTimeLimit(time.Duration(c.Project.Interpreter.TimeLimitSecs) * time.Second),
	}

	if c.Project.Interpreter.InfiniteMemory {
		opts = append(opts, interp.WithInfiniteMemory())
	} else {
		opts = append(opts, interp.WithMemorySize(c.Project.Interpreter.MemorySize))
	}

	it, err := interp.New(code, opts...)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	if err := it.Run(); err != nil {
		report.ReportError("Runtime Error", err)
		return
	}

	os.Stdout.WriteString(it.Output())
}

// -----------------------------------------------------------------------------

// logLevelFromString converts a log level selector value into an enumerated
// log level.
func logLevelFromString(loglevel string) int {
	switch loglevel {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

// strArgOr extracts an optional string argument, substituting a default if the
// argument was not passed.
func strArgOr(result *olive.ArgParseResult, name, defaultValue string) string {
	if value, ok := result.Arguments[name]; ok {
		return value.(string)
	}

	return defaultValue
}

// defaultOutputPath derives the output file path from the source file path by
// swapping the extension for `.bf`.
func defaultOutputPath(srcPath string) string {
	ext := filepath.Ext(srcPath)
	return srcPath[:len(srcPath)-len(ext)] + ".bf"
}
