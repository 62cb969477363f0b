package report

import (
	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayError prints a tagged error banner to the console.
func displayError(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}

// displayWarning prints a tagged warning banner to the console.
func displayWarning(tag, msg string) {
	warnStyleBG.Print(tag)
	warnColorFG.Println(" " + msg)
}

// displayInfo prints a tagged informational banner to the console.
func displayInfo(tag, msg string) {
	successStyleBG.Print(tag)
	successColorFG.Println(" " + msg)
}

// displayFatal prints a fatal error message to the console.
func displayFatal(msg string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + msg)
}
