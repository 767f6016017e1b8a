package ui

import "github.com/fatih/color"

// Message Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	HintColor    = color.New(color.FgCyan, color.Bold).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // labels and config scopes
)

// Alias Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)
