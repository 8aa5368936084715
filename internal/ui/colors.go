// Package ui handles terminal presentation: the progress spinner and the
// color palette for status lines. fatih/color disables itself when the
// output is not a terminal.
package ui

import (
	"github.com/fatih/color"
)

var (
	noticeText  = color.New(color.FgYellow, color.Bold)
	headerText  = color.New(color.FgGreen, color.Bold)
	promptText  = color.New(color.FgCyan)
	successText = color.New(color.FgGreen, color.Bold)
	failureText = color.New(color.FgHiRed, color.Bold)
)

// Notice renders a graceful no-op line ("No changes to commit").
func Notice(s string) string { return noticeText.Sprint(s) }

// Header renders the "Suggested commit message:" heading.
func Header(s string) string { return headerText.Sprint(s) }

// Prompt renders the confirmation question.
func Prompt(s string) string { return promptText.Sprint(s) }

// Success renders a positive outcome marker.
func Success(s string) string { return successText.Sprint(s) }

// Failure renders a negative outcome marker.
func Failure(s string) string { return failureText.Sprint(s) }
