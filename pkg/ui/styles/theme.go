// Package styles provides the shared palette and styles for the solar_cli UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (sun amber)
	ColorAccent = lipgloss.Color("214")

	// Text colors
	ColorText      = lipgloss.Color("252") // Primary text
	ColorTextMuted = lipgloss.Color("245") // Secondary/muted text

	// Semantic colors
	ColorError   = lipgloss.Color("196")
	ColorSuccess = lipgloss.Color("42")
	ColorUser    = lipgloss.Color("75")

	// Code/syntax colors
	ColorCode   = lipgloss.Color("223")
	ColorCodeBg = lipgloss.Color("235")

	// Border colors
	ColorBorder      = lipgloss.Color("214")
	ColorBorderMuted = lipgloss.Color("239")
)

// Panel/Box styles
var (
	// BoxStyle is the default rounded box for panels
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// BoxStyleMuted frames panels that do not have focus
	BoxStyleMuted = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Chat transcript styles
var (
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	AssistantLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// ThinkingStyle marks the pending-request indicator
	ThinkingStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// SelectedStyle for the highlighted navigation item
var SelectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("16")).
	Background(ColorAccent).
	Bold(true)

// Input and form styles
var (
	// LabelStyle for form labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(28)

	// FocusedLabelStyle for the label of the focused field
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Width(28)

	// ValueStyle for form values
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Feedback styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// CodeStyle for inline code and code blocks
var CodeStyle = lipgloss.NewStyle().
	Foreground(ColorCode).
	Background(ColorCodeBg)

// Status bar styles
var (
	// StatusBarStyle is the default status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1C1C")).
			Background(lipgloss.Color("#F5A623")).
			Padding(0, 1).
			Bold(true)

	// StatusBarStyleDark is the dark theme variant
	StatusBarStyleDark = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#D0D0D0")).
				Background(lipgloss.Color("#3C3C3C")).
				Padding(0, 1)
)

// Welcome message styles
var (
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("178"))

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)

	// WelcomeKeyStyle for keyboard shortcut keys
	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	WelcomeHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))

	// WelcomeVersionStyle for version info (dimmed)
	WelcomeVersionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)
