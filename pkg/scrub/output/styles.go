package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for warning messages (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for errors (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

var (
	// HeaderBox is the style for the header section with run info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// FooterBox is the style for the footer summary section.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)

	// LabelStyle is for field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// ValueStyle is for field values.
	ValueStyle = lipgloss.NewStyle()

	// MutedStyle is for secondary information.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// SuccessStyle is for positive status text.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// ErrorStyle is for per-target failure text.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
)
