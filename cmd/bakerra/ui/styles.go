// Package ui provides the visual styling for the Bakerra storefront TUI.
// Warm bakery palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#fdf8f2") // warm cream
	LightForeground = lipgloss.Color("#3e2c1c") // dark cocoa
	LightPrimary    = lipgloss.Color("#8b5a2b") // toasted crust
	LightAccent     = lipgloss.Color("#d4915d") // caramel
	LightSecondary  = lipgloss.Color("#f0e4d4") // oat
	LightMuted      = lipgloss.Color("#a89680") // latte
	LightBorder     = lipgloss.Color("#e0d0ba")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#221a12")
	DarkForeground = lipgloss.Color("#f3e9dc")
	DarkPrimary    = lipgloss.Color("#d4915d") // caramel (flipped)
	DarkAccent     = lipgloss.Color("#8b5a2b")
	DarkSecondary  = lipgloss.Color("#33281c")
	DarkMuted      = lipgloss.Color("#7d6c57")
	DarkBorder     = lipgloss.Color("#4a3a28")
	DarkCard       = lipgloss.Color("#2c2216")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#6aa84f")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	colorTerm := os.Getenv("COLORFGBG")
	if colorTerm != "" {
		// Format is usually "foreground;background"
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("BAKERRA_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Modal   lipgloss.Style
	Divider lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style

	// Interactive
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Label       lipgloss.Style
	FieldFocus  lipgloss.Style

	// Chat
	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Price: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Row: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		RowSelected: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Foreground).
			Padding(0, 1).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 3).
			Bold(true),

		ButtonBusy: lipgloss.NewStyle().
			Background(theme.Muted).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 3),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(16),

		FieldFocus: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		UserBubble: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		BotBubble: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Foreground).
			Padding(0, 1),

		ToastSuccess: toast.BorderForeground(Success).Foreground(Success),
		ToastError:   toast.BorderForeground(Destructive).Foreground(Destructive),
		ToastWarning: toast.BorderForeground(Warning).Foreground(Warning),
		ToastInfo:    toast.BorderForeground(Info).Foreground(Info),
	}
}
