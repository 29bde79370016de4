package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the symbol colors of the chamber
type Theme struct {
	Name    string
	Bomb    lipgloss.Color
	Left    lipgloss.Color
	Right   lipgloss.Color
	Overlap lipgloss.Color
	Empty   lipgloss.Color
	Border  lipgloss.Color
	Title   lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Bomb:    lipgloss.Color("#ffff00"),
		Left:    lipgloss.Color("#00ffff"),
		Right:   lipgloss.Color("#ff00ff"),
		Overlap: lipgloss.Color("#ffffff"),
		Empty:   lipgloss.Color("#444444"),
		Border:  lipgloss.Color("#444466"),
		Title:   lipgloss.Color("#00ffff"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Bomb:    lipgloss.Color("#ffff00"),
		Left:    lipgloss.Color("#00ff00"),
		Right:   lipgloss.Color("#00cc00"),
		Overlap: lipgloss.Color("#88ff88"),
		Empty:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#005500"),
		Title:   lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Bomb:    lipgloss.Color("#ffffff"),
		Left:    lipgloss.Color("#cccccc"),
		Right:   lipgloss.Color("#cccccc"),
		Overlap: lipgloss.Color("#0088ff"),
		Empty:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#888888"),
		Title:   lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Bomb:    lipgloss.Color("#ffd700"),
		Left:    lipgloss.Color("#00a8cc"),
		Right:   lipgloss.Color("#0077be"),
		Overlap: lipgloss.Color("#e0f0ff"),
		Empty:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#4488aa"),
		Title:   lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Bomb:    lipgloss.Color("#ff4757"),
		Left:    lipgloss.Color("#feca57"),
		Right:   lipgloss.Color("#ff6b6b"),
		Overlap: lipgloss.Color("#ff9ff3"),
		Empty:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#8b6b8c"),
		Title:   lipgloss.Color("#ff6b6b"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
