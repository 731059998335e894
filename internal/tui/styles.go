package tui

import "github.com/jeevanlakshya/plan733/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle     = tuistyles.TitleStyle
	SubtitleStyle  = tuistyles.SubtitleStyle
	StatusBarStyle = tuistyles.StatusBarStyle
	StatusKeyStyle = tuistyles.StatusKeyStyle
	BorderStyle    = tuistyles.BorderStyle
	HelpKeyStyle   = tuistyles.HelpKeyStyle
	HelpDescStyle  = tuistyles.HelpDescStyle
	ErrorStyle     = tuistyles.ErrorStyle
)
