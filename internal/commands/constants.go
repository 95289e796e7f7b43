package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when detection fails.
	DefaultTerminalHeight = 24

	// ChromeHeight is the number of lines above the charts: status bar and title.
	ChromeHeight = 2
)

// Output formats shared by the one-shot commands.
const (
	OutputTable = "table"
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)
