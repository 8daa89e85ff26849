// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playlist input.
const (
	PlaylistURL = "playlist.url"
)

// Output document.
const (
	OutputPath = "output.path"
)

// Metadata provider - these keys select the provider and shape the options passed to every fetch.
const (
	ProviderName         = "provider.name"
	ProviderBinary       = "provider.binary"
	ProviderTimeout      = "provider.timeout"
	ProviderIgnoreErrors = "provider.ignore_errors"
	ProviderQuiet        = "provider.quiet"
	ProviderExtractFlat  = "provider.extract_flat"
)

// Export history - these keys control what is remembered between runs.
const (
	HistorySave             = "history.save"
	HistoryRememberLocators = "history.remember_locators"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
