package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/color"
	"github.com/tubelist-cli/tubelist/constant"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/provider"
	"github.com/tubelist-cli/tubelist/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// Choices lists the accepted values, if the field is restricted.
	Choices func() []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Tubelist + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Choices     []string `json:"choices,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Choices:     f.choices(),
	})
}

func (f *Field) choices() []string {
	if f.Choices == nil {
		return nil
	}
	return f.Choices()
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	restrict := func(k string, choices func() []string) {
		field := Default[k]
		field.Choices = choices
		Default[k] = field
	}

	register(key.PlaylistURL, constant.DefaultPlaylistURL, "Playlist to export when --url is not given")
	register(key.OutputPath, constant.DefaultOutput, "File the playlist document is written to.\nAn existing file is replaced")
	register(key.ProviderName, "ytdlp", "Metadata provider used to fetch playlists")
	register(key.ProviderBinary, "yt-dlp", "Path or name of the yt-dlp executable")
	register(key.ProviderTimeout, 0, "Seconds a single fetch may take. 0 means no limit")
	register(key.ProviderIgnoreErrors, true, "Turn unavailable videos into empty entries instead of failing the whole fetch")
	register(key.ProviderQuiet, true, "Suppress the provider's own diagnostic output")
	register(key.ProviderExtractFlat, true, "Fetch only id and title per video instead of resolving every video page")
	register(key.HistorySave, true, "Record every successful export in the history file")
	register(key.HistoryRememberLocators, true, "Remember exported playlist URLs for shell completion")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warning, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")

	restrict(key.ProviderName, provider.IDs)
	restrict(key.IconsVariant, icon.AvailableVariants)
	restrict(key.LogsLevel, func() []string {
		return lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string {
			return l.String()
		})
	})
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"blue":     style.Fg(color.Blue),
	"purple":   style.Fg(color.Purple),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"wrap":     style.Wrap,
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ with .Choices }}
{{ blue "Choices:" }} {{ join (call .) ", " }}{{ end }}`))
