// Package provider manages the built-in metadata providers and the options handed to them.
package provider

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/provider/ytdlp"
	"github.com/tubelist-cli/tubelist/source"
)

// Provider describes a metadata provider that can be selected by ID.
type Provider struct {
	ID   string
	Name string
	// Binary names the executable the provider shells out to, if any.
	Binary string
	// CreateClient builds a ready client from the current configuration.
	CreateClient func() (source.Client, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:     "ytdlp",
			Name:   "yt-dlp",
			Binary: ytdlp.DefaultBinary,
			CreateClient: func() (source.Client, error) {
				return ytdlp.NewClient(viper.GetString(key.ProviderBinary)), nil
			},
		},
	}
}

// IDs lists the identifiers accepted by Get.
func IDs() []string {
	return lo.Map(Builtins(), func(p *Provider, _ int) string {
		return p.ID
	})
}

// Get finds a provider by ID.
func Get(id string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == id
	})
}

// Options assembles fetch options from the configuration.
func Options() source.FetchOptions {
	return source.FetchOptions{
		IgnoreErrors: viper.GetBool(key.ProviderIgnoreErrors),
		Quiet:        viper.GetBool(key.ProviderQuiet),
		ExtractFlat:  viper.GetBool(key.ProviderExtractFlat),
		Timeout:      time.Duration(viper.GetInt(key.ProviderTimeout)) * time.Second,
	}
}
