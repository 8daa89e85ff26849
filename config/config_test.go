package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/filesystem"
	"github.com/tubelist-cli/tubelist/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetBool(key.ProviderIgnoreErrors), ShouldBeTrue)
			So(viper.GetBool(key.ProviderQuiet), ShouldBeTrue)
			So(viper.GetBool(key.ProviderExtractFlat), ShouldBeTrue)
			So(viper.GetString(key.OutputPath), ShouldEqual, "playlist.json")
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("TUBELIST_OUTPUT_PATH", "videos.json")
			_ = Setup()
			So(viper.GetString(key.OutputPath), ShouldEqual, "videos.json")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("provider.extract_flat"), ShouldEqual, "provider_extract_flat")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ProviderBinary]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "TUBELIST_PROVIDER_BINARY")
		})

		Convey("typeName reflects the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			timeout := Default[key.ProviderTimeout]
			So(timeout.typeName(), ShouldEqual, "int")
		})

		Convey("MarshalJSON exposes the default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"default":"yt-dlp"`)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Converts to the type of the default", func() {
			v, err := Parse(key.ProviderTimeout, []string{"120"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 120)

			v, err = Parse(key.ProviderQuiet, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = Parse(key.OutputPath, []string{"videos.json"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "videos.json")
		})

		Convey("Rejects malformed values", func() {
			_, err := Parse(key.ProviderTimeout, []string{"soon"})
			So(err, ShouldNotBeNil)
			_, err = Parse(key.ProviderTimeout, []string{"-1"})
			So(err, ShouldNotBeNil)
			_, err = Parse(key.HistorySave, []string{"maybe"})
			So(err, ShouldNotBeNil)
			_, err = Parse(key.OutputPath, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unknown keys", func() {
			_, err := Parse("provider.nope", []string{"x"})
			So(err, ShouldNotBeNil)
		})

		Convey("Accepts only registered providers", func() {
			v, err := Parse(key.ProviderName, []string{"ytdlp"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "ytdlp")

			_, err = Parse(key.ProviderName, []string{"foo"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "ytdlp")
		})

		Convey("Accepts only known icon variants and log levels", func() {
			_, err := Parse(key.IconsVariant, []string{"emoji"})
			So(err, ShouldBeNil)
			_, err = Parse(key.IconsVariant, []string{"sparkles"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.LogsLevel, []string{"debug"})
			So(err, ShouldBeNil)
			_, err = Parse(key.LogsLevel, []string{"loud"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestChoices(t *testing.T) {
	Convey("Restricted fields expose their choices", t, func() {
		field := Default[key.ProviderName]
		So(field.choices(), ShouldContain, "ytdlp")

		data, err := field.MarshalJSON()
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"choices":["ytdlp"]`)

		So(field.Pretty(), ShouldContainSubstring, "ytdlp")
	})

	Convey("Unrestricted fields have none", t, func() {
		field := Default[key.OutputPath]
		So(field.choices(), ShouldBeNil)
	})

	Convey("Path names the TOML file in the config directory", t, func() {
		So(Path(), ShouldEndWith, "tubelist.toml")
	})
}
