package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	WidgetPath() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.luxtra.db")
	viper.SetDefault("widget", "")
	viper.SetConfigName(".luxtra") // .yaml is implicit
	viper.SetEnvPrefix("LUXTRA")
	viper.AutomaticEnv()

	if override := os.Getenv("LUXTRA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:   expand(viper.GetString("path")),
		Widget: expand(viper.GetString("widget")),
	}, nil
}

func expand(path string) string {
	if path == "" {
		return ""
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

type fileConfig struct {
	Path   string `json:"path"`
	Widget string `json:"widget"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) WidgetPath() string {
	return f.Widget
}
