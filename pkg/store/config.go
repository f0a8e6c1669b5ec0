package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the externally configured locations: the events service URL
// the client talks to, and the base path plus listen address for `serve`.
type Config interface {
	URL() string
	BasePath() string
	Listen() string
}

// LoadConfig reads .tempo (yaml implicit) from the working directory or
// TEMPO_CONFIG_PATH, with TEMPO_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("url", "http://localhost:3001")
	viper.SetDefault("path", "~/.tempo.db")
	viper.SetDefault("listen", ":3001")
	viper.SetConfigName(".tempo") // .yaml is implicit
	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		RemoteURL: viper.GetString("url"),
		Path:      path,
		Addr:      viper.GetString("listen"),
	}, nil
}

type fileConfig struct {
	RemoteURL string `json:"url"`
	Path      string `json:"path"`
	Addr      string `json:"listen"`
}

func (f *fileConfig) URL() string {
	return f.RemoteURL
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Listen() string {
	return f.Addr
}
