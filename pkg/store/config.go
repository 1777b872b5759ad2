package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything the store constructor needs: where the data
// lives and which (app id, user) pair scopes the collection. It is passed in
// explicitly; nothing in this package reads ambient globals.
type Config interface {
	BasePath() string
	AppID() string
	User() string
	Guest() bool
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.mindnote.db")
	viper.SetDefault("app-id", "default-app-id")
	viper.SetDefault("user", "guest")
	viper.SetDefault("guest", true)
	viper.SetConfigName(".mindnote") // .yaml is implicit
	viper.SetEnvPrefix("MINDNOTE")
	viper.AutomaticEnv()

	if override := os.Getenv("MINDNOTE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		App:  viper.GetString("app-id"),
		Name: viper.GetString("user"),
		Anon: viper.GetBool("guest"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	App  string `json:"app-id"`
	Name string `json:"user"`
	Anon bool   `json:"guest"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) AppID() string    { return f.App }
func (f *fileConfig) User() string     { return f.Name }
func (f *fileConfig) Guest() bool      { return f.Anon }
