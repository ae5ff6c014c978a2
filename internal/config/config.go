package config

import "github.com/spf13/viper"

// Config holds the application configuration loaded from config.yaml and
// the environment.
type Config struct {
	ServerAddress string `mapstructure:"server_address"`
	DBSource      string `mapstructure:"db_source"`
	DataDir       string `mapstructure:"data_dir"`
	DefaultTable  string `mapstructure:"default_table"`
}

// LoadConfig reads configuration from the given directory, with
// environment variables overriding file values.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
