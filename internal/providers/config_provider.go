package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"gamepulse/internal/structures"
	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "GAMEPULSE_LOG_LEVEL")
	viper.BindEnv("tracker.refreshInterval", "GAMEPULSE_REFRESH_INTERVAL")
	viper.BindEnv("tracker.placesFile", "GAMEPULSE_PLACES_FILE")
	viper.BindEnv("snapshot.filePath", "GAMEPULSE_SNAPSHOT_PATH")
	viper.BindEnv("cache.enabled", "GAMEPULSE_CACHE_ENABLED")
	viper.BindEnv("cache.size", "GAMEPULSE_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "GamePulse"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
