package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type TrackerConfig struct {
	PlacesFile      string        `yaml:"placesFile" validate:"required|unixPath"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
	WorkerCount     int           `yaml:"workerCount"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"`
}

type RobloxConfig struct {
	UniverseURL   string `yaml:"universeUrl" validate:"required"`
	GamesURL      string `yaml:"gamesUrl" validate:"required|fullUrl"`
	ThumbnailsURL string `yaml:"thumbnailsUrl" validate:"required|fullUrl"`
	ThumbnailSize string `yaml:"thumbnailSize"`
}

type SnapshotConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
	Compress bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Tracker   TrackerConfig  `yaml:"tracker"`
	Roblox    RobloxConfig   `yaml:"roblox"`
	Snapshot  SnapshotConfig `yaml:"snapshot"`
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}

type Route struct {
	Url     string
	Handler http.Handler
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	RunOnce    bool
}
