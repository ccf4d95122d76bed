package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the daylight preview tool
type Config struct {
	// Service configuration
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`

	// Location configuration
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Height    float64 `yaml:"height"`
	Timezone  string  `yaml:"timezone"`

	// Day curve configuration
	Date              string `yaml:"date"` // YYYY-MM-DD, empty means today
	SampleIntervalMin int    `yaml:"sample_interval_min"`

	// Transition configuration
	FromHue        float64 `yaml:"from_hue"`
	ToHue          float64 `yaml:"to_hue"`
	FromBrightness float64 `yaml:"from_brightness"`
	ToBrightness   float64 `yaml:"to_brightness"`
	Saturation     float64 `yaml:"saturation"`
	HueStep        float64 `yaml:"hue_step"`
	SaturationStep float64 `yaml:"saturation_step"`
	BrightnessStep float64 `yaml:"brightness_step"`
	MaxTicks       int     `yaml:"max_ticks"`
	BlendFrames    int     `yaml:"blend_frames"`

	// Optional YAML file layered between defaults and environment
	ConfigFile string `yaml:"-"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		ServiceName: "daylight-preview",
		LogLevel:    "info",
		// Helsinki coordinates
		Latitude:  60.1695,
		Longitude: 24.9354,
		Height:    0,
		Timezone:  "Europe/Helsinki",
		// Day curve defaults
		Date:              "",
		SampleIntervalMin: 30,
		// Transition defaults
		FromHue:        350,
		ToHue:          20,
		FromBrightness: 10,
		ToBrightness:   80,
		Saturation:     100,
		HueStep:        1,
		SaturationStep: 1,
		BrightnessStep: 2,
		MaxTicks:       1000,
		BlendFrames:    5,
	}
}

// LoadFromFile overrides config values with the ones present in a YAML file.
// Keys missing from the file keep their current value.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables with JEEVES_ prefix
func (c *Config) LoadFromEnv() {
	// Service configuration
	if v := os.Getenv("JEEVES_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("JEEVES_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("JEEVES_CONFIG_FILE"); v != "" {
		c.ConfigFile = v
	}

	// Location configuration
	if v := os.Getenv("JEEVES_LATITUDE"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			c.Latitude = lat
		}
	}
	if v := os.Getenv("JEEVES_LONGITUDE"); v != "" {
		if lon, err := strconv.ParseFloat(v, 64); err == nil {
			c.Longitude = lon
		}
	}
	if v := os.Getenv("JEEVES_HEIGHT"); v != "" {
		if height, err := strconv.ParseFloat(v, 64); err == nil {
			c.Height = height
		}
	}
	if v := os.Getenv("JEEVES_TIMEZONE"); v != "" {
		c.Timezone = v
	}

	// Day curve configuration
	if v := os.Getenv("JEEVES_DATE"); v != "" {
		c.Date = v
	}
	if v := os.Getenv("JEEVES_SAMPLE_INTERVAL_MIN"); v != "" {
		if interval, err := strconv.Atoi(v); err == nil {
			c.SampleIntervalMin = interval
		}
	}

	// Transition configuration
	if v := os.Getenv("JEEVES_HUE_STEP"); v != "" {
		if step, err := strconv.ParseFloat(v, 64); err == nil {
			c.HueStep = step
		}
	}
	if v := os.Getenv("JEEVES_SATURATION_STEP"); v != "" {
		if step, err := strconv.ParseFloat(v, 64); err == nil {
			c.SaturationStep = step
		}
	}
	if v := os.Getenv("JEEVES_BRIGHTNESS_STEP"); v != "" {
		if step, err := strconv.ParseFloat(v, 64); err == nil {
			c.BrightnessStep = step
		}
	}
	if v := os.Getenv("JEEVES_MAX_TICKS"); v != "" {
		if max, err := strconv.Atoi(v); err == nil {
			c.MaxTicks = max
		}
	}
}

// RegisterFlags binds command-line flags to config values on fs
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	// Service flags
	fs.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "Path to a YAML config file")

	// Location flags
	fs.Float64Var(&c.Latitude, "latitude", c.Latitude, "Geographic latitude for daylight calculation")
	fs.Float64Var(&c.Longitude, "longitude", c.Longitude, "Geographic longitude for daylight calculation")
	fs.Float64Var(&c.Height, "height", c.Height, "Observer height above sea level in meters")
	fs.StringVar(&c.Timezone, "timezone", c.Timezone, "IANA timezone used for the day curve")

	// Day curve flags
	fs.StringVar(&c.Date, "date", c.Date, "Day to preview (YYYY-MM-DD, default today)")
	fs.IntVar(&c.SampleIntervalMin, "sample-interval", c.SampleIntervalMin, "Minutes between day curve samples")

	// Transition flags
	fs.Float64Var(&c.FromHue, "from-hue", c.FromHue, "Transition start hue in degrees")
	fs.Float64Var(&c.ToHue, "to-hue", c.ToHue, "Transition target hue in degrees")
	fs.Float64Var(&c.FromBrightness, "from-brightness", c.FromBrightness, "Transition start brightness (0-100)")
	fs.Float64Var(&c.ToBrightness, "to-brightness", c.ToBrightness, "Transition target brightness (0-100)")
	fs.Float64Var(&c.Saturation, "saturation", c.Saturation, "Transition saturation (0-100)")
	fs.Float64Var(&c.HueStep, "hue-step", c.HueStep, "Maximum hue change per tick in degrees")
	fs.Float64Var(&c.SaturationStep, "saturation-step", c.SaturationStep, "Maximum saturation change per tick")
	fs.Float64Var(&c.BrightnessStep, "brightness-step", c.BrightnessStep, "Maximum brightness change per tick")
	fs.IntVar(&c.MaxTicks, "max-ticks", c.MaxTicks, "Upper bound on simulated transition ticks")
	fs.IntVar(&c.BlendFrames, "blend-frames", c.BlendFrames, "Frames of the one-shot blend")
}

// Load applies the configuration hierarchy: defaults → YAML file → env → flags.
// The YAML file is taken from --config or JEEVES_CONFIG_FILE.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet(c.ServiceName, pflag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	// Remember explicit flags, the file and env layers below would overwrite them
	explicit := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	path := c.ConfigFile
	if path == "" {
		path = os.Getenv("JEEVES_CONFIG_FILE")
	}
	if path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return err
		}
	}

	c.LoadFromEnv()

	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("failed to apply flag --%s: %w", name, err)
		}
	}
	c.ConfigFile = path

	return nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("Service name is required")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.Date != "" {
		if _, err := time.Parse(time.DateOnly, c.Date); err != nil {
			return fmt.Errorf("invalid date %q (must be YYYY-MM-DD): %w", c.Date, err)
		}
	}
	if c.SampleIntervalMin <= 0 || c.SampleIntervalMin > 24*60 {
		return fmt.Errorf("sample interval must be between 1 and 1440 minutes")
	}
	if c.HueStep <= 0 || c.SaturationStep <= 0 || c.BrightnessStep <= 0 {
		return fmt.Errorf("step sizes must be positive")
	}
	if c.MaxTicks <= 0 {
		return fmt.Errorf("max ticks must be positive")
	}
	if c.BlendFrames < 2 {
		return fmt.Errorf("blend frames must be at least 2")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Location returns the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Day returns local midnight of the configured date, or of today when unset
func (c *Config) Day(now time.Time) time.Time {
	loc := c.Location()
	if c.Date != "" {
		if day, err := time.ParseInLocation(time.DateOnly, c.Date, loc); err == nil {
			return day
		}
	}
	now = now.In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// SampleInterval returns the day curve sampling interval
func (c *Config) SampleInterval() time.Duration {
	return time.Duration(c.SampleIntervalMin) * time.Minute
}
