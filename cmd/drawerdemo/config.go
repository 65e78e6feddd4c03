package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// demoConfig holds the demo's tuning, loaded from an optional config file
// with DRAWERDEMO_-prefixed environment overrides.
type demoConfig struct {
	Gravity          float64
	Elasticity       float64
	BounceElasticity float64
	BounceMagnitude  float64
	RevealFraction   float64 // drawer open width as a fraction of the terminal width
	FPS              int
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix DRAWERDEMO_.
func loadConfig() (demoConfig, error) {
	v := viper.New()

	v.SetDefault("gravity", 2.0)
	v.SetDefault("elasticity", 0.0)
	v.SetDefault("bounce_elasticity", 0.5)
	v.SetDefault("bounce_magnitude", 60.0)
	v.SetDefault("reveal_fraction", 0.4)
	v.SetDefault("fps", 60)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("DRAWERDEMO_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("drawerdemo")
	}

	v.SetEnvPrefix("DRAWERDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	cfg := demoConfig{
		Gravity:          v.GetFloat64("gravity"),
		Elasticity:       v.GetFloat64("elasticity"),
		BounceElasticity: v.GetFloat64("bounce_elasticity"),
		BounceMagnitude:  v.GetFloat64("bounce_magnitude"),
		RevealFraction:   v.GetFloat64("reveal_fraction"),
		FPS:              v.GetInt("fps"),
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.RevealFraction <= 0 || cfg.RevealFraction >= 1 {
		cfg.RevealFraction = 0.4
	}
	return cfg, nil
}
