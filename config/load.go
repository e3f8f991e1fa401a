package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

// Configuration keys, shared by the config file, ZOOMVIEW_* environment
// variables and bound command-line flags.
const (
	KeyWidth         = "window.width"
	KeyHeight        = "window.height"
	KeyTPS           = "window.tps"
	KeyStartVelocity = "zoom.start_velocity"
	KeyStep          = "zoom.step"
	KeyMinLevel      = "camera.min_level"
	KeyMaxLevel      = "camera.max_level"
	KeyPanSpeed      = "camera.pan_speed"
	KeyFlyDuration   = "camera.fly_duration"
	KeyHUD           = "hud.visible"
	KeyManifest      = "scene.manifest"
	KeyScheme        = "scene.scheme"
	KeyDebug         = "debug"
)

// NewViper returns a viper instance whose defaults are the current global
// configuration values.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ZOOMVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyWidth, C.Width)
	v.SetDefault(KeyHeight, C.Height)
	v.SetDefault(KeyTPS, C.TPS)
	v.SetDefault(KeyStartVelocity, Zoom.Animation.StartVelocity)
	v.SetDefault(KeyStep, Zoom.Animation.Step)
	v.SetDefault(KeyMinLevel, Camera.MinLevel)
	v.SetDefault(KeyMaxLevel, Camera.MaxLevel)
	v.SetDefault(KeyPanSpeed, Camera.PanSpeed)
	v.SetDefault(KeyFlyDuration, Camera.FlyDuration)
	v.SetDefault(KeyHUD, HUD.Visible)
	v.SetDefault(KeyManifest, Scene.Manifest)
	v.SetDefault(KeyScheme, Scene.Scheme)
	v.SetDefault(KeyDebug, Debug.Enabled)
	return v
}

// Load reads the config file (if any) into v and applies the result to the
// global configuration. An empty path looks for zoomview.yaml in the
// working directory and tolerates its absence.
func Load(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("zoomview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}
	return Apply(v)
}

// Apply copies the values of v into the global configuration and
// validates them.
func Apply(v *viper.Viper) error {
	C.Width = v.GetInt(KeyWidth)
	C.Height = v.GetInt(KeyHeight)
	C.TPS = v.GetInt(KeyTPS)
	Zoom.Animation.StartVelocity = v.GetFloat64(KeyStartVelocity)
	Zoom.Animation.Step = v.GetFloat64(KeyStep)
	Camera.MinLevel = v.GetFloat64(KeyMinLevel)
	Camera.MaxLevel = v.GetFloat64(KeyMaxLevel)
	Camera.PanSpeed = v.GetFloat64(KeyPanSpeed)
	Camera.FlyDuration = float32(v.GetFloat64(KeyFlyDuration))
	HUD.Visible = v.GetBool(KeyHUD)
	Scene.Manifest = v.GetString(KeyManifest)
	Scene.Scheme = v.GetString(KeyScheme)
	Debug.Enabled = v.GetBool(KeyDebug)
	return Validate()
}

// Validate checks the global configuration for values the viewer cannot
// run with.
func Validate() error {
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, C.Width, C.Height)
	}
	if C.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, C.TPS)
	}
	if err := Zoom.Animation.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if Camera.MinLevel >= Camera.MaxLevel {
		return fmt.Errorf("%w: camera levels [%v, %v]", ErrInvalid, Camera.MinLevel, Camera.MaxLevel)
	}
	if Camera.FlyDuration <= 0 {
		return fmt.Errorf("%w: fly duration %v", ErrInvalid, Camera.FlyDuration)
	}
	return nil
}
