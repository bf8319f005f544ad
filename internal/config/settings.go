package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the knobs for one invocation of the arena.
type Settings struct {
	Setup         string `mapstructure:"setup"`
	Seed          int64  `mapstructure:"seed"`
	Transcript    string `mapstructure:"transcript"`
	LogLevel      string `mapstructure:"logLevel"`
	LogFile       string `mapstructure:"logFile"`
	Events        string `mapstructure:"events"`
	Runs          int    `mapstructure:"runs"`
	Summary       string `mapstructure:"summary"`
	Quiet         bool   `mapstructure:"quiet"`
	Narrate       bool   `mapstructure:"narrate"`
	HitChance     int    `mapstructure:"hitChance"`
	UpgradePolicy string `mapstructure:"upgradePolicy"`
	Profile       struct {
		Health int `mapstructure:"health"`
		Ammo   int `mapstructure:"ammo"`
		Lives  int `mapstructure:"lives"`
	} `mapstructure:"profile"`
}

// Base returns the run-wide starting vitals.
func (s Settings) Base() Vitals {
	return Vitals{Health: s.Profile.Health, Ammo: s.Profile.Ammo, Lives: s.Profile.Lives}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("setup", "setup.txt")
	v.SetDefault("seed", 0)
	v.SetDefault("transcript", "log.txt")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("events", "")
	v.SetDefault("runs", 1)
	v.SetDefault("summary", "summary.json")
	v.SetDefault("quiet", false)
	v.SetDefault("narrate", true)

	v.SetDefault("hitChance", 70)
	v.SetDefault("upgradePolicy", "any-kill")

	v.SetDefault("profile.health", 1)
	v.SetDefault("profile.ammo", 10)
	v.SetDefault("profile.lives", 2)
}

// LoadSettings layers defaults, an optional arena.yaml in configDir, ARENA_
// environment variables and the given flags, in increasing priority.
func LoadSettings(v *viper.Viper, configDir string, flags *pflag.FlagSet) (Settings, error) {
	var s Settings
	setDefaults(v)

	v.SetConfigName("arena")
	v.SetConfigType("yaml")
	if configDir == "" {
		configDir = "."
	}
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return s, configErrorf("error reading config file: %v", err)
		}
	}

	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(flagKey(f.Name), f)
			}
		})
		if bindErr != nil {
			return s, configErrorf("bind flags: %v", bindErr)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, configErrorf("decode settings: %v", err)
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	if s.Runs < 1 {
		return configErrorf("runs must be at least 1, got %d", s.Runs)
	}
	if s.HitChance < 0 || s.HitChance > 100 {
		return configErrorf("hitChance must be within 0..100, got %d", s.HitChance)
	}
	switch s.UpgradePolicy {
	case "any-kill", "default-kill":
	default:
		return configErrorf("unknown upgradePolicy %q (want any-kill or default-kill)", s.UpgradePolicy)
	}
	return s.Base().validate()
}

// flagKey maps a kebab-case flag to its settings key: "log-level" becomes
// "logLevel" and "profile-ammo" becomes "profile.ammo".
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "profile-"); ok {
		return "profile." + flagKey(rest)
	}
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
