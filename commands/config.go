package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/penwyp/go-expiry-bar/internal/util"
)

const envPrefix = "EXPIRY_BAR"

// loadConfig fills every flag not given on the command line from the config
// file or an EXPIRY_BAR_* environment variable. Command-line values win,
// then the environment, then the file.
func loadConfig(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(expandPath(configFile))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(expandPath(defaultConfigDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var applyErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if applyErr != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, configValue(v, f.Name)); err != nil {
			applyErr = fmt.Errorf("invalid config value for %s: %w", f.Name, err)
		}
	})
	if applyErr != nil {
		return applyErr
	}

	if used := v.ConfigFileUsed(); used != "" {
		util.LogDebugf("Loaded config from %s", used)
	}
	return nil
}

// configValue reads key as flag text. Unquoted YAML dates arrive as
// time.Time and are written back in a form the date parser accepts.
func configValue(v *viper.Viper, key string) string {
	t, ok := v.Get(key).(time.Time)
	if !ok {
		return v.GetString(key)
	}
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}
