// Package config wires application settings through viper: typed defaults, a
// TOML file under the user config directory and a curated set of environment
// overrides.
package config

import (
	"errors"
	"strings"

	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted configuration keys onto environment variable
// naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup primes viper with factory defaults, binds the exposed environment
// variables and loads the config file when one exists. A missing file is not
// an error, defaults cover every key.
func Setup() error {
	viper.SetConfigName(constant.Mu)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Mu)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return err
}
