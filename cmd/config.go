/*
Copyright (c) YugabyteDB, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fatih/color"
	goerrors "github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Only ambient settings can come from the config file. The dataset paths and the
// PII column list are fixed.
var allowedGlobalConfigKeys = mapset.NewThreadUnsafeSet[string](
	"log-level", "log-dir",
)

// ConfigFlagOverride represents a CLI flag whose value was set from the config file.
type ConfigFlagOverride struct {
	FlagName  string
	ConfigKey string
	Value     string
}

/*
initConfig loads the optional config file and applies it to the flags of cmd.

	Which file is used:
	 1. --config-file, if given.
	 2. $DATA_ANONYMISER_CONFIG_FILE, if set.
	 3. ~/data-anonymiser-config.yaml, if it exists.

	Flags given on the command line always win over config values.
*/
func initConfig(cmd *cobra.Command) ([]ConfigFlagOverride, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if os.Getenv(CONFIG_FILE_ENV_VAR) != "" {
		v.SetConfigFile(os.Getenv(CONFIG_FILE_ENV_VAR))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(home)
		v.SetConfigName(DEFAULT_CONFIG_FILE_NAME)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err := validateConfigFile(v)
	if err != nil {
		return nil, err
	}

	overrides, err := bindCobraFlagsToViper(cmd, v)
	if err != nil {
		return nil, fmt.Errorf("failed to bind cobra flags to viper: %w", err)
	}
	return overrides, nil
}

func validateConfigFile(v *viper.Viper) error {
	invalidKeys := mapset.NewThreadUnsafeSet[string]()
	for _, key := range v.AllKeys() {
		if !allowedGlobalConfigKeys.Contains(key) {
			invalidKeys.Add(key)
		}
	}
	if invalidKeys.Cardinality() == 0 {
		return nil
	}
	keys := invalidKeys.ToSlice()
	sort.Strings(keys)
	fmt.Fprintf(os.Stderr, "%s [%s]\n", color.RedString("Invalid config keys:"), strings.Join(keys, ", "))
	return goerrors.Errorf("found invalid keys in config file %q: %v", v.ConfigFileUsed(), keys)
}

// bindCobraFlagsToViper fills every flag that was not set on the command line from the config.
func bindCobraFlagsToViper(cmd *cobra.Command, v *viper.Viper) ([]ConfigFlagOverride, error) {
	var overrides []ConfigFlagOverride
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		val := v.GetString(f.Name)
		if err := cmd.Flags().Set(f.Name, val); err != nil {
			bindErr = fmt.Errorf("set flag %q from config: %w", f.Name, err)
			return
		}
		overrides = append(overrides, ConfigFlagOverride{FlagName: f.Name, ConfigKey: f.Name, Value: val})
	})
	return overrides, bindErr
}
