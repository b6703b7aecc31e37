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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dataco-labs/data-anonymiser/src/anonymiser"
	"github.com/dataco-labs/data-anonymiser/src/config"
	"github.com/dataco-labs/data-anonymiser/src/utils"
)

var (
	cfgFile string
	logDir  string
)

var rootCmd = &cobra.Command{
	Use:   "data-anonymiser",
	Short: "Remove customer PII columns from the DataCo supply chain dataset",
	Long: `Reads ` + INPUT_FILE_NAME + ` from the working directory, drops the columns holding
customer personal data and saves the remaining columns to ` + OUTPUT_FILE_NAME + `.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		overrides, err := initConfig(cmd)
		if err != nil {
			utils.ErrExit("load config: %w", err)
		}
		if err := config.ValidateLogLevel(); err != nil {
			utils.ErrExit("%w", err)
		}
		InitLogging(logDir)
		for _, o := range overrides {
			log.Infof("flag %q set from config key %q: %q", o.FlagName, o.ConfigKey, o.Value)
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		anonymiseDataset(cmd)
	},
}

func anonymiseDataset(cmd *cobra.Command) {
	a := anonymiser.NewColumnAnonymiser(anonymiser.PII_COLUMNS)
	a.Out = cmd.OutOrStdout()
	_, err := a.Run(INPUT_FILE_NAME, OUTPUT_FILE_NAME)
	if err != nil {
		utils.ErrExit("anonymise dataset: %w", err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.ErrExit("%w", err)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	registerCommonGlobalFlags(rootCmd)
}

func registerCommonGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&cfgFile, "config-file", "c", "",
		"path to a YAML config file (default $HOME/"+DEFAULT_CONFIG_FILE_NAME+".yaml)")

	cmd.PersistentFlags().StringVarP(&config.LogLevel, "log-level", "l", config.INFO,
		"log level for the log file. Accepted values: (trace, debug, info, warn, error, fatal, panic)")

	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"directory under which logs/"+LOG_FILE_NAME+" is written (logging is off when empty)")
}
