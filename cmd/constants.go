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

const (
	// Both paths are relative to the working directory.
	INPUT_FILE_NAME  = "DataCoSupplyChainDataset.csv"
	OUTPUT_FILE_NAME = "Global_Logistics_Anonymised.csv"

	LOG_FILE_NAME = "data-anonymiser.log"

	CONFIG_FILE_ENV_VAR      = "DATA_ANONYMISER_CONFIG_FILE"
	DEFAULT_CONFIG_FILE_NAME = "data-anonymiser-config"
)
