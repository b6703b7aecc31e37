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
package utils

import (
	"strings"

	"github.com/samber/lo"
)

// QuoteAll renders names the way they are shown in log lines: "a", "b".
func QuoteAll(names []string) string {
	return strings.Join(lo.Map(names, func(name string, _ int) string {
		return `"` + name + `"`
	}), ", ")
}
