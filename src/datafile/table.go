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
package datafile

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Table is a delimited file held in memory.
// Every row has exactly len(Columns) cells; an empty cell is a missing value.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

// DropColumns returns a new table without the columns whose header is in names.
// Matching is exact and case sensitive. Names that are not headers of t are ignored, and
// when a header occurs more than once every column carrying it is dropped.
func (t *Table) DropColumns(names mapset.Set[string]) *Table {
	keep := lo.FilterMap(t.Columns, func(name string, i int) (int, bool) {
		return i, !names.Contains(name)
	})
	project := func(row []string, _ int) []string {
		return lo.Map(keep, func(idx int, _ int) string {
			return row[idx]
		})
	}
	return &Table{
		Columns: project(t.Columns, 0),
		Rows:    lo.Map(t.Rows, project),
	}
}

// DroppedColumns lists the headers of t that DropColumns(names) would remove, in table order.
func (t *Table) DroppedColumns(names mapset.Set[string]) []string {
	return lo.Filter(t.Columns, func(name string, _ int) bool {
		return names.Contains(name)
	})
}
