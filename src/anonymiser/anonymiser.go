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
package anonymiser

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	mapset "github.com/deckarep/golang-set/v2"
	log "github.com/sirupsen/logrus"

	"github.com/dataco-labs/data-anonymiser/src/config"
	"github.com/dataco-labs/data-anonymiser/src/datafile"
	"github.com/dataco-labs/data-anonymiser/src/utils"
)

// Columns of the supply chain dataset that identify a customer.
// Names are matched exactly against the header of the input file.
var PII_COLUMNS = []string{
	"Customer Email",
	"Customer City",
	"Customer Password",
	"Customer Fname",
	"Customer Lname",
	"Customer Street",
	"Customer State",
	"Customer Zipcode",
	"Order Zipcode",
	"Product Image",
}

// The upstream export is not UTF-8; latin-1 decodes any byte sequence.
const DEFAULT_INPUT_ENCODING = datafile.LATIN1

type ColumnCounts struct {
	Original int
	Cleaned  int
}

func (c ColumnCounts) Removed() int {
	return c.Original - c.Cleaned
}

// ColumnAnonymiser removes a fixed set of columns from a delimited file.
type ColumnAnonymiser struct {
	piiColumns mapset.Set[string]

	// InputEncoding is the character encoding of the input file.
	InputEncoding string
	// Out receives the completion summary. Defaults to stdout.
	Out io.Writer
}

func NewColumnAnonymiser(piiColumns []string) *ColumnAnonymiser {
	return &ColumnAnonymiser{
		piiColumns:    mapset.NewThreadUnsafeSet(piiColumns...),
		InputEncoding: DEFAULT_INPUT_ENCODING,
		Out:           os.Stdout,
	}
}

// Anonymise copies inputPath to outputPath without the columns named in piiColumns and
// prints a summary to stdout.
func Anonymise(inputPath, outputPath string, piiColumns []string) (*ColumnCounts, error) {
	return NewColumnAnonymiser(piiColumns).Run(inputPath, outputPath)
}

// Run loads inputPath, drops the PII columns present in it and writes the rest to outputPath,
// replacing any existing file. Nothing is written when loading fails.
func (a *ColumnAnonymiser) Run(inputPath, outputPath string) (*ColumnCounts, error) {
	table, err := datafile.ReadCsvTable(inputPath, a.InputEncoding)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", inputPath, err)
	}

	dropped := table.DroppedColumns(a.piiColumns)
	log.Infof("dropping %d PII columns from %q: %s", len(dropped), inputPath, utils.QuoteAll(dropped))
	absent := a.piiColumns.Difference(mapset.NewThreadUnsafeSet(table.Columns...))
	if absent.Cardinality() > 0 {
		log.Debugf("PII columns not present in %q: %s", inputPath, utils.QuoteAll(absent.ToSlice()))
	}
	cleaned := table.DropColumns(a.piiColumns)

	err = cleaned.WriteCsv(outputPath)
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", outputPath, err)
	}

	counts := &ColumnCounts{
		Original: table.NumColumns(),
		Cleaned:  cleaned.NumColumns(),
	}
	log.Infof("removed %d of %d columns from %q", counts.Removed(), counts.Original, inputPath)
	if config.IsLogLevelDebugOrBelow() {
		log.Debugf("column counts: %s", spew.Sdump(counts))
	}
	a.printSummary(outputPath, counts)
	return counts, nil
}

func (a *ColumnAnonymiser) printSummary(outputPath string, counts *ColumnCounts) {
	msg := fmt.Sprintf("GDPR cleaning complete. Saved as %s\nOriginal columns: %d\nCleaned columns: %d\n",
		outputPath, counts.Original, counts.Cleaned)
	log.Info(msg)
	fmt.Fprint(a.Out, msg)
}
