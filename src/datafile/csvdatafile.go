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
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

const DELIMITER = ','

// ReadCsvTable loads the whole delimited file at filePath into memory, decoding it from
// encodingName first. The first record is the header.
//
// Rows shorter than the header are padded with empty cells. Rows longer than the header are
// rejected with ErrMalformed. Blank lines are skipped.
func ReadCsvTable(filePath string, encodingName string) (*Table, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrInputAccess, filePath, err)
	}
	log.Infof("read csv data file %q (%s)", filePath, humanize.Bytes(uint64(len(raw))))

	text, err := decode(raw, encodingName)
	if err != nil {
		return nil, &EncodingError{FilePath: filePath, Encoding: encodingName, Err: err}
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = DELIMITER
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := &Table{}
	header, err := reader.Read()
	if err == io.EOF {
		log.Infof("csv data file %q is empty", filePath)
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header of %q: %w", ErrMalformed, filePath, err)
	}
	table.Columns = header

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, filePath, err)
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: %q line %d: expected %d fields, saw %d",
				ErrMalformed, filePath, line, len(header), len(record))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		table.Rows = append(table.Rows, record)
	}
	log.Infof("parsed %q: %d columns, %d rows", filePath, table.NumColumns(), table.NumRows())
	return table, nil
}

// WriteCsv writes the table, header first, as UTF-8 delimited text to filePath.
// The data goes to a temporary file next to filePath which is renamed over filePath only
// after everything was written, so a failed write never leaves a partial output behind.
// An existing file at filePath keeps its permission bits, a new one gets 0644.
// A table without columns produces an empty file.
func (t *Table) WriteCsv(filePath string) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(filePath); statErr == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %q: %w", ErrOutputAccess, dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	writer := csv.NewWriter(tmp)
	writer.Comma = DELIMITER
	if t.NumColumns() > 0 {
		if err = writeRecord(writer, tmp, t.Columns); err != nil {
			return fmt.Errorf("%w: write header: %w", ErrOutputAccess, err)
		}
		for i, row := range t.Rows {
			if err = writeRecord(writer, tmp, row); err != nil {
				return fmt.Errorf("%w: write row %d: %w", ErrOutputAccess, i+1, err)
			}
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("%w: flush %q: %w", ErrOutputAccess, tmp.Name(), err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: chmod %q: %w", ErrOutputAccess, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrOutputAccess, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("%w: rename to %q: %w", ErrOutputAccess, filePath, err)
	}
	log.Infof("wrote csv data file %q: %d columns, %d rows", filePath, t.NumColumns(), t.NumRows())
	return nil
}

// writeRecord writes one record. csv.Writer emits a lone empty field as a blank line,
// which readers skip, so that record is written as a quoted empty field instead.
func writeRecord(writer *csv.Writer, out io.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return writer.Write(record)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(out, `""`+"\n")
	return err
}
