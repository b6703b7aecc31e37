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
	"errors"
	"fmt"
)

var (
	// ErrInputAccess is wrapped by every failure to open or read the input file.
	// The underlying os error is kept, so errors.Is(err, fs.ErrNotExist) still works.
	ErrInputAccess = errors.New("input file not accessible")

	// ErrOutputAccess is wrapped by every failure to create, write or rename the output file.
	ErrOutputAccess = errors.New("output file not writable")

	// ErrMalformed is returned when the decoded text is not a valid delimited table.
	ErrMalformed = errors.New("malformed csv data")
)

type EncodingError struct {
	FilePath string
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode %q as %s: %s", e.FilePath, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
