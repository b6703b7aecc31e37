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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const (
	LATIN1 = "latin-1"
	UTF8   = "utf-8"
)

var (
	errUnsupportedEncoding = errors.New("unsupported encoding")

	utf8BOM = []byte{0xef, 0xbb, 0xbf}
)

// lookupEncoding resolves an encoding label such as "latin-1", "ISO-8859-1" or "utf-8".
// Labels are tried as given and then with '-' and '_' removed ("latin-1" -> "latin1").
func lookupEncoding(name string) (encoding.Encoding, string, error) {
	candidates := []string{name, strings.NewReplacer("-", "", "_", "").Replace(name)}
	for _, candidate := range candidates {
		enc, err := ianaindex.IANA.Encoding(candidate)
		if err != nil || enc == nil {
			continue
		}
		canonical, err := ianaindex.IANA.Name(enc)
		if err != nil {
			canonical = candidate
		}
		return enc, canonical, nil
	}
	return nil, "", fmt.Errorf("%w: %q", errUnsupportedEncoding, name)
}

// decode converts the raw file contents to UTF-8 text. A leading UTF-8 byte order mark is dropped.
// Single byte charsets like ISO-8859-1 map every byte, so only UTF-8 input can fail here.
func decode(data []byte, encodingName string) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	enc, canonical, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	var t transform.Transformer
	if canonical == "UTF-8" {
		// the UTF-8 decoder substitutes U+FFFD for invalid sequences, the validator rejects them
		t = encoding.UTF8Validator
	} else {
		t = enc.NewDecoder()
	}
	text, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, err
	}
	return text, nil
}
