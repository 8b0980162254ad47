// Package kat parses NIST Known-Answer-Test response files and validates
// native implementations against them.
package kat

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TestCase is one `count = N` section of a .rsp file, fully hex-decoded.
type TestCase struct {
	Count int
	Seed  []byte
	PK    []byte
	SK    []byte
	CT    []byte
	SS    []byte
}

// requiredFields are the labels every section must carry, in file order.
var requiredFields = []string{"seed", "pk", "sk", "ct", "ss"}

// ParseError reports a structurally malformed .rsp file. A missing field
// aborts the whole parse: KAT files are homogeneous, so one incomplete
// section means a format version mismatch, not a bad vector.
type ParseError struct {
	Count int
	Field string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed KAT file: section count=%d is missing field %q", e.Count, e.Field)
	}
	return fmt.Sprintf("malformed KAT file: %s", e.Msg)
}

var (
	countRE = regexp.MustCompile(`count\s*=\s*(\d+)`)
	labelRE = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z]+)[ \t]*=`)
)

// Parse converts the text of a NIST .rsp file into test cases, in file
// order. Duplicate count values are kept as-is. A section whose hex
// fields fail to decode is skipped; a section missing a required field
// fails the whole parse. A file without any count marker yields zero
// cases and no error.
func Parse(data []byte) ([]TestCase, error) {
	text := string(data)
	marks := countRE.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		return nil, nil
	}

	var cases []TestCase
	for i, m := range marks {
		count, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("bad count value %q", text[m[2]:m[3]])}
		}

		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		fields := sectionFields(text[m[1]:end])

		for _, f := range requiredFields {
			if _, ok := fields[f]; !ok {
				return nil, &ParseError{Count: count, Field: f}
			}
		}

		tc := TestCase{Count: count}
		ok := true
		for _, f := range requiredFields {
			value, err := decodeHex(fields[f])
			if err != nil {
				// Undecodable hex fails this section only.
				ok = false
				break
			}
			switch f {
			case "seed":
				tc.Seed = value
			case "pk":
				tc.PK = value
			case "sk":
				tc.SK = value
			case "ct":
				tc.CT = value
			case "ss":
				tc.SS = value
			}
		}
		if ok {
			cases = append(cases, tc)
		}
	}
	return cases, nil
}

// sectionFields splits one section into label → raw value. A value runs
// from its `label =` token to the next label line or the section end, so
// multi-line hex is kept intact.
func sectionFields(section string) map[string]string {
	labels := labelRE.FindAllStringSubmatchIndex(section, -1)
	fields := make(map[string]string, len(labels))
	for i, l := range labels {
		name := strings.ToLower(section[l[2]:l[3]])
		end := len(section)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		fields[name] = section[l[1]:end]
	}
	return fields
}

// decodeHex strips comments and whitespace from a raw field value and
// hex-decodes the rest. Hex digits may be split across lines.
func decodeHex(raw string) ([]byte, error) {
	var b strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, r := range line {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			b.WriteRune(r)
		}
	}
	return hex.DecodeString(b.String())
}
