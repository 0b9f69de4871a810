// Copyright 2013 The Gorilla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Command maketables reads the Unicode Character Database files named in
// genconfig.yaml and regenerates tables_linebreak.go and
// tables_grapheme.go. Run it with `go generate` from the ucd package;
// never hand-edit its output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type genConfig struct {
	Version        string   `yaml:"version"`
	BaseURL        string   `yaml:"baseURL"`
	LineBreakFile  string   `yaml:"lineBreakFile"`
	GraphemeFile   string   `yaml:"graphemeFile"`
	ExcludeClasses []string `yaml:"excludeClasses"`
	LocalDataDir   string   `yaml:"localDataDir"`
}

var configPath = flag.String("config", "genconfig.yaml", "generator configuration file")

func loadConfig(path string) (*genConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open generator config %q", path)
	}
	defer f.Close()

	var cfg genConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "decode generator config %q", path)
	}
	return &cfg, nil
}

type codePoint struct {
	lo, hi uint32
	class  string
}

var codePointRe = regexp.MustCompile(`^([0-9A-F]+)(\.\.[0-9A-F]+)?;([A-Za-z0-9_]+)$`)

func parseCodePoint(line string, into map[string][]codePoint) error {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	m := codePointRe.FindStringSubmatch(line)
	if m == nil {
		return errors.Errorf("unparsable UCD line: %q", line)
	}
	lo, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return errors.Wrapf(err, "parse low bound in %q", line)
	}
	hi := lo
	if m[2] != "" {
		hi, err = strconv.ParseUint(m[2][2:], 16, 32)
		if err != nil {
			return errors.Wrapf(err, "parse high bound in %q", line)
		}
	}
	into[m[3]] = append(into[m[3]], codePoint{uint32(lo), uint32(hi), m[3]})
	return nil
}

func openDataFile(cfg *genConfig, name string) (io.ReadCloser, error) {
	if cfg.LocalDataDir != "" {
		f, err := os.Open(cfg.LocalDataDir + "/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "open local UCD file %q", name)
		}
		return f, nil
	}
	resp, err := http.Get(cfg.BaseURL + name)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch UCD file %q", name)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("fetch UCD file %q: status %s", name, resp.Status)
	}
	return resp.Body, nil
}

func loadCodePoints(cfg *genConfig, name string) (map[string][]codePoint, error) {
	rc, err := openDataFile(cfg, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	codePoints := make(map[string][]codePoint)
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		if err := parseCodePoint(scanner.Text(), codePoints); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read UCD file %q", name)
	}
	return codePoints, nil
}

func excluded(class string, list []string) bool {
	for _, c := range list {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// lineBreakClassNames is the set of Line_Break property values this
// package carries a LineBreakClass constant for. Every value
// LineBreak.txt can assign appears here under the same two- or
// three-letter identifier UAX #14 uses, which is also the constant name
// in linebreakclass.go, so a parsed class folds straight into Go source
// with no translation table.
var lineBreakClassNames = map[string]bool{
	"OP": true, "CL": true, "CP": true, "QU": true, "GL": true, "NS": true,
	"EX": true, "SY": true, "IS": true, "PR": true, "PO": true, "NU": true,
	"AL": true, "HL": true, "ID": true, "IN": true, "HY": true, "BA": true,
	"BB": true, "B2": true, "ZW": true, "CM": true, "WJ": true, "H2": true,
	"H3": true, "JL": true, "JV": true, "JT": true, "RI": true, "EB": true,
	"EM": true, "ZWJ": true, "CB": true, "AI": true, "BK": true, "CJ": true,
	"CR": true, "LF": true, "NL": true, "SA": true, "SG": true, "SP": true,
	"XX": true,
}

// graphemeClassIdents maps the Grapheme_Cluster_Break property values
// GraphemeBreakProperty.txt assigns to the GraphemeClusterClass constant
// each names in graphemeclass.go; unlike the line-break classes these
// don't already match Go identifier spelling (e.g. "Regional_Indicator").
var graphemeClassIdents = map[string]string{
	"CR":                 "GCBCR",
	"LF":                 "GCBLF",
	"Control":            "GCBControl",
	"Extend":             "GCBExtend",
	"ZWJ":                "GCBZWJ",
	"Regional_Indicator": "GCBRegionalIndicator",
	"Prepend":            "GCBPrepend",
	"SpacingMark":        "GCBSpacingMark",
	"L":                  "GCBL",
	"V":                  "GCBV",
	"T":                  "GCBT",
	"LV":                 "GCBLV",
	"LVT":                "GCBLVT",
}

func main() {
	flag.Parse()
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lineBreak, err := loadCodePoints(cfg, cfg.LineBreakFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	grapheme, err := loadCodePoints(cfg, cfg.GraphemeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeLineBreakTable("tables_linebreak.go", cfg.Version, cfg.LineBreakFile, lineBreak, cfg.ExcludeClasses); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeGraphemeTable("tables_grapheme.go", cfg.Version, cfg.GraphemeFile, grapheme, cfg.ExcludeClasses); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// foldedRange is one run of contiguous codepoints sharing a class, after
// adjacent or overlapping entries from the source file are merged.
type foldedRange struct {
	lo, hi uint32
}

// foldRanges sorts cp by lo in place, then merges its touching or
// overlapping entries.
func foldRanges(cp []codePoint) []foldedRange {
	if len(cp) == 0 {
		return nil
	}
	sort.Slice(cp, func(i, j int) bool { return cp[i].lo < cp[j].lo })
	folded := []foldedRange{{cp[0].lo, cp[0].hi}}
	for _, c := range cp[1:] {
		last := &folded[len(folded)-1]
		if c.lo <= last.hi+1 {
			if c.hi > last.hi {
				last.hi = c.hi
			}
			continue
		}
		folded = append(folded, foldedRange{c.lo, c.hi})
	}
	return folded
}

// writeRangeTable prints a *unicode.RangeTable literal for ranges,
// splitting the 16-bit and 32-bit halves the way the standard library's
// own generated tables do.
func writeRangeTable(w io.Writer, ranges []foldedRange) {
	var r16, r32 []string
	for _, r := range ranges {
		if r.hi <= 0xFFFF {
			r16 = append(r16, fmt.Sprintf("{0x%04X, 0x%04X, 1}", r.lo, r.hi))
		} else if r.lo > 0xFFFF {
			r32 = append(r32, fmt.Sprintf("{0x%04X, 0x%04X, 1}", r.lo, r.hi))
		} else {
			r16 = append(r16, fmt.Sprintf("{0x%04X, 0xFFFF, 1}", r.lo))
			r32 = append(r32, fmt.Sprintf("{0x10000, 0x%04X, 1}", r.hi))
		}
	}
	fmt.Fprint(w, "&unicode.RangeTable{")
	if len(r16) > 0 {
		fmt.Fprintf(w, "R16: []unicode.Range16{%s}", strings.Join(r16, ", "))
	}
	if len(r32) > 0 {
		if len(r16) > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "R32: []unicode.Range32{%s}", strings.Join(r32, ", "))
	}
	fmt.Fprint(w, "}")
}

// writeLineBreakTable emits lineBreakExact (singleton codepoints) and
// lineBreakRanges (everything wider than one codepoint), sorted by class
// name for a deterministic diff between regenerations.
func writeLineBreakTable(outFile, version, source string, codePoints map[string][]codePoint, exclude []string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "create %q", outFile)
	}
	defer f.Close()

	fmt.Fprintf(f, "// Code generated by maketables.go from %s. DO NOT EDIT.\n", source)
	fmt.Fprintf(f, "//\n// Source: Unicode %s UCD, %s.\n\npackage ucd\n\nimport \"unicode\"\n\n", version, source)

	classes := make([]string, 0, len(codePoints))
	for class := range codePoints {
		if excluded(class, exclude) {
			continue
		}
		if !lineBreakClassNames[class] {
			return errors.Errorf("%s: unknown Line_Break class %q", source, class)
		}
		classes = append(classes, class)
	}
	sort.Strings(classes)

	fmt.Fprint(f, "// lineBreakExact holds single codepoints, keyed directly by value.\n")
	fmt.Fprint(f, "var lineBreakExact = map[rune]LineBreakClass{\n")
	for _, class := range classes {
		for _, r := range foldRanges(codePoints[class]) {
			if r.lo == r.hi {
				fmt.Fprintf(f, "\t0x%04X: %s,\n", r.lo, class)
			}
		}
	}
	fmt.Fprint(f, "}\n\n")

	fmt.Fprint(f, "// lineBreakRanges lists every class assignment wider than one\n")
	fmt.Fprint(f, "// codepoint. Entries are checked in order; the first match wins.\n")
	fmt.Fprint(f, "var lineBreakRanges = []struct {\n\ttable *unicode.RangeTable\n\tclass LineBreakClass\n}{\n")
	for _, class := range classes {
		for _, r := range foldRanges(codePoints[class]) {
			if r.lo == r.hi {
				continue
			}
			fmt.Fprint(f, "\t{")
			writeRangeTable(f, []foldedRange{r})
			fmt.Fprintf(f, ", %s},\n", class)
		}
	}
	fmt.Fprint(f, "}\n")
	return nil
}

// writeGraphemeTable emits graphemeRanges the same shape
// graphemeclass.go's GetGraphemeClusterClass already walks, folding
// every assigned codepoint (singleton or range alike) into range-table
// entries; there's no exact/range split here since grapheme lookups
// aren't on as hot a path as line-break ones.
func writeGraphemeTable(outFile, version, source string, codePoints map[string][]codePoint, exclude []string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "create %q", outFile)
	}
	defer f.Close()

	fmt.Fprintf(f, "// Code generated by maketables.go from %s. DO NOT EDIT.\n", source)
	fmt.Fprintf(f, "//\n// Source: Unicode %s UCD, %s.\n\npackage ucd\n\nimport \"unicode\"\n\n", version, source)
	fmt.Fprint(f, "func inRange(r rune, t *unicode.RangeTable) bool {\n\treturn unicode.Is(t, r)\n}\n\n")

	classes := make([]string, 0, len(codePoints))
	for class := range codePoints {
		if excluded(class, exclude) {
			continue
		}
		if _, ok := graphemeClassIdents[class]; !ok {
			return errors.Errorf("%s: unknown Grapheme_Cluster_Break class %q", source, class)
		}
		classes = append(classes, class)
	}
	sort.Strings(classes)

	fmt.Fprint(f, "var graphemeRanges = []struct {\n\ttable *unicode.RangeTable\n\tclass GraphemeClusterClass\n}{\n")
	for _, class := range classes {
		ident := graphemeClassIdents[class]
		for _, r := range foldRanges(codePoints[class]) {
			fmt.Fprint(f, "\t{")
			writeRangeTable(f, []foldedRange{r})
			fmt.Fprintf(f, ", %s},\n", ident)
		}
	}
	fmt.Fprint(f, "}\n")
	return nil
}
