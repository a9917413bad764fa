// Command terminfodump loads a compiled terminal description, either from
// an explicit path or by searching the standard terminfo directories for a
// named terminal, and prints its capabilities as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/xyproto/env/v2"

	"github.com/go-termini/termini"
	"github.com/go-termini/termini/caps"
	"github.com/go-termini/termini/internal/locate"

	"golang.org/x/text/encoding/charmap"
)

func main() {
	termName := flag.String("term", "", "terminal name to look up (defaults to $TERM)")
	path := flag.String("path", "", "path to a compiled terminfo file, bypassing the search path")
	showBools := flag.Bool("bools", false, "include boolean capabilities")
	showNumbers := flag.Bool("numbers", false, "include numeric capabilities")
	showStrings := flag.Bool("strings", false, "include string capabilities")
	showExtended := flag.Bool("extended", false, "include extended capabilities")
	showAll := flag.Bool("all", false, "include every capability class")
	pretty := flag.Bool("pretty", false, "pretty-print JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -all\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -term xterm-256color -strings -pretty\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -path ./xterm-256color -all\n", os.Args[0])
	}
	flag.Parse()

	info, err := load(*path, *termName)
	if err != nil {
		log.Fatalf("terminfodump: %v", err)
	}

	if !*showBools && !*showNumbers && !*showStrings && !*showExtended && !*showAll {
		*showAll = true
	}

	result := map[string]interface{}{
		"name":        info.Name(),
		"aliases":     info.Aliases(),
		"description": info.Description(),
	}
	if *showBools || *showAll {
		result["bools"] = dumpBools(info)
	}
	if *showNumbers || *showAll {
		result["numbers"] = dumpNumbers(info)
	}
	if *showStrings || *showAll {
		result["strings"] = dumpStrings(info)
	}
	if *showExtended || *showAll {
		result["extended"] = dumpExtended(info)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("terminfodump: encoding output: %v", err)
	}
}

// load opens a compiled description either from an explicit path or, when
// path is empty, by looking up name (or $TERM when name is empty) first
// under $TERMINFO, if set, and then in the standard terminfo directories.
func load(path, name string) (*terminfo.TermInfo, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return terminfo.Parse(f)
	}

	if name == "" {
		name = env.Str("TERM", "")
	}
	if name == "" {
		return nil, fmt.Errorf("no -term given and $TERM is not set")
	}

	var f *os.File
	var err error
	if dir := env.Str("TERMINFO", ""); dir != "" {
		f, err = os.Open(dir + "/" + string(name[0]) + "/" + name)
	}
	if f == nil {
		f, err = locate.FromName(name)
	}
	if err != nil {
		return nil, fmt.Errorf("locating %q: %w", name, err)
	}
	defer f.Close()
	return terminfo.Parse(f)
}

func dumpBools(info *terminfo.TermInfo) map[string]bool {
	out := make(map[string]bool, caps.BoolCount)
	for i := 0; i < caps.BoolCount; i++ {
		if v := info.Flag(caps.BoolCap(i)); v {
			out[caps.BoolCap(i).String()] = v
		}
	}
	return out
}

func dumpNumbers(info *terminfo.TermInfo) map[string]int32 {
	out := make(map[string]int32)
	for i := 0; i < caps.NumberCount; i++ {
		if v, ok := info.Number(caps.NumberCap(i)); ok {
			out[caps.NumberCap(i).String()] = v
		}
	}
	return out
}

func dumpStrings(info *terminfo.TermInfo) map[string]string {
	out := make(map[string]string)
	for i := 0; i < caps.StringCount; i++ {
		cap := caps.StringCap(i)
		raw, ok := info.RawString(cap)
		if !ok {
			continue
		}
		out[cap.String()] = displayString(raw)
	}
	return out
}

func dumpExtended(info *terminfo.TermInfo) map[string]interface{} {
	out := make(map[string]interface{})
	for _, name := range info.ExtendedNames() {
		v, ok := info.Extended(name)
		if !ok {
			continue
		}
		switch v.Kind {
		case terminfo.ValueTrue:
			out[name] = true
		case terminfo.ValueNumber:
			out[name] = v.Number
		case terminfo.ValueUtf8String:
			out[name] = v.Text
		case terminfo.ValueRawString:
			out[name] = displayString(v.RawString)
		}
	}
	return out
}

// displayString renders a capability's raw bytes for JSON output. Strict
// UTF-8 is preferred; when that fails we fall back through a short cascade
// of legacy single-byte encodings before giving up and escaping the bytes,
// mirroring the BOM-sniffing fallback laenix/ewfgo uses when decoding
// header text of unknown provenance. This only affects how the CLI
// displays a value, never what Parse itself returns.
func displayString(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.CodePage437} {
		if decoded, err := cm.NewDecoder().Bytes(raw); err == nil {
			return string(decoded)
		}
	}
	return fmt.Sprintf("%q", raw)
}
