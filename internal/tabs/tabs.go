// Package tabs implements the tab codec for Qlik load scripts: splitting a
// marker-delimited script into named, ordered segments, persisting them as
// .qvs files and losslessly rejoining them into the remote script form.
package tabs

import (
	"fmt"
	"regexp"
	"strings"
)

// MainKey names the implicit leading segment that precedes the first tab
// marker. It carries no index prefix on disk.
const MainKey = "Main"

// Marker lines have the exact form "///$tab <name>"; the name is the
// remainder of the line.
var markerRe = regexp.MustCompile(`///\$tab[ \t]+([^\r\n]+)`)

var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Tab is a named, ordered slice of a script. Key is the on-disk identity
// ("Main" or "{i}___{name}"); Name is the human-readable tab name before
// filename sanitization.
type Tab struct {
	Key     string
	Name    string
	Content string
}

// Script is an ordered tab collection. Order is significant for
// reconstruction and must round-trip.
type Script []Tab

// FormatError reports a tab key that cannot yield a tab name because it
// lacks the {i}___{name} separator.
type FormatError struct {
	Key string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tab key %q has no index prefix; expected {i}___{name}", e.Key)
}

// Split locates all tab markers in a raw script and returns the ordered tab
// collection. Scripts without markers become a single Main tab; content
// before the first marker becomes Main unless it is blank.
func Split(script string) Script {
	matches := markerRe.FindAllStringSubmatchIndex(script, -1)
	if len(matches) == 0 {
		return Script{{Key: MainKey, Name: MainKey, Content: strings.TrimSpace(script)}}
	}

	var out Script
	if pre := strings.TrimSpace(script[:matches[0][0]]); pre != "" {
		out = append(out, Tab{Key: MainKey, Name: MainKey, Content: pre})
	}
	for i, m := range matches {
		name := script[m[2]:m[3]]
		end := len(script)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out = append(out, Tab{
			Key:     fmt.Sprintf("%d___%s", i, name),
			Name:    name,
			Content: strings.TrimSpace(script[m[1]:end]),
		})
	}
	return out
}

// Combine rejoins an ordered tab collection into a single script. The first
// tab is emitted unmarked when its key is exactly Main; every other tab is
// emitted as a marker line followed by its content. Empty tabs are skipped.
// Fragments are joined with a double carriage return.
func Combine(script Script) (string, error) {
	parts := make([]string, 0, len(script))
	for i, tab := range script {
		content := strings.TrimRight(tab.Content, " \t\r\n")
		if content == "" {
			continue
		}
		content = Normalize(content)
		if i == 0 && tab.Key == MainKey {
			parts = append(parts, content)
			continue
		}
		name := tab.Name
		if name == "" {
			derived, err := nameFromKey(tab.Key)
			if err != nil {
				return "", err
			}
			name = derived
		}
		parts = append(parts, "///$tab "+name+"\r"+content)
	}
	return strings.Join(parts, "\r\r"), nil
}

// Normalize converts any line ending form to the carriage-return-only
// convention the remote script format uses.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\r")
	return strings.ReplaceAll(s, "\n", "\r")
}

// SanitizeName replaces filesystem-unsafe characters with underscores.
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

func nameFromKey(key string) (string, error) {
	if key == MainKey {
		return MainKey, nil
	}
	idx := strings.Index(key, "___")
	if idx < 0 {
		return "", &FormatError{Key: key}
	}
	return key[idx+3:], nil
}
