package tabs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Ext is the file extension used for persisted tab files.
const Ext = ".qvs"

// LocalStateError reports a script directory that is missing or holds no tab
// files when one was expected.
type LocalStateError struct {
	Dir string
	Msg string
}

func (e *LocalStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, e.Dir)
}

// WriteDir writes one .qvs file per tab into dir, creating the directory and
// its parents when absent. Filenames are the sanitized tab keys; content is
// normalized to carriage-return-only line endings. Returns the written paths
// in tab order.
func WriteDir(dir string, script Script) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(script))
	for _, tab := range script {
		path := filepath.Join(dir, SanitizeName(tab.Key)+Ext)
		if err := os.WriteFile(path, []byte(Normalize(tab.Content)), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ReadDir reads the per-tab files of a script directory back into an ordered
// tab collection. When order is non-nil, files are processed in that order
// (matched by filename stem) with unmatched files appended in glob order;
// otherwise Main comes first and the remaining files follow ascending by the
// numeric prefix of their stem.
func ReadDir(dir string, order []string) (Script, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, &LocalStateError{Dir: dir, Msg: "script directory does not exist"}
	}
	files, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &LocalStateError{Dir: dir, Msg: "no " + Ext + " files found"}
	}
	sort.Strings(files)

	ordered := orderFiles(files, order)
	script := make(Script, 0, len(ordered))
	for _, path := range ordered {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		content := strings.TrimRight(string(raw), " \t\r\n")
		if content == "" {
			continue
		}
		stem := strings.TrimSuffix(filepath.Base(path), Ext)
		script = append(script, Tab{
			Key:     stem,
			Name:    nameForStem(stem),
			Content: Normalize(content),
		})
	}
	return script, nil
}

// nameForStem recovers the tab name from a filename stem. An empty result
// marks a stem Combine must reject with a FormatError.
func nameForStem(stem string) string {
	if stem == MainKey {
		return MainKey
	}
	if idx := strings.Index(stem, "___"); idx >= 0 {
		return stem[idx+3:]
	}
	return ""
}

func orderFiles(files []string, order []string) []string {
	if len(order) > 0 {
		byStem := make(map[string]string, len(files))
		for _, f := range files {
			byStem[strings.TrimSuffix(filepath.Base(f), Ext)] = f
		}
		out := make([]string, 0, len(files))
		seen := make(map[string]bool, len(files))
		for _, stem := range order {
			if f, ok := byStem[stem]; ok && !seen[f] {
				out = append(out, f)
				seen[f] = true
			}
		}
		for _, f := range files {
			if !seen[f] {
				out = append(out, f)
			}
		}
		return out
	}

	out := append([]string(nil), files...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(out[i]), sortKey(out[j])
		if a.main != b.main {
			return a.main
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.stem < b.stem
	})
	return out
}

type fileSortKey struct {
	main  bool
	index int
	stem  string
}

func sortKey(path string) fileSortKey {
	stem := strings.TrimSuffix(filepath.Base(path), Ext)
	if stem == MainKey {
		return fileSortKey{main: true, stem: stem}
	}
	// Numeric prefix ordering; lexicographic comparison of the raw stem
	// would misplace double-digit indexes ("10___x" before "2___x").
	if idx := strings.Index(stem, "___"); idx > 0 {
		if n, err := strconv.Atoi(stem[:idx]); err == nil {
			return fileSortKey{index: n, stem: stem}
		}
	}
	return fileSortKey{index: int(^uint(0) >> 1), stem: stem}
}
