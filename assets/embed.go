// assets/embed.go
//
// Bundled default word-pair list, used when no WORDMIX_WORDS_FILE is
// configured.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

// PairsFile is the name of the embedded word-pair list.
const PairsFile = "pairs.txt"

//go:embed pairs.txt
var FS embed.FS

// PairLines returns the raw lines of the embedded list with trailing blank
// lines removed. Validation is left to the words package.
func PairLines() ([]string, error) {
	f, err := FS.Open(PairsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out, nil
}
