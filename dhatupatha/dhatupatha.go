// Package dhatupatha loads and indexes the Dhatupatha, the traditional
// root list, from the line-oriented UTF-8 format described in §6 of the
// base spec: one root per line, fields code (gg.nnnn), aupadeśika, artha,
// tags, with blank lines and #-comments ignored and a checksum verified at
// load time.
//
// The default, compiled-in subset is loaded once at process start (see
// Default) and is read-only thereafter, the same "initialise once, share by
// reference" policy §5 and §9 of the base spec require of every static
// table.
package dhatupatha

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ai-labs/vyakarana-go/term"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/dhatus.txt
var defaultData []byte

// DefaultSHA256 is the SHA-256 digest of the embedded data/dhatus.txt,
// computed at package initialization. The compiled-in table itself is
// parsed in init without a checksum check; callers loading their own file
// through Load must supply the digest they expect and Load fails closed on
// any mismatch.
var DefaultSHA256 = sha256Hex(defaultData)

// ErrHashMismatch is returned (wrapped) when a loaded file's digest does
// not match the caller-supplied expectation. Fatal at load per §7 of the
// base spec: the caller must not attempt derivation against an unverified
// table.
var ErrHashMismatch = errors.New("dhatupatha: checksum mismatch")

// ErrMalformed is returned (wrapped) for a structurally invalid line or an
// unparseable gana/index field.
var ErrMalformed = errors.New("dhatupatha: malformed entry")

// Entry is one Dhatupatha row.
type Entry struct {
	Code      string // "gg.nnnn"
	Upadesha  string
	Gana      term.Gana
	Index     int
	Artha     string
	Tags      []string
	Antargana string
}

// Dhatupatha is a read-only, indexed view over a loaded root list.
type Dhatupatha struct {
	entries []Entry
	byGana  map[term.Gana]map[int]*Entry
}

var defaultTable *Dhatupatha

func init() {
	t, err := parse(defaultData)
	if err != nil {
		// The compiled-in data is a build-time invariant: if it fails to
		// parse, the binary itself is broken.
		panic(fmt.Sprintf("dhatupatha: embedded data/dhatus.txt is malformed: %v", err))
	}
	defaultTable = t
}

// Default returns the compiled-in Dhatupatha subset.
func Default() *Dhatupatha { return defaultTable }

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Load parses data and verifies its digest against wantHashHex (a lowercase
// hex SHA-256 digest). On mismatch it returns an error wrapping
// ErrHashMismatch and performs no parsing — the spec requires the checksum
// failure to be a hard, fatal error before any derivation is attempted.
func Load(data []byte, wantHashHex string) (*Dhatupatha, error) {
	got := sha256Hex(data)
	if !strings.EqualFold(got, wantHashHex) {
		return nil, fmt.Errorf("%w: want %s got %s", ErrHashMismatch, wantHashHex, got)
	}
	return parse(data)
}

func parse(data []byte) (*Dhatupatha, error) {
	data = norm.NFC.Bytes(data)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	dp := &Dhatupatha{byGana: make(map[term.Gana]map[int]*Entry)}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
		dp.entries = append(dp.entries, entry)
		idx := len(dp.entries) - 1
		if dp.byGana[entry.Gana] == nil {
			dp.byGana[entry.Gana] = make(map[int]*Entry)
		}
		dp.byGana[entry.Gana][entry.Index] = &dp.entries[idx]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return dp, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	code := fields[0]
	gana, index, err := parseCode(code)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{
		Code:     code,
		Upadesha: fields[1],
		Gana:     gana,
		Index:    index,
		Artha:    fields[2],
	}
	if len(fields) > 3 && fields[3] != "" {
		entry.Tags = strings.Split(fields[3], "+")
	}
	return entry, nil
}

func parseCode(code string) (term.Gana, int, error) {
	parts := strings.SplitN(code, ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("code %q is not gg.nnnn", code)
	}
	ganaNum, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("code %q: bad gana: %w", code, err)
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("code %q: bad index: %w", code, err)
	}
	return term.Gana(ganaNum), index, nil
}

// Find returns the entry for (gana, index), or ok=false if absent.
func (dp *Dhatupatha) Find(gana term.Gana, index int) (Entry, bool) {
	if dp == nil {
		return Entry{}, false
	}
	byIndex := dp.byGana[gana]
	if byIndex == nil {
		return Entry{}, false
	}
	e, ok := byIndex[index]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// FindByUpadesha returns every entry whose citation form equals upadesha
// (a dhatu's upadesha is not always unique across ganas).
func (dp *Dhatupatha) FindByUpadesha(upadesha string) []Entry {
	var out []Entry
	for _, e := range dp.entries {
		if e.Upadesha == upadesha {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of loaded entries.
func (dp *Dhatupatha) Len() int { return len(dp.entries) }
