// Command prakriyacli runs the derivation engine against a CSV corpus of
// expected forms and reports mismatches, per the regression-harness
// external interface in the base spec's §5.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ai-labs/vyakarana-go/dhatupatha"
	"github.com/ai-labs/vyakarana-go/term"
	"github.com/ai-labs/vyakarana-go/vyakarana"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	testCasesPath string
	dataType      string
	hashHex       string
)

func main() {
	root := &cobra.Command{
		Use:   "prakriyacli",
		Short: "Run derivation test cases against the vyakarana engine",
		RunE:  run,
	}
	root.Flags().StringVar(&testCasesPath, "test-cases", "", "path to a CSV corpus file")
	root.Flags().StringVar(&dataType, "data-type", "tinanta", "corpus row shape: tinanta|krdanta|dhatu")
	root.Flags().StringVar(&hashHex, "hash", "", "expected SHA-256 of a custom dhatupatha file, if --dhatupatha is set")
	root.Flags().String("dhatupatha", "", "path to a dhatupatha file to verify against --hash before the run (derivations use the compiled-in table)")

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	vyakarana.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if testCasesPath == "" {
		return fmt.Errorf("--test-cases is required")
	}

	if customPath, _ := cmd.Flags().GetString("dhatupatha"); customPath != "" {
		if hashHex == "" {
			return fmt.Errorf("--hash is required when --dhatupatha is set")
		}
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", customPath, err)
		}
		if _, err := dhatupatha.Load(data, hashHex); err != nil {
			// Fatal per the base spec: a checksum mismatch must stop the
			// run before any derivation is attempted.
			return fmt.Errorf("loading dhatupatha: %w", err)
		}
	}

	f, err := os.Open(testCasesPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", testCasesPath, err)
	}
	defer f.Close()

	total, mismatches, err := runCases(f, dataType)
	if err != nil {
		return err
	}
	fmt.Printf("%d cases, %d mismatches\n", total, len(mismatches))
	for _, m := range mismatches {
		fmt.Println(m)
	}
	return nil
}

func runCases(r io.Reader, dataType string) (total int, mismatches []string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, mismatches, fmt.Errorf("reading csv: %w", err)
		}
		if len(row) == 0 || strings.HasPrefix(row[0], "#") {
			continue
		}
		total++
		got, expected, label, err := evalRow(dataType, row)
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("%s: error: %v", label, err))
			continue
		}
		if !sameSet(got, expected) {
			mismatches = append(mismatches, fmt.Sprintf("%s: want %v got %v", label, expected, got))
		}
	}
	return total, mismatches, nil
}

// evalRow dispatches a single CSV row by the corpus shape named in
// dataType. Each shape's last column is a "|"-joined set of acceptable
// surface forms.
func evalRow(dataType string, row []string) (got, expected []string, label string, err error) {
	switch dataType {
	case "tinanta":
		// gana,index,lakara,purusha,vacana,atmanepada,expected
		if len(row) < 7 {
			return nil, nil, "", fmt.Errorf("tinanta row needs 7 fields, got %d", len(row))
		}
		gana, index, err := atoi2(row[0], row[1])
		if err != nil {
			return nil, nil, "", err
		}
		purusha, vacana, err := atoi2(row[3], row[4])
		if err != nil {
			return nil, nil, "", err
		}
		atmane := row[5] == "true" || row[5] == "1"
		label = fmt.Sprintf("tinanta(%s.%s,%s,%s,%s,%s)", row[0], row[1], row[2], row[3], row[4], row[5])
		got, err = vyakarana.DeriveTinantas(vyakarana.Tinanta{
			Dhatu:      vyakarana.Dhatu{Gana: term.Gana(gana), Index: index},
			Lakara:     row[2],
			Purusha:    purusha,
			Vacana:     vacana,
			Atmanepada: atmane,
		})
		return got, strings.Split(row[6], "|"), label, err

	case "krdanta":
		// gana,index,krt,expected
		if len(row) < 4 {
			return nil, nil, "", fmt.Errorf("krdanta row needs 4 fields, got %d", len(row))
		}
		gana, index, err := atoi2(row[0], row[1])
		if err != nil {
			return nil, nil, "", err
		}
		label = fmt.Sprintf("krdanta(%s.%s,%s)", row[0], row[1], row[2])
		got, err = vyakarana.DeriveKrdantas(vyakarana.Krdanta{
			Dhatu: vyakarana.Dhatu{Gana: term.Gana(gana), Index: index},
			Krt:   row[2],
		})
		return got, strings.Split(row[3], "|"), label, err

	case "dhatu":
		// gana,index,expected
		if len(row) < 3 {
			return nil, nil, "", fmt.Errorf("dhatu row needs 3 fields, got %d", len(row))
		}
		gana, index, err := atoi2(row[0], row[1])
		if err != nil {
			return nil, nil, "", err
		}
		label = fmt.Sprintf("dhatu(%s.%s)", row[0], row[1])
		got, err = vyakarana.DeriveDhatus(vyakarana.Dhatu{Gana: term.Gana(gana), Index: index})
		return got, strings.Split(row[2], "|"), label, err

	default:
		return nil, nil, "", fmt.Errorf("unknown --data-type %q", dataType)
	}
}

func atoi2(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", a, err)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", b, err)
	}
	return x, y, nil
}

// sameSet reports whether got and expected contain the same strings,
// ignoring order and duplicates.
func sameSet(got, expected []string) bool {
	g := dedupe(got)
	e := dedupe(expected)
	if len(g) != len(e) {
		return false
	}
	for i := range g {
		if g[i] != e[i] {
			return false
		}
	}
	return true
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
