package refdata

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/arialab/rentprep/internal/jptext"
)

// LandPriceTable maps a normalized district key to a published land price.
// Duplicate keys collapse to their mean at load time so the join stays
// one-row-per-listing.
type LandPriceTable map[string]float64

// Land-price publication column names. The file carries two header rows; the
// second one holds the real column names.
const (
	landCityColumn  = "区市町村名"
	landLotColumn   = "地番"
	landPriceColumn = "当年価格（円）"
)

// LoadLandPrice reads the land-price publication, either the CP932 CSV or
// the spreadsheet distribution, selected by file extension.
func LoadLandPrice(path string) (LandPriceTable, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err := readLandXLSX(path)
		if err != nil {
			return nil, err
		}
		return shapeLandRows(rows)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: open land price table")
	}
	defer f.Close() //nolint:errcheck

	return ReadLandPrice(f)
}

// ReadLandPrice parses the CSV distribution of the land-price table.
func ReadLandPrice(r io.Reader) (LandPriceTable, error) {
	cr := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "refdata: read land price rows")
	}
	return shapeLandRows(rows)
}

func readLandXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: open land price workbook")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("refdata: land price workbook has no sheets")
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// shapeLandRows turns the raw two-header-row layout into a keyed lookup.
// The key is 区市町村名+地番 truncated before the first lot digit, with kanji
// block numbers converted; the price column is a comma-formatted figure.
func shapeLandRows(rows [][]string) (LandPriceTable, error) {
	if len(rows) < 2 {
		return nil, eris.New("refdata: land price table missing header rows")
	}

	header := rows[1]
	cityIdx := indexOf(header, landCityColumn)
	lotIdx := indexOf(header, landLotColumn)
	priceIdx := indexOf(header, landPriceColumn)
	if cityIdx < 0 || lotIdx < 0 || priceIdx < 0 {
		return nil, eris.Errorf("refdata: land price header missing one of %q, %q, %q",
			landCityColumn, landLotColumn, landPriceColumn)
	}

	maxIdx := cityIdx
	for _, i := range []int{lotIdx, priceIdx} {
		if i > maxIdx {
			maxIdx = i
		}
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows[2:] {
		if len(row) <= maxIdx {
			continue
		}
		key := jptext.ConvertKanjiNumerals(districtPart(row[cityIdx] + row[lotIdx]))
		if key == "" {
			continue
		}
		price, ok := parsePrice(row[priceIdx])
		if !ok {
			continue
		}
		sums[key] += price
		counts[key]++
	}

	table := make(LandPriceTable, len(sums))
	for key, sum := range sums {
		table[key] = sum / float64(counts[key])
	}

	zap.L().Info("land price reference loaded", zap.Int("districts", len(table)))
	return table, nil
}

// districtPart cuts the combined city+lot string before its first digit,
// leaving the administrative-district portion.
func districtPart(s string) string {
	if idx := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

// parsePrice parses a currency figure with comma or semicolon group
// separators. Unparsable figures count as missing, not as errors.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ";", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
