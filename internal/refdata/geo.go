// Package refdata loads the external geo-coordinate and land-price reference
// tables. Both are read once, immutable afterwards, and safe to share across
// pipeline runs.
package refdata

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/arialab/rentprep/internal/jptext"
)

// Coord is a district centroid.
type Coord struct {
	Lat float64
	Lon float64
}

// GeoTable maps a normalized district key ("中央区晴海2丁目") to coordinates.
type GeoTable map[string]Coord

type geoRow struct {
	City string  `csv:"市区町村名"`
	Town string  `csv:"大字町丁目名"`
	Lat  float64 `csv:"緯度"`
	Lon  float64 `csv:"経度"`
}

var geoRequiredHeaders = []string{"市区町村名", "大字町丁目名", "緯度", "経度"}

// LoadGeo reads the CP932-encoded geocoded-districts CSV from disk.
func LoadGeo(path string) (GeoTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: open geo table")
	}
	defer f.Close() //nolint:errcheck

	return ReadGeo(f)
}

// ReadGeo parses the geocoded-districts table. The join key is city + town
// with kanji block numbers converted to Arabic; the first entry wins on
// duplicate keys. A missing required header is a contract violation and
// aborts the load.
func ReadGeo(r io.Reader) (GeoTable, error) {
	cr := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	cr.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, eris.Wrap(err, "refdata: read geo header")
	}
	if err := requireHeaders(dec.Header(), geoRequiredHeaders); err != nil {
		return nil, err
	}

	table := make(GeoTable)
	for {
		var row geoRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "refdata: decode geo row")
		}

		key := jptext.ConvertKanjiNumerals(row.City + row.Town)
		if key == "" {
			continue
		}
		if _, ok := table[key]; !ok {
			table[key] = Coord{Lat: row.Lat, Lon: row.Lon}
		}
	}

	zap.L().Info("geo reference loaded", zap.Int("districts", len(table)))
	return table, nil
}

func requireHeaders(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, h := range required {
		if !present[h] {
			return eris.Errorf("refdata: reference table missing required column %q", h)
		}
	}
	return nil
}
