// Package dataset reads the raw train/test listing tables and writes the
// cleaned feature tables. All file handling for the pipeline lives here; the
// pipeline itself only sees in-memory records.
package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/model"
)

// listingRequiredHeaders are the raw columns every listing table must carry.
// The target column 賃料 is additionally required for the train table only.
var listingRequiredHeaders = []string{
	"id", "所在地", "アクセス", "間取り", "築年数", "方角", "面積", "所在階",
	"バス・トイレ", "キッチン", "放送・通信", "室内設備", "駐車場", "周辺環境",
	"建物構造", "契約期間",
}

// LoadListings reads a raw listing CSV. isTrain tags the rows' provenance
// and requires the target column to be present.
func LoadListings(path string, isTrain bool) ([]*model.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	rows, err := ReadListings(f, isTrain)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", path)
	}

	zap.L().Info("listing table loaded",
		zap.String("path", path),
		zap.Bool("train", isTrain),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// ReadListings decodes a raw listing table. A missing raw column is a
// contract violation by the caller and fails the whole read.
func ReadListings(r io.Reader, isTrain bool) ([]*model.Listing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(cr)
	if err != nil {
		return nil, eris.Wrap(err, "read header")
	}

	required := listingRequiredHeaders
	if isTrain {
		required = append(append([]string{}, required...), "賃料")
	}
	if err := requireHeaders(dec.Header(), required); err != nil {
		return nil, err
	}

	var rows []*model.Listing
	for {
		var raw model.RawListing
		if err := dec.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "decode row")
		}
		rows = append(rows, raw.ToListing(isTrain))
	}
	return rows, nil
}

// WriteListings writes a cleaned feature table.
func WriteListings(path string, rows []*model.Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := EncodeListings(f, rows); err != nil {
		return eris.Wrapf(err, "dataset: write %s", path)
	}

	zap.L().Info("feature table written", zap.String("path", path), zap.Int("rows", len(rows)))
	return nil
}

// EncodeListings encodes the derived feature columns; raw columns and
// intermediate keys are excluded by the record's tags.
func EncodeListings(w io.Writer, rows []*model.Listing) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return eris.Wrap(err, "encode row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "flush")
}

func requireHeaders(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, h := range required {
		if !present[h] {
			return eris.Errorf("missing required column %q", h)
		}
	}
	return nil
}
