package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// Contract terms come in four shapes, tried in order: a duration with years
// and months, an absolute end date (YYYY年MM月, converted to months from the
// base date), a duration in years, and a duration in months. All anchored
// at the start of the cell.
var (
	termYearMonthRe = regexp.MustCompile(`^(\d+)年(\d+)ヶ月`)
	termEndDateRe   = regexp.MustCompile(`^(\d+)年(\d+)月`)
	termYearRe      = regexp.MustCompile(`^(\d+)年`)
	termMonthRe     = regexp.MustCompile(`^(\d+)ヶ月`)
)

// ExtractContract flags fixed-term (定期借家) contracts and converts the
// contract period to months.
func ExtractContract(rows []*model.Listing, baseYear, baseMonth int) {
	for _, row := range rows {
		row.IsTemporal = flag(strings.Contains(row.ContractPeriod, "定期借家"))
		row.Term = convertTerm(row.ContractPeriod, baseYear, baseMonth)
		row.ContractPeriod = ""
	}
}

func convertTerm(s string, baseYear, baseMonth int) *int {
	if m := termYearMonthRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		return model.Int(y*monthsPerYear + mo)
	}
	if m := termEndDateRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		return model.Int((y-baseYear)*monthsPerYear + (mo - baseMonth))
	}
	if m := termYearRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		return model.Int(y * monthsPerYear)
	}
	if m := termMonthRe.FindStringSubmatch(s); m != nil {
		mo, _ := strconv.Atoi(m[1])
		return model.Int(mo)
	}
	return nil
}
