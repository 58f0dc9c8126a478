// Package jptext provides normalization helpers for Japanese listing text.
// All functions are pure and idempotent.
package jptext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

const fullwidthDigits = "０１２３４５６７８９"

// digitFold maps full-width digits to their ASCII forms via x/text width folding.
var digitFold = func() map[rune]rune {
	m := make(map[rune]rune, 10)
	for _, r := range fullwidthDigits {
		folded, _ := utf8.DecodeRuneInString(width.Fold.String(string(r)))
		m[r] = folded
	}
	return m
}()

// FoldDigits converts full-width digits to ASCII digits. All other runes pass
// through untouched.
func FoldDigits(s string) string {
	if !strings.ContainsAny(s, fullwidthDigits) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if folded, ok := digitFold[r]; ok {
			return folded
		}
		return r
	}, s)
}

// dashVariants are the dash, minus, and wave glyphs that appear in place of a
// plain hyphen in address text.
const dashVariants = "ー‐―−－〜～"

// UnifyDashes maps every dash variant to a single ASCII hyphen.
func UnifyDashes(s string) string {
	if !strings.ContainsAny(s, dashVariants) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(dashVariants, r) {
			return '-'
		}
		return r
	}, s)
}

// kanjiToArabic covers 一 through 十; block numbers above ten do not occur in
// the source data.
var kanjiToArabic = map[string]string{
	"一": "1", "二": "2", "三": "3", "四": "4", "五": "5",
	"六": "6", "七": "7", "八": "8", "九": "9", "十": "10",
}

var kanjiCounterRe = regexp.MustCompile(`([一二三四五六七八九十])(丁目|番町)`)

// ConvertKanjiNumerals rewrites kanji numerals that immediately precede the
// 丁目 or 番町 counter words to Arabic digits ("二丁目" → "2丁目"). Numerals in
// any other position, such as those inside proper names, are left alone.
func ConvertKanjiNumerals(s string) string {
	return kanjiCounterRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := kanjiCounterRe.FindStringSubmatch(m)
		return kanjiToArabic[sub[1]] + sub[2]
	})
}
