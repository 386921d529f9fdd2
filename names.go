package amlich

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

//Sino-Vietnamese names in the same order as stems and branches
var (
	viStems    = [...]string{"giáp", "ất", "bính", "đinh", "mậu", "kỷ", "canh", "tân", "nhâm", "quý"}
	viBranches = [...]string{"tý", "sửu", "dần", "mão", "thìn", "tỵ", "ngọ", "mùi", "thân", "dậu", "tuất", "hợi"}
)

// Vietnamese returns the stem name with diacritics, "Giáp".
func (s Stem) Vietnamese() string {
	return vietnameseTitle(viStems[mod(int(s), len(viStems))])
}

// Vietnamese returns the branch name with diacritics, "Tý".
func (b Branch) Vietnamese() string {
	return vietnameseTitle(viBranches[mod(int(b), len(viBranches))])
}

// Vietnamese returns the pair with diacritics, "Giáp Tý".
func (p Pair) Vietnamese() string {
	return p.Stem.Vietnamese() + " " + p.Branch.Vietnamese()
}

//a Caser keeps state, so every call gets its own
func vietnameseTitle(s string) string {
	return norm.NFC.String(cases.Title(language.Vietnamese).String(s))
}
