package textnorm

import (
	"sort"
	"strings"
)

// fontRepairs maps known Vietnamese font-corruption signatures to correct
// Unicode. Entries cover three corruption families: TCVN3 legacy bytes that
// render as stray Latin-1 symbols, VNI tone digraphs, and UTF-8 text decoded
// once too often as Latin-1 (mojibake). The table is hand-curated against real
// corrupted documents; it must stay disjoint from valid Vietnamese character
// sequences, so unbroken text passes through unchanged. Do not add valid
// Vietnamese characters here.
var fontRepairs = map[string]string{
	// TCVN3 stray symbols
	"µ": "à", "¸": "á", "¶": "ả", "·": "ã", "¹": "ạ",
	"Ì": "è", "Ð": "é", "Î": "ẻ", "Ï": "ẽ", "Ñ": "ẹ",
	// ß doubles as a real letter: capital ẞ lowercases to ß after the
	// repair pass, so a second Normalize maps it on to o. Inherent to
	// repairing TCVN3 bytes before case folding.
	"ß": "ò", "ä": "ọ",
	"©": "â", "ª": "ă", "®": "ê", "«": "ơ", "¬": "ư",
	"§": "đ",
	// VNI tone digraphs
	"aø": "à", "aù": "á", "aû": "ả", "aõ": "ã", "aï": "ạ",
	"eø": "è", "eù": "é", "eû": "ẻ", "eõ": "ẽ", "eï": "ẹ",
	"ö": "ô",
	// Common OCR punctuation substitutions
	"–": "-", "—": "-",
	"‘": "'", "’": "'",
	"“": `"`, "”": `"`,
	"…": "...", "•": "-",
	// Mojibake pairs (UTF-8 bytes decoded as Latin-1)
	"Ã ": "à", "Ã¡": "á", "Ã¢": "â", "Ã£": "ã",
	"Ã¨": "è", "Ã©": "é", "Ãª": "ê",
	"Ã¬": "ì", "Ã­": "í",
	"Ã²": "ò", "Ã³": "ó", "Ã´": "ô", "Ãµ": "õ",
	"Ã¹": "ù", "Ãº": "ú",
	"Ä ": "đ", "Ä": "đ",
}

// fontRepairer applies fontRepairs in one pass, longest pattern first, so a
// VNI digraph is consumed before its first character could match a
// single-character TCVN3 entry.
var fontRepairer = buildRepairer()

func buildRepairer() *strings.Replacer {
	type pair struct{ old, new string }

	pairs := make([]pair, 0, len(fontRepairs))
	for old, repl := range fontRepairs {
		pairs = append(pairs, pair{old, repl})
	}
	// Longest first; equal lengths ordered lexically for determinism.
	sort.Slice(pairs, func(i, j int) bool {
		if len(pairs[i].old) != len(pairs[j].old) {
			return len(pairs[i].old) > len(pairs[j].old)
		}
		return pairs[i].old < pairs[j].old
	})

	oldnew := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		oldnew = append(oldnew, p.old, p.new)
	}
	return strings.NewReplacer(oldnew...)
}

// diacriticFolds maps every precomposed Vietnamese diacritic letter, both
// cases, to its base Latin letter. đ/Đ are included even though they are a
// distinct letter rather than a diacritic form of d; Normalize also folds
// them explicitly before this table is consulted so the output is identical
// whichever path handles them.
var diacriticFolds = map[rune]rune{
	// A variants
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a', 'ă': 'a',
	'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a', 'â': 'a',
	'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a', 'À': 'a',
	'Á': 'a', 'Ả': 'a', 'Ã': 'a', 'Ạ': 'a', 'Ă': 'a', 'Ằ': 'a',
	'Ắ': 'a', 'Ẳ': 'a', 'Ẵ': 'a', 'Ặ': 'a', 'Â': 'a', 'Ầ': 'a',
	'Ấ': 'a', 'Ẩ': 'a', 'Ẫ': 'a', 'Ậ': 'a',
	// E variants
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e', 'ê': 'e',
	'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e', 'È': 'e',
	'É': 'e', 'Ẻ': 'e', 'Ẽ': 'e', 'Ẹ': 'e', 'Ê': 'e', 'Ề': 'e',
	'Ế': 'e', 'Ể': 'e', 'Ễ': 'e', 'Ệ': 'e',
	// I variants
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i', 'Ì': 'i',
	'Í': 'i', 'Ỉ': 'i', 'Ĩ': 'i', 'Ị': 'i',
	// O variants
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o', 'ô': 'o',
	'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o', 'ơ': 'o',
	'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o', 'Ò': 'o',
	'Ó': 'o', 'Ỏ': 'o', 'Õ': 'o', 'Ọ': 'o', 'Ô': 'o', 'Ồ': 'o',
	'Ố': 'o', 'Ổ': 'o', 'Ỗ': 'o', 'Ộ': 'o', 'Ơ': 'o', 'Ờ': 'o',
	'Ớ': 'o', 'Ở': 'o', 'Ỡ': 'o', 'Ợ': 'o',
	// U variants
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u', 'ư': 'u',
	'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u', 'Ù': 'u',
	'Ú': 'u', 'Ủ': 'u', 'Ũ': 'u', 'Ụ': 'u', 'Ư': 'u', 'Ừ': 'u',
	'Ứ': 'u', 'Ử': 'u', 'Ữ': 'u', 'Ự': 'u',
	// Y variants
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y', 'Ỳ': 'y',
	'Ý': 'y', 'Ỷ': 'y', 'Ỹ': 'y', 'Ỵ': 'y',
	// D variants
	'đ': 'd', 'Đ': 'd',
}
