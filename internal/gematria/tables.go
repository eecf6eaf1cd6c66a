package gematria

// hebrewStandard maps each Hebrew consonant to its standard value.
// Final forms carry their own entries so lookup never falls back to the
// base letter; their values match the base letters (Mispar Hechrachi).
var hebrewStandard = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9, 'י': 10,
	'כ': 20, 'ך': 20, 'ל': 30, 'מ': 40, 'ם': 40, 'נ': 50, 'ן': 50, 'ס': 60, 'ע': 70,
	'פ': 80, 'ף': 80, 'צ': 90, 'ץ': 90, 'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
}

// ordinalTable builds an English letter table. Values run a=1..z=26,
// or z=1..a=26 when reversed, optionally digit-reduced per letter.
func ordinalTable(reverse, reduce bool) map[rune]int {
	t := make(map[rune]int, 26)
	for i := 0; i < 26; i++ {
		v := i + 1
		if reverse {
			v = 26 - i
		}
		if reduce {
			v = Reduce(v)
		}
		t['a'+rune(i)] = v
	}
	return t
}

// The English tables are built once at startup and never mutated.
var (
	englishOrdinal          = ordinalTable(false, false)
	englishFullReduction    = ordinalTable(false, true)
	englishReverseOrdinal   = ordinalTable(true, false)
	englishReverseReduction = ordinalTable(true, true)
)
