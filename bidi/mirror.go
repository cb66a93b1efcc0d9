package bidi

import "sort"

type mirrorPair struct {
	r, m rune
}

// mirrorPairs is sorted by r and lists both directions of every pair.
var mirrorPairs = func() []mirrorPair {
	pairs := [][2]rune{
		{'(', ')'},
		{'<', '>'},
		{'[', ']'},
		{'{', '}'},
		{0x00AB, 0x00BB}, // « »
		{0x2039, 0x203A}, // ‹ ›
		{0x2045, 0x2046}, // ⁅ ⁆
		{0x207D, 0x207E}, // ⁽ ⁾
		{0x208D, 0x208E}, // ₍ ₎
		{0x2208, 0x220B}, // ∈ ∋
		{0x2209, 0x220C}, // ∉ ∌
		{0x220A, 0x220D}, // ∊ ∍
		{0x2264, 0x2265}, // ≤ ≥
		{0x2266, 0x2267}, // ≦ ≧
		{0x226A, 0x226B}, // ≪ ≫
		{0x2282, 0x2283}, // ⊂ ⊃
		{0x2286, 0x2287}, // ⊆ ⊇
		{0x2329, 0x232A}, // 〈 〉
		{0x27E6, 0x27E7}, // ⟦ ⟧
		{0x27E8, 0x27E9}, // ⟨ ⟩
		{0x3008, 0x3009}, // 〈 〉
		{0x300A, 0x300B}, // 《 》
		{0x300C, 0x300D}, // 「 」
		{0x300E, 0x300F}, // 『 』
		{0x3010, 0x3011}, // 【 】
		{0x3014, 0x3015}, // 〔 〕
		{0xFE59, 0xFE5A}, // ﹙ ﹚
		{0xFE5B, 0xFE5C}, // ﹛ ﹜
		{0xFE5D, 0xFE5E}, // ﹝ ﹞
		{0xFE64, 0xFE65}, // ﹤ ﹥
		{0xFF08, 0xFF09}, // （ ）
		{0xFF1C, 0xFF1E}, // ＜ ＞
		{0xFF3B, 0xFF3D}, // ［ ］
		{0xFF5B, 0xFF5D}, // ｛ ｝
		{0xFF62, 0xFF63}, // ｢ ｣
	}

	table := make([]mirrorPair, 0, 2*len(pairs))
	for _, p := range pairs {
		table = append(table, mirrorPair{p[0], p[1]}, mirrorPair{p[1], p[0]})
	}

	sort.Slice(table, func(i, j int) bool {
		return table[i].r < table[j].r
	})

	return table
}()

// Mirror returns the mirror image of r, or r itself if it has none.
func Mirror(r rune) rune {
	i := sort.Search(len(mirrorPairs), func(i int) bool {
		return mirrorPairs[i].r >= r
	})

	if i < len(mirrorPairs) && mirrorPairs[i].r == r {
		return mirrorPairs[i].m
	}

	return r
}
