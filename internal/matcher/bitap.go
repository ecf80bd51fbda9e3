package matcher

// Approximate substring matching with the Bitap (shift-or) algorithm.
// Scores follow the widely used fuzzy-search convention:
//
//	errors/len(pattern) + |location-expected|/distance
//
// 0 is a perfect match at the expected location, 1 is no match.

const maxBits = 32

const minScore = 0.001

type chunk struct {
	pattern  []rune
	alphabet map[rune]uint64
	start    int
}

// bitapPattern is a compiled, already normalized pattern
type bitapPattern struct {
	text   string
	chunks []chunk
}

func compileBitap(pattern string) *bitapPattern {
	p := &bitapPattern{text: pattern}
	rs := []rune(pattern)

	add := func(part []rune, start int) {
		p.chunks = append(p.chunks, chunk{pattern: part, alphabet: alphabetOf(part), start: start})
	}

	if len(rs) <= maxBits {
		add(rs, 0)
		return p
	}

	remainder := len(rs) % maxBits
	end := len(rs) - remainder
	for i := 0; i < end; i += maxBits {
		add(rs[i:i+maxBits], i)
	}
	if remainder > 0 {
		start := len(rs) - maxBits
		add(rs[start:], start)
	}
	return p
}

func alphabetOf(pattern []rune) map[rune]uint64 {
	mask := make(map[rune]uint64, len(pattern))
	n := len(pattern)
	for i, r := range pattern {
		mask[r] |= 1 << (n - i - 1)
	}
	return mask
}

type bitapParams struct {
	location  int
	distance  int
	threshold float64
}

// score returns the averaged chunk score and whether any chunk matched
// within the threshold. text must be normalized like the pattern.
func (p *bitapPattern) score(text string, params bitapParams) (float64, bool) {
	if p.text == text {
		return 0, true
	}

	tr := []rune(text)
	total := 0.0
	matched := false
	for _, c := range p.chunks {
		cp := params
		cp.location += c.start
		s, ok := bitapSearch(tr, c, cp)
		if ok {
			matched = true
		}
		total += s
	}

	if !matched {
		return 1, false
	}
	return total / float64(len(p.chunks)), true
}

func bitapSearch(text []rune, c chunk, params bitapParams) (float64, bool) {
	patLen := len(c.pattern)
	if patLen == 0 {
		return 1, false
	}
	textLen := len(text)
	expected := max(0, min(params.location, textLen))

	threshold := params.threshold
	bestLoc := expected

	// Exact occurrences tighten the threshold before the fuzzy pass
	for {
		idx := indexRunes(text, c.pattern, bestLoc)
		if idx < 0 {
			break
		}
		threshold = min(threshold, computeScore(0, patLen, idx, expected, params.distance))
		bestLoc = idx + patLen
	}

	bestLoc = -1
	best := 1.0
	binMax := patLen + textLen
	mask := uint64(1) << (patLen - 1)
	var last []uint64

	for i := 0; i < patLen; i++ {
		// Widest window that can still beat the threshold with i errors
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if computeScore(i, patLen, expected+binMid, expected, params.distance) <= threshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, expected-binMid+1)
		finish := min(expected+binMid, textLen) + patLen

		bits := make([]uint64, finish+2)
		bits[finish+1] = (1 << i) - 1

		for j := finish; j >= start; j-- {
			loc := j - 1
			var charMatch uint64
			if loc < textLen {
				charMatch = c.alphabet[text[loc]]
			}

			bits[j] = ((bits[j+1] << 1) | 1) & charMatch
			if i > 0 {
				bits[j] |= ((bitAt(last, j+1) | bitAt(last, j)) << 1) | 1 | bitAt(last, j+1)
			}

			if bits[j]&mask != 0 {
				s := computeScore(i, patLen, loc, expected, params.distance)
				if s <= threshold {
					threshold = s
					best = s
					bestLoc = loc
					if bestLoc <= expected {
						break
					}
					start = max(1, 2*expected-bestLoc)
				}
			}
		}

		// One more error cannot beat what we already have
		if computeScore(i+1, patLen, expected, expected, params.distance) > threshold {
			break
		}
		last = bits
	}

	if bestLoc < 0 {
		return 1, false
	}
	return max(minScore, best), true
}

func computeScore(errors, patLen, current, expected, distance int) float64 {
	accuracy := float64(errors) / float64(patLen)
	proximity := current - expected
	if proximity < 0 {
		proximity = -proximity
	}
	if distance == 0 {
		if proximity != 0 {
			return 1
		}
		return accuracy
	}
	return accuracy + float64(proximity)/float64(distance)
}

func bitAt(bits []uint64, i int) uint64 {
	if i < 0 || i >= len(bits) {
		return 0
	}
	return bits[i]
}

func indexRunes(text, pattern []rune, from int) int {
	if len(pattern) == 0 {
		return -1
	}
	for i := max(0, from); i+len(pattern) <= len(text); i++ {
		match := true
		for k, r := range pattern {
			if text[i+k] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
