package search

import (
	"regexp"
	"strings"
)

// matchScore rates how well query matches target, returning a score in
// (0, 1] and true, or 0 and false when the pair should not be considered at
// all. Branches are evaluated in order and the first applicable one wins.
func matchScore(query, target string) (float64, bool) {
	q := Normalize(query)
	t := Normalize(target)
	if q == "" || t == "" {
		return 0, false
	}

	// Direct containment beats everything else. A whole-word hit (the query
	// is the entire target or sits on word boundaries) outranks a hit inside
	// a longer word.
	if strings.Contains(t, q) {
		if containsWord(t, q) {
			return 1.0, true
		}
		return 0.9, true
	}

	// Multi-word queries: count how many query words appear in the target.
	words := significantWords(q)
	if len(words) >= 2 {
		matched, exact := 0, 0
		for _, w := range words {
			switch {
			case containsWord(t, w):
				matched++
				exact++
			case strings.Contains(t, w):
				matched++
			}
		}
		if matched > 0 {
			score := 0.7*float64(matched)/float64(len(words)) + 0.05*float64(exact)
			if score > 0.95 {
				score = 0.95
			}
			return score, true
		}
	}

	// Very short queries never reach edit distance: one or two characters
	// within budget of almost everything would flood the results.
	if len(q) <= 2 {
		for _, w := range strings.Fields(t) {
			if strings.HasPrefix(w, q) {
				return 0.8, true
			}
		}
		if strings.Contains(t, q) {
			return 0.7, true
		}
		return 0, false
	}

	// Edit distance against the whole target, then against its longer words.
	// Whole-target wins when both qualify.
	budget := len(q) / 3
	if budget > 0 {
		if d := editDistance(q, t); d <= budget {
			return 0.6 * (1 - float64(d)/float64(len(q)+1)), true
		}
		best := -1
		for _, w := range strings.Fields(t) {
			if len(w) < 4 {
				continue
			}
			if d := editDistance(q, w); d <= budget && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			return 0.55 * (1 - float64(best)/float64(len(q)+1)), true
		}
	}

	return subsequenceScore(q, t)
}

// containsWord reports whether needle occurs in haystack on word boundaries.
func containsWord(haystack, needle string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

// significantWords returns the words of an already-normalized string that
// are longer than one character.
func significantWords(norm string) []string {
	var out []string
	for _, w := range strings.Fields(norm) {
		if len(w) > 1 {
			out = append(out, w)
		}
	}
	return out
}

// subsequenceScore walks the query's characters through the target as a
// monotonic subsequence, rewarding consecutive runs and penalizing very
// short queries against long targets. Scores at or below 0.5 are discarded.
func subsequenceScore(q, t string) (float64, bool) {
	qLen, tLen := len(q), len(t)
	matched, run, longestRun := 0, 0, 0
	ti := 0

	for qi := 0; qi < qLen && ti < tLen; qi++ {
		idx := strings.IndexByte(t[ti:], q[qi])
		if idx < 0 {
			run = 0
			continue
		}
		if idx == 0 && matched > 0 {
			run++
		} else {
			run = 1
		}
		if run > longestRun {
			longestRun = run
		}
		matched++
		ti += idx + 1
	}

	if matched == 0 {
		return 0, false
	}

	penalty := 0.1 * float64(qLen) / float64(tLen)
	if penalty > 0.1 {
		penalty = 0.1
	}
	score := float64(matched)/float64(qLen) + 0.2*float64(longestRun)/float64(qLen) - penalty
	if score <= 0.5 {
		return 0, false
	}
	return score, true
}

// editDistance computes the Damerau-Levenshtein distance between a and b:
// insertions, deletions, substitutions, and adjacent transpositions all cost
// one. Strings whose lengths differ by more than half the shorter length are
// treated as maximally distant without filling the matrix.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	shorter := la
	if lb < shorter {
		shorter = lb
	}
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > shorter/2 {
		return la + lb
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := curr[j-1] + 1
			if prev[j]+1 < d {
				d = prev[j] + 1
			}
			if prev[j-1]+cost < d {
				d = prev[j-1] + cost
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if prev2[j-2]+1 < d {
					d = prev2[j-2] + 1
				}
			}
			curr[j] = d
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}
