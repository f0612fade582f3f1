package scan

// levenshtein returns the edit distance between two argument names.
func levenshtein(str string, tgt string) int {
	if len(str) == 0 {
		return len(tgt)
	}

	if len(tgt) == 0 {
		return len(str)
	}

	dists := make([][]int, len(str)+1)
	for i := range dists {
		dists[i] = make([]int, len(tgt)+1)
		dists[i][0] = i
	}

	for j := range tgt {
		dists[0][j] = j
	}

	for sidx, sc := range str {
		for tidx, tc := range tgt {
			if sc == tc {
				dists[sidx+1][tidx+1] = dists[sidx][tidx]
			} else {
				dists[sidx+1][tidx+1] = dists[sidx][tidx] + 1
				if dists[sidx+1][tidx] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx+1][tidx] + 1
				}
				if dists[sidx][tidx+1] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx][tidx+1] + 1
				}
			}
		}
	}

	return dists[len(str)][len(tgt)]
}

// closestName returns the registered argument name nearest to the unmatched
// candidate, and their distance.
func (s *session) closestName(candidate string) (string, int) {
	minName := ""
	minDist := -1

	for i := range s.specs {
		name := s.specs[i].Name

		dist := levenshtein(candidate, name)
		if minDist < 0 || dist < minDist {
			minDist = dist
			minName = name
		}
	}

	return minName, minDist
}
