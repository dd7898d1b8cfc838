// Package day12 solves 2023 day 12, "Hot Springs".
package day12

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 12, Title: "Hot Springs", Part1: Part1, Part2: Part2}
}

// Record is a row of springs ('.', '#', '?') and its damaged group sizes.
type Record struct {
	Springs string
	Groups  []int
}

// Parse reads "???.### 1,1,3" lines.
func Parse(in *puzzle.Input) ([]Record, error) {
	var out []Record
	for _, line := range in.NonEmptyLines() {
		springs, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || strings.Trim(springs, ".#?") != "" {
			return nil, puzzle.Malformed("record %q", line)
		}
		r := Record{Springs: springs}
		for _, g := range strings.Split(groups, ",") {
			n, err := strconv.Atoi(g)
			if err != nil || n <= 0 {
				return nil, puzzle.Malformed("group %q in %q", g, line)
			}
			r.Groups = append(r.Groups, n)
		}
		out = append(out, r)
	}
	return out, nil
}

// Unfold repeats the springs k times joined by '?', and the groups k times.
func (r Record) Unfold(k int) Record {
	springs := make([]string, k)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the ways to fill every '?' so the damaged runs match
// Groups exactly.
//
// memo[i][j] caches the count for springs[i:] against groups[j:].
func (r Record) Arrangements() int {
	n, m := len(r.Springs), len(r.Groups)
	memo := make([][]int, n+1)
	for i := range memo {
		memo[i] = make([]int, m+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}

	var count func(i, j int) int
	count = func(i, j int) int {
		if i >= n {
			if j == m {
				return 1
			}
			return 0
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		total := 0
		c := r.Springs[i]
		if c != '#' {
			total += count(i+1, j)
		}
		if c != '.' && j < m && r.fits(i, r.Groups[j]) {
			total += count(i+r.Groups[j]+1, j+1)
		}
		memo[i][j] = total
		return total
	}
	return count(0, 0)
}

// fits reports whether a damaged run of length size can start at i: no '.'
// inside it and no '#' right after it.
func (r Record) fits(i, size int) bool {
	if i+size > len(r.Springs) {
		return false
	}
	if strings.IndexByte(r.Springs[i:i+size], '.') >= 0 {
		return false
	}
	return i+size == len(r.Springs) || r.Springs[i+size] != '#'
}

func total(in *puzzle.Input, unfold int) (int, error) {
	recs, err := Parse(in)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range recs {
		sum += r.Unfold(unfold).Arrangements()
	}
	return sum, nil
}

// Part1 sums the arrangement counts of every record.
func Part1(in *puzzle.Input) (int, error) { return total(in, 1) }

// Part2 unfolds every record five times first.
func Part2(in *puzzle.Input) (int, error) { return total(in, 5) }
