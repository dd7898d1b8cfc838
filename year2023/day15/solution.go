// Package day15 solves 2023 day 15, "Lens Library".
package day15

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 15, Title: "Lens Library", Part1: Part1, Part2: Part2}
}

// Hash runs the HASH algorithm: for each byte, add it, multiply by 17,
// keep the remainder mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// steps splits the initialization sequence, ignoring newlines.
func steps(in *puzzle.Input) []string {
	text := strings.ReplaceAll(in.Raw(), "\n", "")
	if text == "" {
		return nil
	}
	return strings.Split(text, ",")
}

// Part1 sums the hash of every step.
func Part1(in *puzzle.Input) (int, error) {
	sum := 0
	for _, s := range steps(in) {
		sum += Hash(s)
	}
	return sum, nil
}

type lens struct {
	label string
	focal int
}

// Part2 runs the HASHMAP procedure over 256 boxes and returns the total
// focusing power.
func Part2(in *puzzle.Input) (int, error) {
	var boxes [256][]lens
	for _, s := range steps(in) {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			b := &boxes[Hash(label)]
			for i, l := range *b {
				if l.label == label {
					*b = append((*b)[:i], (*b)[i+1:]...)
					break
				}
			}
			continue
		}
		label, focalText, ok := strings.Cut(s, "=")
		if !ok {
			return 0, puzzle.Malformed("step %q", s)
		}
		focal, err := strconv.Atoi(focalText)
		if err != nil || focal < 1 || focal > 9 {
			return 0, puzzle.Malformed("focal length in %q", s)
		}
		b := &boxes[Hash(label)]
		replaced := false
		for i := range *b {
			if (*b)[i].label == label {
				(*b)[i].focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			*b = append(*b, lens{label, focal})
		}
	}

	power := 0
	for bi, b := range boxes {
		for si, l := range b {
			power += (bi + 1) * (si + 1) * l.focal
		}
	}
	return power, nil
}
