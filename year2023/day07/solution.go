// Package day07 solves 2023 day 7, "Camel Cards".
package day07

import (
	"sort"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 7, Title: "Camel Cards", Part1: Part1, Part2: Part2}
}

// Kind ranks a hand's shape, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int
}

// Parse reads "32T3K 765" lines.
func Parse(in *puzzle.Input) ([]Hand, error) {
	var hands []Hand
	for _, line := range in.NonEmptyLines() {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 {
			return nil, puzzle.Malformed("hand %q", line)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return nil, puzzle.Malformed("card %q in %q", c, line)
			}
		}
		bid, err := puzzle.Atoi(f[1])
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid})
	}
	return hands, nil
}

// Classify returns the hand kind; with jokers, every J joins the largest group.
func Classify(cards string, jokers bool) Kind {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// less orders hands by kind, then card by card.
func less(a, b string, jokers bool) bool {
	ka, kb := Classify(a, jokers), Classify(b, jokers)
	if ka != kb {
		return ka < kb
	}
	rank := order
	if jokers {
		rank = jokerOrder
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return strings.IndexByte(rank, a[i]) < strings.IndexByte(rank, b[i])
		}
	}
	return false
}

// Winnings sorts hands by strength and sums rank × bid.
func Winnings(hands []Hand, jokers bool) int {
	sorted := append([]Hand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i].Cards, sorted[j].Cards, jokers) })
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

// Part1 ranks hands with J as jack.
func Part1(in *puzzle.Input) (int, error) {
	hands, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, false), nil
}

// Part2 ranks hands with J as the weakest wildcard.
func Part2(in *puzzle.Input) (int, error) {
	hands, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, true), nil
}
