// Package day20 solves 2023 day 20, "Pulse Propagation".
package day20

import (
	"sort"
	"strings"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Solution returns the registration record for this day.
func Solution() puzzle.Solution {
	return puzzle.Solution{Year: 2023, Day: 20, Title: "Pulse Propagation", Part1: Part1, Part2: Part2}
}

const (
	broadcaster = "broadcaster"
	button      = "button"
	machine     = "rx"

	// Part1Presses is the number of button presses counted in part 1.
	Part1Presses = 1000
	// maxPresses bounds the cycle search in part 2.
	maxPresses = 1_000_000
)

// Kind is the module type.
type Kind byte

const (
	Untyped     Kind = 0
	Broadcast   Kind = 'b'
	FlipFlop    Kind = '%'
	Conjunction Kind = '&'
)

type module struct {
	kind    Kind
	outputs []string
	on      bool            // flip-flop state
	memory  map[string]bool // conjunction: last pulse per input
}

// Pulse is one signal in flight.
type Pulse struct {
	From, To string
	High     bool
}

// Network is the wired set of modules.
type Network struct {
	modules map[string]*module
}

// Parse reads "%a -> b, c" lines. Destinations without a line of their own
// become untyped sinks.
func Parse(in *puzzle.Input) (*Network, error) {
	n := &Network{modules: make(map[string]*module)}
	for _, line := range in.NonEmptyLines() {
		src, dst, ok := strings.Cut(line, " -> ")
		if !ok {
			return nil, puzzle.Malformed("module %q", line)
		}
		m := &module{}
		switch {
		case src == broadcaster:
			m.kind = Broadcast
		case strings.HasPrefix(src, "%"), strings.HasPrefix(src, "&"):
			m.kind = Kind(src[0])
			src = src[1:]
		default:
			return nil, puzzle.Malformed("module type of %q", src)
		}
		for _, d := range strings.Split(dst, ",") {
			if d = strings.TrimSpace(d); d != "" {
				m.outputs = append(m.outputs, d)
			}
		}
		if _, dup := n.modules[src]; dup {
			return nil, puzzle.Malformed("duplicate module %q", src)
		}
		n.modules[src] = m
	}
	if _, ok := n.modules[broadcaster]; !ok {
		return nil, puzzle.Malformed("no broadcaster")
	}
	// Wire conjunction memories and create sinks.
	for _, name := range n.names() {
		for _, d := range n.modules[name].outputs {
			dm, ok := n.modules[d]
			if !ok {
				dm = &module{kind: Untyped}
				n.modules[d] = dm
			}
			if dm.kind == Conjunction {
				if dm.memory == nil {
					dm.memory = make(map[string]bool)
				}
				dm.memory[name] = false
			}
		}
	}
	return n, nil
}

func (n *Network) names() []string {
	names := make([]string, 0, len(n.modules))
	for k := range n.modules {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Press sends one low pulse to the broadcaster and processes pulses in
// order until the network is quiet. observe sees every pulse, the button's
// included.
func (n *Network) Press(observe func(Pulse)) {
	queue := []Pulse{{From: button, To: broadcaster}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		observe(p)
		m := n.modules[p.To]
		var high bool
		switch m.kind {
		case Broadcast:
			high = p.High
		case FlipFlop:
			if p.High {
				continue
			}
			m.on = !m.on
			high = m.on
		case Conjunction:
			m.memory[p.From] = p.High
			high = false
			for _, v := range m.memory {
				if !v {
					high = true
					break
				}
			}
		default:
			continue
		}
		for _, out := range m.outputs {
			queue = append(queue, Pulse{From: p.To, To: out, High: high})
		}
	}
}

// Part1 multiplies the low and high pulse counts over 1000 presses.
func Part1(in *puzzle.Input) (int, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	low, high := 0, 0
	for range Part1Presses {
		n.Press(func(p Pulse) {
			if p.High {
				high++
			} else {
				low++
			}
		})
	}
	return low * high, nil
}

// Part2 returns the fewest presses that deliver a low pulse to rx.
//
// rx is fed by a single conjunction, which sends low only when all of its
// inputs last sent high. Each input fires high on a fixed cycle, so the
// answer is the LCM of the first press on which each input fires.
func Part2(in *puzzle.Input) (int, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var feeders []string
	for _, name := range n.names() {
		for _, out := range n.modules[name].outputs {
			if out == machine {
				feeders = append(feeders, name)
			}
		}
	}
	if len(feeders) != 1 || n.modules[feeders[0]].kind != Conjunction {
		return 0, puzzle.Malformed("%s must be fed by exactly one conjunction, got %v", machine, feeders)
	}
	feeder := n.modules[feeders[0]]

	first := make(map[string]int, len(feeder.memory))
	for press := 1; press <= maxPresses && len(first) < len(feeder.memory); press++ {
		n.Press(func(p Pulse) {
			if p.High && p.To == feeders[0] {
				if _, seen := first[p.From]; !seen {
					first[p.From] = press
				}
			}
		})
	}
	if len(first) < len(feeder.memory) {
		return 0, puzzle.Malformed("feeder inputs never all fired within %d presses", maxPresses)
	}
	cycles := make([]int, 0, len(first))
	for _, c := range first {
		cycles = append(cycles, c)
	}
	return mathx.LCMSlice(cycles), nil
}
