// Package advent is a collection of daily puzzle solutions (Advent of Code
// 2023 and 2024) built on a small set of reusable search and geometry
// packages.
//
// 🚀 What is inside?
//
//	Every day is an isolated kernel: it reads a text input and computes one
//	or two integers. The kernels share:
//		• puzzle   – input splitting, registry, runner, answer verification
//		• grid     – rune grids, points, directions, shoelace/Pick geometry
//		• graph    – a small string-keyed (un)directed, (un)weighted graph
//		• bfs      – generic breadth-first search over any comparable state
//		• dijkstra – generic Dijkstra with state-dependent edges
//		• dfs      – topological sort, cycle check, longest simple path
//		• flow     – Edmonds–Karp max-flow and min-cut
//		• matrix   – exact rational Gauss–Jordan elimination
//		• mathx    – GCD/LCM and friends over constraints.Integer
//
// Layout:
//
//	year2023/dayNN/  one package per 2023 puzzle (days 1–25)
//	year2024/dayNN/  one package per 2024 puzzle (days 1–6)
//	year2023/, year2024/  registration of every day into a puzzle.Registry
//	config/          advent.yaml + .env + ADVENT_* settings, zap logger
//	cmd/advent/      the cobra CLI: run, list, verify
//
// Quick start:
//
//	go run ./cmd/advent run 2023 1 --input - < inputs/2023/01.txt
//	go run ./cmd/advent verify 2024
//
// Malformed input never yields a silent garbage answer: kernels return an
// error wrapping puzzle.ErrMalformedInput.
package advent
