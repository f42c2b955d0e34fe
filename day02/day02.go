// Command day02 evaluates records of cube games: which games a bag of
// 13 red, 13 green and 14 blue cubes could have produced, and the power of
// the smallest bag for each game.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

func main() {
	log.SetFlags(0)
	if err := aoc.Run(source, &solver{}); err != nil {
		log.Fatal(err)
	}
}

//go:embed day02.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	games, err := parseGames(s.Lines())
	if err != nil {
		return nil, err
	}
	return possibleIDs(games, maxUsable), nil
}

// want=2286
func (s solver) D2p2() (any, error) {
	games, err := parseGames(s.Lines())
	if err != nil {
		return nil, err
	}
	return totalPower(games), nil
}

var (
	errUnknownColor = errors.New("unknown color")
	errGameID       = errors.New("bad game id")
)

// draw is the cubes of each color shown at once.
type draw struct {
	red, green, blue int
}

// maxUsable is the content of the bag.
var maxUsable = draw{red: 13, green: 13, blue: 14}

// exceeds reports whether d has more cubes than o of any color.
func (d draw) exceeds(o draw) bool {
	return d.red > o.red || d.green > o.green || d.blue > o.blue
}

func (d draw) max(o draw) draw {
	return draw{
		red:   max(d.red, o.red),
		green: max(d.green, o.green),
		blue:  max(d.blue, o.blue),
	}
}

func (d draw) power() int {
	return d.red * d.green * d.blue
}

type game struct {
	id    int
	draws []draw
}

// maxUsage returns the fewest cubes of each color that could have
// produced every draw of g.
func (g game) maxUsage() draw {
	return aoc.Fold(g.draws, draw.max, draw{})
}

// parseDraw parses a clause like "3 blue, 4 red". Missing colors are 0.
func parseDraw(clause string) (draw, error) {
	var d draw
	for _, pair := range strings.Split(clause, ", ") {
		n, color, ok := strings.Cut(pair, " ")
		if !ok {
			return draw{}, fmt.Errorf("%w: cube count %q", aoc.ErrMalformed, pair)
		}
		count, err := strconv.Atoi(n)
		if err != nil || count < 0 {
			return draw{}, fmt.Errorf("%w: count %q is not a non-negative integer", aoc.ErrMalformed, n)
		}
		switch color {
		case "red":
			d.red += count
		case "green":
			d.green += count
		case "blue":
			d.blue += count
		default:
			return draw{}, fmt.Errorf("%w %q", errUnknownColor, color)
		}
	}
	return d, nil
}

// parseGame parses "Game <id>: <draw>; <draw>...". The id must be want.
func parseGame(line string, want int) (game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return game{}, fmt.Errorf("%w: missing ':'", aoc.ErrMalformed)
	}
	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return game{}, fmt.Errorf("%w: missing \"Game\" prefix", aoc.ErrMalformed)
	}
	id, err := aoc.Atoi(idStr)
	if err != nil {
		return game{}, err
	}
	if id != want {
		return game{}, fmt.Errorf("%w: got %d; want %d", errGameID, id, want)
	}
	g := game{id: id}
	for _, clause := range strings.Split(strings.TrimPrefix(rest, " "), "; ") {
		d, err := parseDraw(clause)
		if err != nil {
			return game{}, err
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}

func parseGames(lines []string) ([]game, error) {
	id := 0
	return aoc.MapLines(lines, func(line string) (game, error) {
		id++
		return parseGame(line, id)
	})
}

// possibleIDs sums the ids of the games whose draws never exceed bag.
func possibleIDs(games []game, bag draw) int {
	sum := 0
	for _, g := range games {
		if g.maxUsage().exceeds(bag) {
			continue
		}
		sum += g.id
	}
	return sum
}

func totalPower(games []game) int {
	powers := make([]int, len(games))
	for i, g := range games {
		powers[i] = g.maxUsage().power()
	}
	return aoc.Sum(powers...)
}
