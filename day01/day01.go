// Command day01 recovers trebuchet calibration values: the first and last
// digit of every line, read either as plain digits or also as spelled-out
// words.
package main

import (
	_ "embed"
	"errors"
	"log"
	"strings"

	"github.com/maisem/aoc2023"
)

func main() {
	log.SetFlags(0)
	if err := aoc.Run(source, &solver{}); err != nil {
		log.Fatal(err)
	}
}

//go:embed day01.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return sumCalibration(s.Lines())
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() (any, error) {
	return sumCalibration(spellDigits(s.Lines()))
}

var errNoDigit = errors.New("no digit found")

// calibrationValue returns 10*first + last over the ASCII digits of line.
func calibrationValue(line string) (int, error) {
	first, last := -1, -1
	for _, r := range line {
		d, ok := aoc.Digit(r)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0, errNoDigit
	}
	return 10*first + last, nil
}

func sumCalibration(lines []string) (int, error) {
	vals, err := aoc.MapLines(lines, calibrationValue)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(vals...), nil
}

// spelled maps each digit word to a token that keeps the word's first and
// last letter, so a neighbouring word sharing that letter still matches
// ("eightwo" -> "e8t2o").
var spelled = []struct {
	word, token string
}{
	{"one", "o1e"},
	{"two", "t2o"},
	{"three", "t3e"},
	{"four", "f4r"},
	{"five", "f5e"},
	{"six", "s6x"},
	{"seven", "s7n"},
	{"eight", "e8t"},
	{"nine", "n9e"},
}

// spellDigits replaces the digit words of each line, one word at a time in
// the order of spelled.
func spellDigits(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		for _, sp := range spelled {
			line = strings.ReplaceAll(line, sp.word, sp.token)
		}
		out[i] = line
	}
	return out
}
