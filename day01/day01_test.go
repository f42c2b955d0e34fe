package main

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maisem/aoc2023"
)

func TestSamples(t *testing.T) {
	if err := aoc.Check(source, &solver{}); err != nil {
		t.Fatal(err)
	}
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"5", 55},
		{"x0y", 0},
		{"91", 91},
	}
	for _, tt := range tests {
		got, err := calibrationValue(tt.line)
		if err != nil || got != tt.want {
			t.Errorf("calibrationValue(%q) = %v, %v, want %v", tt.line, got, err, tt.want)
		}
	}
}

func TestSingleDigitIsDoubled(t *testing.T) {
	for d := 0; d <= 9; d++ {
		line := "ab" + string(rune('0'+d)) + "cd"
		if got, err := calibrationValue(line); err != nil || got != 11*d {
			t.Errorf("calibrationValue(%q) = %v, %v, want %v", line, got, err, 11*d)
		}
	}
}

func TestNoDigit(t *testing.T) {
	_, err := sumCalibration([]string{"1abc2", "nodigits", "3"})
	var pe *aoc.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("sumCalibration = %v, want *aoc.ParseError", err)
	}
	if pe.Line != 2 || pe.Text != "nodigits" || !errors.Is(err, errNoDigit) {
		t.Errorf("error = %v", err)
	}
}

func TestSpellDigits(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"eightwo", "e8t2o"},
		{"oneight", "o1e8t"},
		{"twone", "t2o1e"},
		{"sevenine", "s7n9e"},
		{"zero", "zero"},
		{"4nineeightseven2", "4n9ee8ts7n2"},
	}
	for _, tt := range tests {
		if got := spellDigits([]string{tt.line}); got[0] != tt.want {
			t.Errorf("spellDigits(%q) = %q, want %q", tt.line, got[0], tt.want)
		}
	}
}

func TestSpelledCalibration(t *testing.T) {
	lines := []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
		"eightwo",
	}
	var got []int
	for _, l := range spellDigits(lines) {
		v, err := calibrationValue(l)
		if err != nil {
			t.Fatalf("calibrationValue(%q): %v", l, err)
		}
		got = append(got, v)
	}
	want := []int{29, 83, 13, 24, 42, 14, 76, 82}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
}

func TestPart1IgnoresWords(t *testing.T) {
	got, err := sumCalibration([]string{"one2three", "4five"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 22+44 {
		t.Errorf("sumCalibration = %v, want %v", got, 22+44)
	}
}
