package domain

import (
	"strings"
)

// Instruction directs compaction of a grid towards one of its edges.
type Instruction uint8

const (
	Left Instruction = iota
	Right
	Up
	Down
)

// NumInstructions is the size of the instruction alphabet.
// Tables indexed by Instruction use it as their length.
const NumInstructions = 4

// Axis tells along which grid dimension an instruction operates.
type Axis uint8

const (
	Horizontal Axis = iota // rows
	Vertical               // columns
)

var symbols = [NumInstructions]byte{'L', 'R', 'U', 'D'}

var opposites = [NumInstructions]Instruction{
	Left:  Right,
	Right: Left,
	Up:    Down,
	Down:  Up,
}

// Valid reports whether i belongs to the instruction alphabet.
func (i Instruction) Valid() bool {
	return i < NumInstructions
}

// Opposite returns the instruction along the same axis pointing the other way.
// Invalid instructions are returned unchanged.
func (i Instruction) Opposite() Instruction {
	if !i.Valid() {
		return i
	}
	return opposites[i]
}

// Axis returns Horizontal for Left/Right and Vertical for Up/Down.
func (i Instruction) Axis() Axis {
	if i == Up || i == Down {
		return Vertical
	}
	return Horizontal
}

// String returns the one-letter symbol ("L", "R", "U", "D").
func (i Instruction) String() string {
	if !i.Valid() {
		return "?"
	}
	return string(symbols[i])
}

// ParseInstruction maps a single symbol to an Instruction. Symbols are case-sensitive.
func ParseInstruction(r rune) (Instruction, bool) {
	switch r {
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	}
	return 0, false
}

// Sequence is an ordered list of instructions.
type Sequence []Instruction

// String renders the sequence back to its symbolic form, e.g. "LURD".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, in := range s {
		sb.WriteString(in.String())
	}
	return sb.String()
}

// ParseSequence converts a raw instruction string into a Sequence.
// Characters outside the L/R/U/D alphabet are dropped.
func ParseSequence(raw string) Sequence {
	seq := make(Sequence, 0, len(raw))
	for _, r := range raw {
		if in, ok := ParseInstruction(r); ok {
			seq = append(seq, in)
		}
	}
	return seq
}

// ParseSequenceStrict is like ParseSequence but fails on the first unknown symbol.
func ParseSequenceStrict(raw string) (Sequence, error) {
	seq := make(Sequence, 0, len(raw))
	for pos, r := range raw {
		in, ok := ParseInstruction(r)
		if !ok {
			return nil, &InvalidInstructionError{Position: pos, Symbol: r}
		}
		seq = append(seq, in)
	}
	return seq, nil
}
