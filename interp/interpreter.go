// Package interp executes emitted tape-machine instruction strings.  It is a
// pure consumer of the compiler's output: feed it the instruction string and
// it returns output text and final cell state.  The implementation run-length
// encodes the code and precomputes loop jump targets before execution.
package interp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// defaultMemorySize is the tape length used when no size option is given.
const defaultMemorySize = 30000

// initialInfiniteSize is the starting tape length in auto-expanding mode.
const initialInfiniteSize = 1024

// timeCheckInterval is how many instructions execute between time-limit
// checks.
const timeCheckInterval = 4096

// instr is one run-length encoded instruction.  For `+ - < >` the argument is
// the repeat count; for `[ ]` it is the jump target; for `. ,` it is the
// repeat count (always 1 after encoding).
type instr struct {
	op  byte
	arg int
}

// Interpreter executes one instruction string against one tape.
type Interpreter struct {
	code []instr

	memory   []uint64
	mask     uint64
	cellBits int
	ptr      int
	infinite bool

	input    string
	inputPos int
	output   strings.Builder

	timeLimit time.Duration
	finished  bool
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithMemorySize fixes the tape to n cells.
func WithMemorySize(n int) Option {
	return func(it *Interpreter) {
		it.memory = make([]uint64, n)
		it.infinite = false
	}
}

// WithInfiniteMemory starts the tape small and expands it as the pointer
// advances.
func WithInfiniteMemory() Option {
	return func(it *Interpreter) {
		it.memory = make([]uint64, initialInfiniteSize)
		it.infinite = true
	}
}

// WithCellBits sets the unsigned cell width.  Supported widths are 8, 16, 32,
// and 64 bits.
func WithCellBits(bits int) Option {
	return func(it *Interpreter) {
		it.cellBits = bits
	}
}

// WithInput supplies the input text consumed by the input instruction.
// Reading past its end yields zero.
func WithInput(input string) Option {
	return func(it *Interpreter) {
		it.input = input
	}
}

// WithTimeLimit bounds execution time.
func WithTimeLimit(limit time.Duration) Option {
	return func(it *Interpreter) {
		it.timeLimit = limit
	}
}

// New creates an interpreter for the given instruction string.  Characters
// outside the eight-instruction alphabet are ignored.  Mismatched loop
// brackets are rejected.
func New(code string, opts ...Option) (*Interpreter, error) {
	it := &Interpreter{
		memory:    make([]uint64, defaultMemorySize),
		cellBits:  8,
		timeLimit: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(it)
	}

	switch it.cellBits {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("unsupported cell width %d: use 8, 16, 32, or 64", it.cellBits)
	}

	if it.cellBits == 64 {
		it.mask = ^uint64(0)
	} else {
		it.mask = (uint64(1) << uint(it.cellBits)) - 1
	}

	if err := it.encode(code); err != nil {
		return nil, err
	}

	return it, nil
}

// encode run-length encodes the instruction string and resolves loop jump
// targets.
func (it *Interpreter) encode(code string) error {
	var jumpStack []int

	for i := 0; i < len(code); i++ {
		c := code[i]

		switch c {
		case '+', '-', '>', '<':
			count := 1
			for i+1 < len(code) && code[i+1] == c {
				count++
				i++
			}

			it.code = append(it.code, instr{op: c, arg: count})
		case '.', ',':
			it.code = append(it.code, instr{op: c, arg: 1})
		case '[':
			jumpStack = append(jumpStack, len(it.code))
			it.code = append(it.code, instr{op: '['})
		case ']':
			if len(jumpStack) == 0 {
				return fmt.Errorf("mismatched `]` at code position %d", i)
			}

			open := jumpStack[len(jumpStack)-1]
			jumpStack = jumpStack[:len(jumpStack)-1]

			it.code = append(it.code, instr{op: ']', arg: open})
			it.code[open].arg = len(it.code) - 1
		}
	}

	if len(jumpStack) != 0 {
		return errors.New("mismatched `[`: loop never closed")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Run executes the code until completion, error, or time limit.  Running a
// finished interpreter is a no-op.
func (it *Interpreter) Run() error {
	if it.finished {
		return nil
	}
	it.finished = true

	start := time.Now()

	for pc, steps := 0, 0; pc < len(it.code); pc++ {
		steps++
		if steps%timeCheckInterval == 0 && time.Since(start) > it.timeLimit {
			return fmt.Errorf("execution exceeded time limit of %s", it.timeLimit)
		}

		in := it.code[pc]

		switch in.op {
		case '>':
			it.ptr += in.arg
			if err := it.checkBounds(); err != nil {
				return err
			}
		case '<':
			it.ptr -= in.arg
			if err := it.checkBounds(); err != nil {
				return err
			}
		case '+':
			it.memory[it.ptr] = (it.memory[it.ptr] + uint64(in.arg)) & it.mask
		case '-':
			it.memory[it.ptr] = (it.memory[it.ptr] - uint64(in.arg)) & it.mask
		case '.':
			it.output.WriteByte(byte(it.memory[it.ptr] & 0xFF))
		case ',':
			var value uint64
			if it.inputPos < len(it.input) {
				value = uint64(it.input[it.inputPos])
				it.inputPos++
			}

			it.memory[it.ptr] = value & it.mask
		case '[':
			if it.memory[it.ptr] == 0 {
				pc = in.arg
			}
		case ']':
			if it.memory[it.ptr] != 0 {
				pc = in.arg
			}
		}
	}

	return nil
}

// checkBounds validates the data pointer after a move, expanding the tape
// first in auto-expanding mode.
func (it *Interpreter) checkBounds() error {
	if it.ptr < 0 {
		return errors.New("data pointer moved below zero")
	}

	if it.ptr < len(it.memory) {
		return nil
	}

	if !it.infinite {
		return fmt.Errorf("data pointer %d out of fixed memory bounds %d", it.ptr, len(it.memory))
	}

	newSize := len(it.memory) * 2
	if newSize < it.ptr+1024 {
		newSize = it.ptr + 1024
	}

	grown := make([]uint64, newSize)
	copy(grown, it.memory)
	it.memory = grown

	return nil
}

// -----------------------------------------------------------------------------

// Output returns everything written by the output instruction.
func (it *Interpreter) Output() string {
	return it.output.String()
}

// Cell returns the final value of the cell at the given address.  Addresses
// beyond the tape read as zero.
func (it *Interpreter) Cell(addr int) uint64 {
	if addr < 0 || addr >= len(it.memory) {
		return 0
	}

	return it.memory[addr]
}

// Pointer returns the final data pointer position.
func (it *Interpreter) Pointer() int {
	return it.ptr
}

// CellBits returns the configured cell width.
func (it *Interpreter) CellBits() int {
	return it.cellBits
}
