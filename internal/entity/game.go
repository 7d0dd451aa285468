package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 3

// CellCount is the number of cells on the board, and the move count at which a game without a winner is a draw.
const CellCount = Size * Size

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the symbol a player places on the board.
type Mark uint8

const (
	NoMark Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Other - returns the mark of the opponent.
func (that Mark) Other() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoMark
	}
}

// Cell - returns the cell value holding this mark.
func (that Mark) Cell() Cell {
	return Cell(that)
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = NoMark
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}

// Cell is the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// Mark - returns the mark in the cell and whether the cell is filled.
func (that Cell) Mark() (Mark, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return NoMark, false
	}
}

func (that Cell) String() string {
	if mark, ok := that.Mark(); ok {
		return mark.String()
	}
	return ""
}

// Position addresses a cell by row and column, both in [0, Size).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Lines holds the eight winning triples: rows, then columns, then the main and anti diagonals.
var Lines = [8][Size]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]Cell

// At - returns the cell at pos, or EmptyCell when pos is off the board.
func (that *Board) At(pos Position) Cell {
	if !pos.Valid() {
		return EmptyCell
	}
	return that[pos.Row][pos.Col]
}

// Filled - returns the number of non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				filled++
			}
		}
	}
	return filled
}

func (that Board) String() string {
	var sb strings.Builder
	for r, row := range that {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte('|')
			}
			if cell == EmptyCell {
				sb.WriteByte('_')
				continue
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
