package entities

import "fmt"

// Cell is one square of the board
type Cell struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	OwnerID string `json:"owner_id"`
}

// Board is a ring of cells
type Board struct {
	Cells []*Cell `json:"cells"`
}

// NewBoard creates a board of length cells with rising prices
func NewBoard(length int) *Board {
	if length < 1 {
		length = 1
	}
	cells := make([]*Cell, length)
	for i := range cells {
		cells[i] = &Cell{
			Index: i,
			Name:  fmt.Sprintf("cell-%02d", i),
			Price: 100 + 20*i,
		}
	}
	return &Board{Cells: cells}
}

// Length returns the number of cells
func (b *Board) Length() int {
	return len(b.Cells)
}

// Wrap folds any position into [0, Length())
func (b *Board) Wrap(position int) int {
	n := b.Length()
	if n == 0 {
		return 0
	}
	position %= n
	if position < 0 {
		position += n
	}
	return position
}

// Cell returns the cell at a wrapped position
func (b *Board) Cell(position int) *Cell {
	if b.Length() == 0 {
		return nil
	}
	return b.Cells[b.Wrap(position)]
}

// Unclaimed lists the indices of cells without an owner
func (b *Board) Unclaimed() []int {
	var free []int
	for _, c := range b.Cells {
		if c.OwnerID == "" {
			free = append(free, c.Index)
		}
	}
	return free
}
