package breakout

// Block is a destructible rectangle. Once destroyed it stays destroyed.
type Block struct {
	X, Y          float64
	Width, Height float64
	Destroyed     bool
}

// newStaircase lays blocks out diagonally: block i sits at
// (width*i, height*i).
func newStaircase(quantity int, width, height float64) []Block {
	blocks := make([]Block, quantity)
	for i := range blocks {
		blocks[i] = Block{
			X:      width * float64(i),
			Y:      height * float64(i),
			Width:  width,
			Height: height,
		}
	}
	return blocks
}

// Draw paints the block.
func (b *Block) Draw(s Surface, index int) {
	s.FillRect(Entity{Kind: EntityBlock, Index: index}, b.X, b.Y, b.Width, b.Height)
}

// countAlive returns the number of blocks not yet destroyed.
func countAlive(blocks []Block) int {
	n := 0
	for i := range blocks {
		if !blocks[i].Destroyed {
			n++
		}
	}
	return n
}
