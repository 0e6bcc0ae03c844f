package hover

// Geometry is an indexed triangle mesh ready for upload.
type Geometry struct {
	Positions []float32 // xyz
	UVs       []float32 // uv
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int { return len(g.Positions) / 3 }

// PlaneGeometry builds a w x h rectangle centred at the origin split into
// segX x segY cells. Rows go from top to bottom, v is 1 at the top edge.
func PlaneGeometry(w, h float32, segX, segY int) Geometry {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}
	gridX1, gridY1 := segX+1, segY+1
	segW, segH := w/float32(segX), h/float32(segY)

	g := Geometry{
		Positions: make([]float32, 0, gridX1*gridY1*3),
		UVs:       make([]float32, 0, gridX1*gridY1*2),
		Indices:   make([]uint16, 0, segX*segY*6),
	}
	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - h/2
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - w/2
			g.Positions = append(g.Positions, x, -y, 0)
			g.UVs = append(g.UVs, float32(ix)/float32(segX), 1-float32(iy)/float32(segY))
		}
	}
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint16(ix + gridX1*iy)
			b := uint16(ix + gridX1*(iy+1))
			c := uint16(ix + 1 + gridX1*(iy+1))
			d := uint16(ix + 1 + gridX1*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}
