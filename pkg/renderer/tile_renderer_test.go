package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid(t *testing.T) {
	tiles := NewTileGrid(10, 7, 4, 42)

	if len(tiles) != 6 {
		t.Fatalf("Expected 6 tiles, got %d", len(tiles))
	}

	covered := make(map[image.Point]int)
	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}
	if len(covered) != 70 {
		t.Errorf("Expected 70 covered pixels, got %d", len(covered))
	}
	for p, n := range covered {
		if n != 1 {
			t.Errorf("Pixel %v covered %d times", p, n)
		}
	}

	last := tiles[len(tiles)-1].Bounds
	if last != image.Rect(8, 4, 10, 7) {
		t.Errorf("Expected last tile clipped to image, got %v", last)
	}
}

func TestNewTile_DeterministicRandom(t *testing.T) {
	a := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	b := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	c := NewTile(4, image.Rect(0, 0, 1, 1), 42)

	va, vb, vc := a.Random.Float64(), b.Random.Float64(), c.Random.Float64()
	if va != vb {
		t.Errorf("Expected equal sequences for equal seeds, got %f and %f", va, vb)
	}
	if va == vc {
		t.Errorf("Expected different sequences for different tiles")
	}
}
