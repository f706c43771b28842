package main

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Track is an axis-aligned segment. X1<=X2 and Y1<=Y2 always hold.
type Track struct {
	X1, Y1, X2, Y2 float64
}

func NewTrack(x1, y1, x2, y2 float64) (Track, error) {
	t := Track{
		X1: math.Min(x1, x2),
		Y1: math.Min(y1, y2),
		X2: math.Max(x1, x2),
		Y2: math.Max(y1, y2),
	}
	if (t.X1 == t.X2) == (t.Y1 == t.Y2) {
		return Track{}, fmt.Errorf("track (%g,%g)-(%g,%g) must be horizontal or vertical", x1, y1, x2, y2)
	}
	return t, nil
}

func (t Track) Vertical() bool {
	return t.X1 == t.X2
}

func (t Track) ClosestPoint(x, y float64) Point {
	if t.Vertical() {
		return Point{X: t.X1, Y: clamp(y, t.Y1, t.Y2)}
	}
	return Point{X: clamp(x, t.X1, t.X2), Y: t.Y1}
}

func (t Track) Contains(p Point) bool {
	return p.X >= t.X1 && p.X <= t.X2 && p.Y >= t.Y1 && p.Y <= t.Y2
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Network is the fixed set of tracks the stick may travel on.
type Network struct {
	tracks []Track
}

func NewNetwork(tracks ...Track) (*Network, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("track network needs at least one track")
	}
	return &Network{tracks: append([]Track(nil), tracks...)}, nil
}

func (n *Network) Tracks() []Track {
	return append([]Track(nil), n.tracks...)
}

func (n *Network) Len() int {
	return len(n.tracks)
}

func (n *Network) Track(i int) Track {
	return n.tracks[i]
}

// Project returns the point of the network closest to (x, y) and its
// distance. Ties go to the track added first.
func (n *Network) Project(x, y float64) (Point, float64) {
	from := Point{X: x, Y: y}
	best := Point{X: math.Inf(1), Y: math.Inf(1)}
	bestDist := math.Inf(1)
	for _, t := range n.tracks {
		p := t.ClosestPoint(x, y)
		if d := from.Dist(p); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, bestDist
}
