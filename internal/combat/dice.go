package combat

// Rand is the randomness a match consumes. *rand.Rand satisfies it; tests
// plug in fixed sources to force die faces or shuffle orders.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type Face int

const (
	Sword Face = iota
	Flag
	Circle
	Triangle
	Square
	Magic
	faceCount
)

var faceNames = [faceCount]string{"sword", "flag", "circle", "triangle", "square", "magic"}

func (f Face) String() string {
	if f < 0 || f >= faceCount {
		return "unknown"
	}
	return faceNames[f]
}

// hitTable[defender class][face]
var hitTable = [classCount][faceCount]bool{
	Light:  {Sword: true, Circle: true, Magic: true},
	Medium: {Sword: true, Triangle: true},
	Heavy:  {Sword: true, Square: true},
	Elite:  {Sword: true},
}

// HitBy reports whether a rolled face damages a defender of class c.
func (c Class) HitBy(f Face) bool {
	if c < 0 || c >= classCount || f < 0 || f >= faceCount {
		return false
	}
	return hitTable[c][f]
}

// RollFace draws one of the six faces uniformly.
func RollFace(rng Rand) Face {
	return Face(rng.Intn(int(faceCount)))
}

func RollDice(rng Rand, n int) []Face {
	out := make([]Face, n)
	for i := range out {
		out[i] = RollFace(rng)
	}
	return out
}
