package nestedsettesting

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/forestrie/go-nestedset/nestedset"
)

// Fixture describes a tree by shape. Encode assigns the nested-set bounds.
type Fixture struct {
	Name     string
	Children []Fixture
}

// Encode numbers f by a preorder walk, starting ids and bounds at 1. Records
// are returned in preorder (ascending Left).
func Encode(f Fixture) []nestedset.Record {
	type frame struct {
		f    *Fixture
		rec  int // position in out
		next int // next child to visit
	}

	var out []nestedset.Record
	counter := int64(1)

	open := func(f *Fixture) frame {
		out = append(out, nestedset.Record{
			ID:   int64(len(out) + 1),
			Name: f.Name,
			Left: counter,
		})
		counter++
		return frame{f: f, rec: len(out) - 1}
	}

	stack := []frame{open(&f)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.f.Children) {
			child := &top.f.Children[top.next]
			top.next++
			stack = append(stack, open(child))
			continue
		}
		out[top.rec].Right = counter
		counter++
		stack = stack[:len(stack)-1]
	}
	return out
}

// RandomFixture grows a tree of n nodes by attaching each new node to a
// uniformly chosen existing node.
func RandomFixture(rng *rand.Rand, n int) Fixture {
	if n < 1 {
		n = 1
	}
	parents := make([]int, n)
	children := make([][]int, n)
	for i := 1; i < n; i++ {
		parents[i] = rng.Intn(i)
		children[parents[i]] = append(children[parents[i]], i)
	}

	// materialise bottom up; node i is always created after its parent
	fixtures := make([]Fixture, n)
	for i := n - 1; i >= 0; i-- {
		fixtures[i].Name = fmt.Sprintf("node-%d", i)
		for _, c := range children[i] {
			fixtures[i].Children = append(fixtures[i].Children, fixtures[c])
		}
	}
	return fixtures[0]
}

// Shuffled returns a shuffled copy of records.
func Shuffled(rng *rand.Rand, records []nestedset.Record) []nestedset.Record {
	out := slices.Clone(records)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ScenarioRecords is a four node tree: A holds B and C, B holds D.
func ScenarioRecords() []nestedset.Record {
	return []nestedset.Record{
		{ID: 1, Name: "A", Left: 1, Right: 10},
		{ID: 2, Name: "B", Left: 2, Right: 5},
		{ID: 3, Name: "C", Left: 6, Right: 9},
		{ID: 4, Name: "D", Left: 3, Right: 4},
	}
}

// FoodRecords is a nine node catalogue as read back from a table where
// children were always inserted as the first child, so ids do not follow
// preorder.
//
//	Food
//	├── Fruit
//	│   ├── Red ── Cherry
//	│   └── Yellow ── Banana
//	└── Meat
//	    ├── Beef
//	    └── Pork
func FoodRecords() []nestedset.Record {
	return []nestedset.Record{
		{ID: 1, Name: "Food", Left: 1, Right: 18},
		{ID: 2, Name: "Meat", Left: 12, Right: 17},
		{ID: 3, Name: "Fruit", Left: 2, Right: 11},
		{ID: 4, Name: "Yellow", Left: 7, Right: 10},
		{ID: 5, Name: "Red", Left: 3, Right: 6},
		{ID: 6, Name: "Cherry", Left: 4, Right: 5},
		{ID: 7, Name: "Banana", Left: 8, Right: 9},
		{ID: 8, Name: "Pork", Left: 15, Right: 16},
		{ID: 9, Name: "Beef", Left: 13, Right: 14},
	}
}

// Names projects records to their names, for compact assertions.
func Names(records []nestedset.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}
