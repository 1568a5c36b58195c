// Package builder provides ready-made campus map fixtures on top of
// core.Graph, for examples, tests, and the UI's initial state.
//
// Contract:
//   - Constructors return a fresh graph; they never touch shared state.
//   - Emission order is the fixture's declaration order, so edge IDs and
//     neighbor order are deterministic run to run.
//   - Only wrapped core sentinel errors are returned; never panics.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// defaultNodeWeight is the display weight assigned to fixture buildings.
const defaultNodeWeight = 1.0

// building is one fixture node: name plus canvas position.
type building struct {
	name string
	x, y float64
}

// pathway is one fixture edge: endpoints, distance in meters, walking time
// in minutes, and accessibility.
type pathway struct {
	u, v       string
	distance   float64
	time       float64
	accessible bool
}

// campusBuildings places thirteen buildings on a 1000x900 canvas.
var campusBuildings = []building{
	{"Arts Center", 150, 520},
	{"Student Center", 200, 450},
	{"Gym", 300, 280},
	{"Sports Complex", 390, 320},
	{"Parking A", 120, 140},
	{"Engineering", 520, 390},
	{"Library", 380, 480},
	{"Academic Building", 450, 680},
	{"Lecture Hall", 480, 560},
	{"Science Lab", 600, 420},
	{"Business Building", 420, 650},
	{"Theater", 280, 700},
	{"Admin Building", 520, 600},
}

// campusPathways connects the buildings; the Sports Complex-Library link is
// stairs-only and therefore not accessible.
var campusPathways = []pathway{
	{"Science Lab", "Engineering", 180, 2.5, true},
	{"Engineering", "Lecture Hall", 165, 2.5, true},
	{"Library", "Engineering", 180, 2.5, true},
	{"Library", "Lecture Hall", 140, 2.0, true},
	{"Library", "Student Center", 260, 4.0, true},
	{"Library", "Academic Building", 210, 3.0, true},
	{"Student Center", "Arts Center", 120, 2.0, true},
	{"Student Center", "Gym", 180, 2.5, true},
	{"Student Center", "Theater", 150, 2.5, true},
	{"Gym", "Sports Complex", 120, 2.0, true},
	{"Gym", "Parking A", 220, 3.5, true},
	{"Sports Complex", "Library", 140, 2.0, false},
	{"Sports Complex", "Engineering", 180, 2.5, true},
	{"Business Building", "Academic Building", 145, 2.0, true},
	{"Business Building", "Admin Building", 160, 2.5, true},
	{"Business Building", "Theater", 195, 3.0, true},
	{"Admin Building", "Lecture Hall", 135, 2.0, true},
	{"Theater", "Arts Center", 420, 6.0, true},
	{"Lecture Hall", "Science Lab", 160, 2.5, true},
	{"Parking A", "Science Lab", 420, 6.0, true},
}

// Campus builds the sample campus map: 13 buildings and 20 pathways, all
// open, one of them stairs-only. Buildings carry defaultNodeWeight.
// Complexity: O(V + E).
func Campus() (*core.Graph, error) {
	g := core.NewGraph()

	for _, b := range campusBuildings {
		if err := g.AddNode(b.name, b.x, b.y, defaultNodeWeight); err != nil {
			return nil, fmt.Errorf("builder: AddNode(%q): %w", b.name, err)
		}
	}
	for _, p := range campusPathways {
		if _, err := g.AddEdge(p.u, p.v, p.distance, p.time, p.accessible); err != nil {
			return nil, fmt.Errorf("builder: AddEdge(%s-%s): %w", p.u, p.v, err)
		}
	}

	return g, nil
}
