package ecsgo_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/ecsgo"
	"github.com/hupe1980/ecsgo/system"
)

type Position struct{ X, Y float64 }

type Velocity struct{ X, Y float64 }

type Sleeping struct{}

// Example_builder demonstrates creating entities from a reusable builder.
func Example_builder() {
	w := ecsgo.New()

	b := ecsgo.NewBuilder(ecsgo.Zero[Position](), ecsgo.With(Velocity{X: 1}))
	b.BuildN(w, 10)
	e := b.Build(w)

	fmt.Println(w.Len(), w.EntityCount(), ecsgo.Get[Velocity](e).X)
	// Output: 1 11 1
}

// Example_mutation demonstrates moving an entity between archetypes.
func Example_mutation() {
	w := ecsgo.New()
	e := ecsgo.NewBuilder(ecsgo.With(Position{X: 3})).Build(w)

	e.Add(ecsgo.With(Velocity{Y: 2})).Mutate()
	fmt.Println(ecsgo.Has[Velocity](e), ecsgo.Get[Position](e).X)

	e.Remove(ecsgo.KindOf[Velocity]()).Mutate()
	fmt.Println(ecsgo.Has[Velocity](e), w.Len())
	// Output:
	// true 3
	// false 2
}

// Example_query demonstrates a filter query that follows new archetypes.
func Example_query() {
	w := ecsgo.New()

	q := ecsgo.NewQuery(w, ecsgo.All(ecsgo.KindOf[Position]()).Without(ecsgo.KindOf[Sleeping]()))
	defer q.Close()

	ecsgo.NewBuilder(ecsgo.Zero[Position]()).BuildN(w, 2)
	ecsgo.NewBuilder(ecsgo.Zero[Position](), ecsgo.Zero[Sleeping]()).BuildN(w, 5)
	ecsgo.NewBuilder(ecsgo.Zero[Position](), ecsgo.Zero[Velocity]()).BuildN(w, 3)

	fmt.Println(len(q.Archetypes()), q.EntityCount())
	// Output: 2 5
}

// Example_system demonstrates running a movement system for a few ticks.
func Example_system() {
	w := ecsgo.New()
	e := ecsgo.NewBuilder(ecsgo.Zero[Position](), ecsgo.With(Velocity{X: 1, Y: 2})).Build(w)

	movement := system.ForEach2(w, func(p *Position, v *Velocity) {
		p.X += v.X
		p.Y += v.Y
	})
	defer movement.Close()

	runner := system.NewRunner(movement, system.RunnerOptions{MaxTicks: 3})
	if err := runner.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	fmt.Println(*ecsgo.Get[Position](e))
	// Output: {3 6}
}

// Example_describe demonstrates dumping the archetype layout.
func Example_describe() {
	w := ecsgo.New()
	ecsgo.NewBuilder(ecsgo.Zero[Position](), ecsgo.Zero[Velocity]()).BuildN(w, 4)

	if err := w.Describe(os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// archetypes: 1, entities: 4
	//   #0 entities=4 kinds=[ecsgo_test.Position ecsgo_test.Velocity]
}
