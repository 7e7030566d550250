// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"math/rand/v2"

	"github.com/edwinsyarief/hako"
	"github.com/pkg/profile"
)

type canUpdate struct{}

type data1 struct {
	A int64
	B int64
}

type data2 struct {
	A float64
	B float64
}

func main() {
	rounds := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run churns entities: half carry data1, half data2, every tick swaps their
// fields and the data2 half is destroyed from inside RunMut.
func run(rounds, iters, numEntities int) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range rounds {
		r := hako.New()
		for range iters {
			for _, e := range r.CreateEntities(numEntities) {
				must(hako.Add(r, e, canUpdate{}))
				if rng.IntN(2) == 0 {
					must(hako.Add(r, e, data1{A: rng.Int64N(100), B: rng.Int64N(100)}))
				} else {
					must(hako.Add(r, e, data2{A: rng.Float64(), B: rng.Float64()}))
				}
			}
			must(hako.RunMut[canUpdate](r, func(r *hako.Registry, e hako.Entity) {
				if hako.Has[data1](r, e) {
					must(hako.BorrowMut(r, e, func(d *data1) { d.A, d.B = d.A-d.B, d.B-d.A }))
					return
				}
				must(hako.BorrowMut(r, e, func(d *data2) { d.A, d.B = d.A-d.B, d.B-d.A }))
			}))
			must(hako.RunMut[data2](r, func(r *hako.Registry, e hako.Entity) {
				must(r.RemoveEntity(e))
			}))
			r.Clear()
		}
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
