// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/edwinsyarief/hako"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	rounds := 20
	iters := 1000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := hako.New()
		for i, e := range r.CreateEntities(numEntities) {
			must(hako.Add(r, e, comp1{V: 1, W: 1}))
			must(hako.Add(r, e, comp2{V: 2, W: 2}))
			if i%3 == 0 {
				must(hako.Add(r, e, comp3{}))
			}
		}
		query := hako.NewFilter(hako.TypeOf[comp1](), hako.TypeOf[comp2]()).
			Without(hako.TypeOf[comp3]())

		for range iters {
			must(hako.Run[comp1](r, func(rd hako.Reader, e hako.Entity) {
				_, err := hako.Borrow[comp1](rd, e)
				must(err)
			}))
			must(query.EachMut(r, func(r *hako.Registry, e hako.Entity) {
				c2, err := hako.Get[comp2](r, e)
				must(err)
				must(hako.BorrowMut(r, e, func(c1 *comp1) {
					c1.V += c2.V
					c1.W += c2.W
				}))
			}))
		}
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
