package main

import (
	"fmt"
	"net/http"
	"strconv"

	"clinicaacosta.org/clinic-web/internal/carousel"
)

// Clone depth per rail. The services rail shows wide cards and needs less
// padding than the narrow gallery strip.
const (
	servicesCloneDepth = 4
	galleryCloneDepth  = 7
)

// railSlot is one rendered cell of an infinite rail, clones included.
type railSlot struct {
	Index   int
	IsClone bool
	Active  bool
}

type railDot struct {
	Index  int
	Active bool
}

// railView drives a carousel fragment: the padded slot sequence, the active
// logical index, and the step URLs the arrow buttons target.
type railView struct {
	Lang    string
	Slots   []railSlot
	Active  int
	Dots    []railDot
	PrevURL string
	NextURL string
}

// stepIndex advances active one slide in dir using the engine's wrap rules,
// so the fragment endpoints agree with the client-side math. dir 0 keeps the
// current slide (used on the initial render).
func stepIndex(n, clones, active, dir int) int {
	eng := carousel.New(n, clones)
	eng.SetMetrics(1, 1)
	eng.GoTo(active)
	if dir != 0 {
		eng.StepOne(dir)
	}
	return eng.Index()
}

// buildRailView lays out the padded sequence around the active index.
func buildRailView(fragPath, lang string, n, clones, active int) railView {
	eng := carousel.New(n, clones)
	seq := eng.Sequence()
	c := (len(seq) - n) / 2

	v := railView{Lang: lang, Active: active}
	for i, idx := range seq {
		v.Slots = append(v.Slots, railSlot{
			Index:   idx,
			IsClone: i < c || i >= c+n,
			Active:  i >= c && i < c+n && idx == active,
		})
	}
	for i := 0; i < n; i++ {
		v.Dots = append(v.Dots, railDot{Index: i, Active: i == active})
	}
	v.PrevURL = fmt.Sprintf("%s?i=%d&dir=-1", fragPath, active)
	v.NextURL = fmt.Sprintf("%s?i=%d&dir=1", fragPath, active)
	return v
}

// railParams reads the step request: current index and direction.
func railParams(r *http.Request, n int) (active, dir int) {
	active, _ = strconv.Atoi(r.URL.Query().Get("i"))
	if active < 0 || active >= n {
		active = 0
	}
	switch r.URL.Query().Get("dir") {
	case "1":
		dir = 1
	case "-1":
		dir = -1
	}
	return active, dir
}
