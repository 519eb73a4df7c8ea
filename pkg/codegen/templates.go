// Package codegen owns the code generator's post-processing (fenced
// code block extraction, MainScene validation) and the built-in template
// catalogue used when every provider fails.
package codegen

import "strings"

// templateCatalogue is a small built-in set of scene templates keyed by
// substring match on the concept, used as the last-resort fallback when
// every provider in the fallback chain fails.
var templateCatalogue = []struct {
	keyword string
	code    string
}{
	{"mobius", mobiusTemplate},
	{"klein bottle", kleinBottleTemplate},
	{"torus knot", torusKnotTemplate},
}

// MatchTemplate returns a built-in template's code for concept, and
// whether one was found.
func MatchTemplate(concept string) (string, bool) {
	needle := strings.ToLower(concept)
	for _, tmpl := range templateCatalogue {
		if strings.Contains(needle, tmpl.keyword) {
			return tmpl.code, true
		}
	}
	return "", false
}

const mobiusTemplate = `class MainScene(ThreeDScene):
    def construct(self):
        strip = Surface(
            lambda u, v: mobius_point(u, v),
            u_range=[0, TAU], v_range=[-1, 1],
        )
        self.play(Create(strip))
        self.wait()
`

const kleinBottleTemplate = `class MainScene(ThreeDScene):
    def construct(self):
        bottle = Surface(
            lambda u, v: klein_bottle_point(u, v),
            u_range=[0, TAU], v_range=[0, TAU],
        )
        self.play(Create(bottle))
        self.wait()
`

const torusKnotTemplate = `class MainScene(ThreeDScene):
    def construct(self):
        knot = ParametricFunction(
            lambda t: torus_knot_point(t, p=2, q=3),
            t_range=[0, TAU],
        )
        self.play(Create(knot))
        self.wait()
`
