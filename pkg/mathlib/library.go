// Package mathlib holds the static equation/theorem/definition library and
// the math enricher that merges it with provider suggestions into a
// model.MathEnrichment. The library itself is a fixed, read-only lookup
// table (out of scope for runtime changes) — a small representative seed,
// not an exhaustive reference.
package mathlib

import "github.com/conceptreel/conceptreel/pkg/model"

var equationLibrary = []model.Equation{
	{
		ID: "eq.derivative.limit-def", Name: "Derivative (limit definition)",
		LaTeX: `f'(x) = \lim_{h \to 0} \frac{f(x+h) - f(x)}{h}`,
		Tags:  []string{"derivative", "calculus", "limit"}, Variables: []string{"f", "x", "h"},
	},
	{
		ID: "eq.integral.fundamental", Name: "Fundamental theorem of calculus",
		LaTeX: `\int_a^b f'(x)\,dx = f(b) - f(a)`,
		Tags:  []string{"integral", "calculus", "fundamental theorem"}, Variables: []string{"f", "a", "b", "x"},
	},
	{
		ID: "eq.pythagorean", Name: "Pythagorean theorem",
		LaTeX: `a^2 + b^2 = c^2`,
		Tags:  []string{"pythagorean", "geometry", "triangle"}, Variables: []string{"a", "b", "c"},
	},
	{
		ID: "eq.euler-identity", Name: "Euler's identity",
		LaTeX: `e^{i\pi} + 1 = 0`,
		Tags:  []string{"complex numbers", "euler", "identity"}, Variables: []string{"e", "i", "pi"},
	},
	{
		ID: "eq.quadratic", Name: "Quadratic formula",
		LaTeX: `x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}`,
		Tags:  []string{"quadratic", "algebra", "roots"}, Variables: []string{"a", "b", "c", "x"},
	},
	{
		ID: "eq.fourier-series", Name: "Fourier series",
		LaTeX: `f(x) = a_0 + \sum_{n=1}^\infty \left(a_n\cos(nx) + b_n\sin(nx)\right)`,
		Tags:  []string{"fourier", "series", "periodic"}, Variables: []string{"a", "b", "n", "x"},
	},
	{
		ID: "eq.eigen", Name: "Eigenvalue equation",
		LaTeX: `A v = \lambda v`,
		Tags:  []string{"eigenvalue", "matrix", "linear algebra"}, Variables: []string{"A", "v", "lambda"},
	},
}

var theoremLibrary = []model.Theorem{
	{
		ID: "thm.pythagorean", Name: "Pythagorean theorem",
		Statement: "In a right triangle, the square of the hypotenuse equals the sum of the squares of the other two sides.",
		Tags:      []string{"pythagorean", "geometry", "triangle"},
	},
	{
		ID: "thm.fundamental-calculus", Name: "Fundamental theorem of calculus",
		Statement: "Differentiation and integration are inverse operations.",
		Tags:      []string{"calculus", "integral", "derivative", "fundamental theorem"},
	},
	{
		ID: "thm.intermediate-value", Name: "Intermediate value theorem",
		Statement: "A continuous function on [a,b] takes every value between f(a) and f(b).",
		Tags:      []string{"continuity", "limit", "calculus"},
	},
}

var definitionLibrary = []model.Definition{
	{Term: "derivative", Explanation: "The instantaneous rate of change of a function with respect to a variable."},
	{Term: "integral", Explanation: "The accumulated area under a curve over an interval."},
	{Term: "limit", Explanation: "The value a function approaches as its input approaches some point."},
	{Term: "eigenvalue", Explanation: "A scalar by which an eigenvector is scaled under a linear transformation."},
	{Term: "matrix", Explanation: "A rectangular array of numbers representing a linear transformation."},
}

var visualizationTemplates = []struct {
	keyword string
	vis     model.Visualization
}{
	{"integral", model.Visualization{Name: "Riemann rectangles", Description: "Animate rectangles under the curve narrowing into the area under it."}},
	{"derivative", model.Visualization{Name: "Tangent line sweep", Description: "Sweep a tangent line along the curve, tracking its slope."}},
	{"matrix", model.Visualization{Name: "Grid transformation", Description: "Animate a unit grid warping under the matrix's linear map."}},
	{"eigen", model.Visualization{Name: "Eigenvector fixed directions", Description: "Highlight directions that only scale, never rotate, under the transform."}},
	{"fourier", model.Visualization{Name: "Epicycle decomposition", Description: "Build the waveform from rotating epicycles of decreasing amplitude."}},
	{"pythagorean", model.Visualization{Name: "Square rearrangement proof", Description: "Rearrange the three squares to show area equivalence."}},
	{"probability", model.Visualization{Name: "Sample space partition", Description: "Partition a unit square into outcome regions sized by probability."}},
}
