package simulation

// Trace is the radial distance of every non-central body from the
// central body, sampled while stepping.
type Trace struct {
	Names     []string
	Steps     []int
	Distances [][]float64 // [body][sample]
	Captured  []int       // step at which each body crossed the horizon, -1 if never
}

// Record steps the registry steps times, sampling every n-th step and the
// final one. While recording, a body inside the central horizon is
// marked captured the first time it is seen there.
func Record(r *Registry, in *Integrator, steps, every int) *Trace {
	if every < 1 {
		every = 1
	}

	central := r.Central()
	others := r.Bodies()[1:]

	t := &Trace{
		Names:     make([]string, len(others)),
		Distances: make([][]float64, len(others)),
		Captured:  make([]int, len(others)),
	}
	for i, b := range others {
		t.Names[i] = b.Name
		t.Captured[i] = -1
	}

	sample := func(step int) {
		t.Steps = append(t.Steps, step)
		for i, b := range others {
			t.Distances[i] = append(t.Distances[i], b.Position.Sub(central.Position).Length())
		}
	}

	sample(0)
	for step := 1; step <= steps; step++ {
		in.Step(r.Bodies())
		for i, b := range others {
			if t.Captured[i] < 0 && central.Intercept(b.Position) {
				t.Captured[i] = step
			}
		}
		if step%every == 0 || step == steps {
			sample(step)
		}
	}
	return t
}
