package battle

// Step is one suspendable unit of battle flow. It must call next exactly once
// when it has finished, or never if the flow stops there.
type Step func(next func())

// Sequence chains steps so each starts only after the previous one completed.
func Sequence(steps ...Step) Step {
	return func(done func()) {
		var run func(i int)
		run = func(i int) {
			if i == len(steps) {
				done()
				return
			}
			completed := false
			steps[i](func() {
				if completed {
					panic("battle: step completed twice")
				}
				completed = true
				run(i + 1)
			})
		}
		run(0)
	}
}

// Run starts a step with nothing to do afterwards.
func (s Step) Run() {
	s(func() {})
}

// do wraps an action that completes immediately.
func do(action func()) Step {
	return func(next func()) {
		action()
		next()
	}
}
