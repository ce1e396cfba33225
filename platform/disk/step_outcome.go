package disk

// StepOutcome records the result of one independently observable mutation
// step. Steps are best-effort sequential: a failed step never prevents the
// ones after it from running.
type StepOutcome struct {
	Name string
	Err  error
}

func (o StepOutcome) Failed() bool { return o.Err != nil }

type MutationResult struct {
	Outcomes []StepOutcome
}

type ExtensionResult struct {
	Outcomes []StepOutcome
}

func failedCount(outcomes []StepOutcome) int {
	count := 0
	for _, outcome := range outcomes {
		if outcome.Failed() {
			count++
		}
	}
	return count
}

func (r MutationResult) FailedCount() int  { return failedCount(r.Outcomes) }
func (r ExtensionResult) FailedCount() int { return failedCount(r.Outcomes) }
