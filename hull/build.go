package hull

import "github.com/osuushi/frontier/geom"

const defaultBatchBudget = 1 << 16

// Build runs a job to completion in one call. It is the batch counterpart of
// stepping a job across ticks, and produces the same hull.
func Build(points []geom.Point, k0, maxK int) (geom.Polygon, error) {
	return finish(Start(points, k0, maxK))
}

// Step j until it is done. A broken job invariant comes back as an error.
func finish(j *Job) (result geom.Polygon, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	for {
		if done, hull := j.Step(defaultBatchBudget); done {
			return hull, nil
		}
	}
}
