package compare

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Result of feeding one workload to one container.
type Result struct {
	Container string
	Workload  string
	Size      int
	Height    int
	Levels    uint
}

// Runner feeds workloads to fresh containers.
type Runner struct {
	Log *logrus.Logger
	//Progress, if set, is called with the number of keys inserted since its
	//previous call.
	Progress func(n int)
}

const progressStep = 1024

// Run inserts keys, in order, into a new container for each of names.
func (r *Runner) Run(names []string, workload string, keys []int) ([]Result, error) {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		c, err := New(name)
		if err != nil {
			return nil, errors.Wrapf(err, "workload %s", workload)
		}
		log := r.logger().WithFields(logrus.Fields{"container": name, "workload": workload})
		log.Debugf("inserting %d keys", len(keys))
		for i, v := range keys {
			c.Insert(v)
			if r.Progress != nil && (i+1)%progressStep == 0 {
				r.Progress(progressStep)
			}
		}
		if r.Progress != nil {
			r.Progress(len(keys) % progressStep)
		}
		res := Result{Container: name, Workload: workload, Size: c.Len(), Height: c.Height(), Levels: c.Levels()}
		log.WithFields(logrus.Fields{"size": res.Size, "height": res.Height, "levels": res.Levels}).Info("run finished")
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) logger() *logrus.Logger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}
