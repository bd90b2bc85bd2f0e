package watch

import "context"

// Runner executes a job on a single goroutine. Requests that arrive while a
// job is running are coalesced into exactly one follow-up run.
type Runner struct {
	pending chan struct{}
	job     func(context.Context)
}

func NewRunner(job func(context.Context)) *Runner {
	return &Runner{pending: make(chan struct{}, 1), job: job}
}

// Request queues a run. It never blocks.
func (r *Runner) Request() {
	select {
	case r.pending <- struct{}{}:
	default:
	}
}

// Run processes requests until ctx is done.
func (r *Runner) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.pending:
			if ctx.Err() != nil {
				return
			}
			r.job(ctx)
		}
	}
}
