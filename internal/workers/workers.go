package workers

type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports graceful shutdown.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(Stopper); ok {
			s.Stop()
		}
	}
}
