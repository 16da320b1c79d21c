package email

import "sync"

// Dispatcher runs sends in the background. Failures are reported on the
// Errors channel instead of being propagated to the caller, so the
// primary operation's success never depends on mail delivery.
type Dispatcher struct {
	sender Sender
	errs   chan error
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		errs:   make(chan error, 16),
	}
}

// Errors exposes delivery failures for the owner to drain and log.
func (d *Dispatcher) Errors() <-chan error {
	return d.errs
}

// Dispatch queues one message for asynchronous delivery.
func (d *Dispatcher) Dispatch(to, subject, body string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.sender.Send(to, subject, body); err != nil {
			select {
			case d.errs <- err:
			default:
				// channel full: drop rather than block delivery goroutines
			}
		}
	}()
}

// Close waits for in-flight sends and closes the error channel.
func (d *Dispatcher) Close() {
	d.wg.Wait()
	close(d.errs)
}
