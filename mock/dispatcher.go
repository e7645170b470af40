package mock

// Dispatcher runs every submitted task on its own goroutine, standing in
// for the ants pool.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Submit(task func()) error {
	go task()
	return nil
}
