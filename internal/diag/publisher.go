package diag

// Publisher принимает диагностики от сканера и прочих фаз.
// Реализации: Manager (рендер сразу), Bag (накопление), Dedup, Tee, Nop.
type Publisher interface {
	Publish(d Diagnostic)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Diagnostic)

func (f PublisherFunc) Publish(d Diagnostic) { f(d) }

// Nop drops everything.
type Nop struct{}

func (Nop) Publish(Diagnostic) {}

// Tee forwards every diagnostic to each publisher in order.
type Tee []Publisher

func (t Tee) Publish(d Diagnostic) {
	for _, p := range t {
		if p != nil {
			p.Publish(d)
		}
	}
}
