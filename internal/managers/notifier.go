package managers

// Notifier is a minimal callback-list pub-sub. Managers publish after every
// successful mutation; the UI layer subscribes to re-render. Subscribers run
// synchronously on the publishing call, in subscription order.
type Notifier struct {
	subs []func()
}

// Subscribe registers fn to run after every successful mutation. There is no
// unsubscribe; subscribers live as long as the manager.
func (n *Notifier) Subscribe(fn func()) {
	n.subs = append(n.subs, fn)
}

func (n *Notifier) publish() {
	for _, fn := range n.subs {
		fn()
	}
}
