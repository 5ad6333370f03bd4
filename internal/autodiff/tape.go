package autodiff

// Tape holds the nodes reachable from a root in topological order and
// replays their backward rules in reverse.
//
// A Tape is the lifetime unit of one forward/backward cycle: it retains every
// ancestor of the root until Release is called.
//
// Usage:
//
//	loss := model.Forward(x)...
//	tape := autodiff.Record(loss)
//	tape.Backward()
//	// ... read gradients off the parameters ...
//	tape.Release()
type Tape struct {
	root  *Value
	nodes []*Value // predecessors before dependents; root is last
}

// Record captures the topological order of all nodes reachable from root.
//
// The graph must not change shape after recording. Operators never mutate
// existing nodes, so only new nodes built on top of root are invisible to the tape.
func Record(root *Value) *Tape {
	return &Tape{
		root:  root,
		nodes: TopologicalSort(root),
	}
}

// Backward seeds the root gradient with 1 and walks the tape in reverse,
// invoking each node's local rule.
//
// Because the order is topological, every dependent of a node has contributed
// to its grad before the node's own rule runs. Gradients accumulate across
// calls; callers zero them between cycles.
func (t *Tape) Backward() {
	if t.root == nil {
		return
	}
	t.root.grad = 1.0
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if fn := t.nodes[i].backward; fn != nil {
			fn()
		}
	}
}

// Root returns the recorded root, or nil after Release.
func (t *Tape) Root() *Value {
	return t.root
}

// Nodes returns the recorded order. The slice must not be modified.
func (t *Tape) Nodes() []*Value {
	return t.nodes
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// NonFinite returns the recorded nodes whose data or grad is NaN or ±Inf.
func (t *Tape) NonFinite() []*Value {
	var bad []*Value
	for _, n := range t.nodes {
		if !n.IsFinite() {
			bad = append(bad, n)
		}
	}
	return bad
}

// Release drops every reference held by the tape so intermediate nodes can
// be collected together. Parameter leaves are still owned by their modules.
func (t *Tape) Release() {
	for i := range t.nodes {
		t.nodes[i] = nil
	}
	t.nodes = nil
	t.root = nil
}
