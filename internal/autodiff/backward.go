package autodiff

// TopologicalSort returns every node reachable from root, each after all of
// its predecessors (DFS postorder). Nodes reached along several paths appear
// once.
//
// The traversal uses an explicit stack, so long chains such as a running sum
// over thousands of terms do not grow the goroutine stack. The resulting order
// is identical to the recursive definition. Cycles are not detected; the
// operator set cannot build one.
func TopologicalSort(root *Value) []*Value {
	if root == nil {
		return nil
	}

	type frame struct {
		node *Value
		next int // index of the next predecessor to visit
	}

	order := make([]*Value, 0, 64)
	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.prev) {
			child := top.node.prev[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Backward computes the gradient of v with respect to every ancestor.
//
// It sets v.grad to 1 and accumulates into all other reachable nodes.
// Parameter gradients are not reset first.
//
// Example:
//
//	x := autodiff.NewValue(3)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	_ = x.Grad() // 6
func (v *Value) Backward() {
	Record(v).Backward()
}
