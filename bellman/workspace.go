package bellman

// Workspace holds the scratch buffers a Bellman step needs and is reused
// across states and iterations. NewWorkspace sizes the sort buffers; the
// per-level scratch tensors, the gather buffer and the relabel buffer are
// allocated on first use and grown whenever a larger size is requested, so
// they are not preallocated. A Workspace is not safe for concurrent use;
// the solver driver allocates one per worker goroutine.
type Workspace struct {
	valBuf  []float64
	idxBuf  []int
	scratch [][]float64 // per-recursion-level scratch tensors, grown lazily
	gather  []float64   // transient per-level gather buffer for FactoredBellman
	relabel []float64   // transient per-DFA-state relabel buffer for ProductBellmanStep
}

// NewWorkspace allocates a Workspace with buffers sized for maxSupport
// targets. maxSupport may be 0; buffers grow on demand.
func NewWorkspace(maxSupport int) *Workspace {
	ws := &Workspace{}
	ws.ensure(maxSupport)
	return ws
}

func (ws *Workspace) ensure(n int) {
	if cap(ws.valBuf) < n {
		ws.valBuf = make([]float64, n)
		ws.idxBuf = make([]int, n)
	}
	ws.valBuf = ws.valBuf[:n]
	ws.idxBuf = ws.idxBuf[:n]
}

// scratchLevel returns a reusable float64 scratch buffer for recursion
// level i of size n, growing it in place if it is currently too small.
func (ws *Workspace) scratchLevel(i, n int) []float64 {
	for len(ws.scratch) <= i {
		ws.scratch = append(ws.scratch, nil)
	}
	if cap(ws.scratch[i]) < n {
		ws.scratch[i] = make([]float64, n)
	}
	return ws.scratch[i][:n]
}

// ensureGather returns a reusable gather buffer of size n, used by
// FactoredBellman to collect one marginal's strided target values into a
// dense vector before calling OMax.
func (ws *Workspace) ensureGather(n int) []float64 {
	if cap(ws.gather) < n {
		ws.gather = make([]float64, n)
	}
	return ws.gather[:n]
}

// ensureRelabel returns a reusable buffer of size n, used by
// ProductBellmanStep to hold the relabelled value vector W(·, q).
func (ws *Workspace) ensureRelabel(n int) []float64 {
	if cap(ws.relabel) < n {
		ws.relabel = make([]float64, n)
	}
	return ws.relabel[:n]
}
