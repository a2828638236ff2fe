package kernels

// Bit-index arithmetic shared by all kernels. Wire w of an n-qubit register
// addresses bit position n-1-w of the basis index, so wire 0 is the most
// significant bit.

// wireMask returns the basis-index bit mask for a wire.
func wireMask(numQubits, wire int) int {
	return 1 << (numQubits - 1 - wire)
}

// wiresMask returns the union of the bit masks of all listed wires.
func wiresMask(numQubits int, wires []int) int {
	m := 0
	for _, w := range wires {
		m |= wireMask(numQubits, w)
	}
	return m
}

// gatherIndices expands a base index (all target-wire bits clear) into the
// 2^k amplitude indices of the gate's local subspace, ordered with wires[0]
// as the most significant local bit. out must hold 2^len(wires) entries.
func gatherIndices(base, numQubits int, wires []int, out []int) {
	dim := 1 << len(wires)
	for j := 0; j < dim; j++ {
		idx := base
		for t, w := range wires {
			if j&(1<<(len(wires)-1-t)) != 0 {
				idx |= wireMask(numQubits, w)
			}
		}
		out[j] = idx
	}
}
