package regtable

// The four REG I/O operations index directly into a caller-owned,
// symbol-major then subcarrier-major grid: an RE at (k,l) lives at offset
// k + l*stride, where stride is 12*nof_prb (36.211 §6.2.4). None of these
// operations allocate or fail; they are the innermost primitive every
// channel allocator's put/add/reset/get builds on.

// Put writes src's four samples into the grid at reg's RE indices.
func Put(reg *Reg, src []complex128, grid []complex128, stride int) int {
	for i := 0; i < 4; i++ {
		grid[reg.K[i]+reg.L*stride] = src[i]
	}
	return 4
}

// Add accumulates src's four samples into the grid at reg's RE indices.
func Add(reg *Reg, src []complex128, grid []complex128, stride int) int {
	for i := 0; i < 4; i++ {
		grid[reg.K[i]+reg.L*stride] += src[i]
	}
	return 4
}

// Reset zeroes the grid at reg's RE indices.
func Reset(reg *Reg, grid []complex128, stride int) int {
	for i := 0; i < 4; i++ {
		grid[reg.K[i]+reg.L*stride] = 0
	}
	return 4
}

// Get reads the grid's four samples at reg's RE indices into dst.
func Get(reg *Reg, grid []complex128, dst []complex128, stride int) int {
	for i := 0; i < 4; i++ {
		dst[i] = grid[reg.K[i]+reg.L*stride]
	}
	return 4
}
