package types

// MaxPly bounds recursion depth for fixed-size, allocation-free per-ply
// arrays (the triangular PV table, killer table, eval stack).
const MaxPly = 128
