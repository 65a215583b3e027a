package vm

// GasCost holds the gas costs charged by the system smart contracts
type GasCost struct {
	ProxyOpsCost ProxyOpsCost
}

// ProxyOpsCost defines the gas charged per proxy contract operation class
type ProxyOpsCost struct {
	Transfer uint64
	Swap     uint64
	Forward  uint64
	RowOp    uint64
	Query    uint64
}
