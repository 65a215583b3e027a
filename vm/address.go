package vm

// ProxySCAddress is the fixed address the wrapped-token proxy contract is deployed at
var ProxySCAddress = []byte{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
