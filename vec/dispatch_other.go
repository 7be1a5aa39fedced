//go:build !amd64 && !arm64

package vec

func init() {
	// wasm SIMD128 and the riscv64 V extension are not detected.
	currentLevel = DispatchScalar
}
