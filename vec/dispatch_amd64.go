//go:build amd64

package vec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	if cpu.X86.HasSSE2 {
		currentLevel = DispatchSSE2
	} else {
		currentLevel = DispatchScalar
	}
}
