//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package memory

func nativeAlloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func nativeFree([]byte) error {
	return nil
}
