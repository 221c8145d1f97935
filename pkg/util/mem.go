package util

import "runtime"

func BtoKB(b uint64) uint64 {
	return b / 1024
}

// HeapAlloc returns the bytes of allocated heap objects after a collection
func HeapAlloc() uint64 {
	var mem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&mem)
	return mem.HeapAlloc
}
