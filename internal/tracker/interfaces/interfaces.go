package interfaces

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}
