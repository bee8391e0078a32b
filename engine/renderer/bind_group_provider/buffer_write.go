package bind_group_provider

// BufferWrite describes a single GPU buffer write targeting a specific binding
// on a BindGroupProvider at a given byte offset. Writes are applied in place;
// the target buffer is never reallocated.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
