package graphics

// BufferImplementation is the backend payload for vertex and index
// buffers.
type BufferImplementation interface {
	Implementation

	// SetData uploads data starting at offset bytes into the buffer.
	SetData(data []byte, offset int) error
	// Bind makes the buffer current on its target.
	Bind() error
}

// VertexBuffer is a logical vertex buffer.
type VertexBuffer struct {
	Resource
	usage     BufferUsage
	sizeBytes int
}

// Usage returns the buffer's declared usage.
func (b *VertexBuffer) Usage() BufferUsage { return b.usage }

// SizeBytes returns the buffer's allocation size.
func (b *VertexBuffer) SizeBytes() int { return b.sizeBytes }

// SetData uploads data at the given byte offset. The write must lie
// within the buffer's allocation.
func (b *VertexBuffer) SetData(data []byte, offset int) error {
	if err := b.guardMutate(); err != nil {
		return err
	}
	if offset < 0 || offset+len(data) > b.sizeBytes {
		return ErrInvalidArgument
	}
	return b.impl.(BufferImplementation).SetData(data, offset)
}

// IndexBuffer is a logical index buffer.
type IndexBuffer struct {
	Resource
	usage     BufferUsage
	format    IndexFormat
	sizeBytes int
}

// Usage returns the buffer's declared usage.
func (b *IndexBuffer) Usage() BufferUsage { return b.usage }

// Format returns the index element format.
func (b *IndexBuffer) Format() IndexFormat { return b.format }

// SizeBytes returns the buffer's allocation size.
func (b *IndexBuffer) SizeBytes() int { return b.sizeBytes }

// IndexCount returns how many indices the buffer holds.
func (b *IndexBuffer) IndexCount() int { return b.sizeBytes / b.format.Bytes() }

// SetData uploads data at the given byte offset. The write must lie
// within the buffer's allocation.
func (b *IndexBuffer) SetData(data []byte, offset int) error {
	if err := b.guardMutate(); err != nil {
		return err
	}
	if offset < 0 || offset+len(data) > b.sizeBytes {
		return ErrInvalidArgument
	}
	return b.impl.(BufferImplementation).SetData(data, offset)
}
