package graphics

// SwapChainImplementation is the backend payload for swap chains.
type SwapChainImplementation interface {
	Implementation

	Resize(width, height int) error
	Present() error
}

// SwapChain is a logical presentation target.
type SwapChain struct {
	Resource
	width  int
	height int
	format TextureFormat
}

// Width returns the current backbuffer width in pixels.
func (s *SwapChain) Width() int { return s.width }

// Height returns the current backbuffer height in pixels.
func (s *SwapChain) Height() int { return s.height }

// Format returns the backbuffer format.
func (s *SwapChain) Format() TextureFormat { return s.format }

// Resize reallocates the backbuffer. Typically driven by window resize
// events.
func (s *SwapChain) Resize(width, height int) error {
	if err := s.guardMutate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidArgument
	}
	if err := s.impl.(SwapChainImplementation).Resize(width, height); err != nil {
		return err
	}
	s.width, s.height = width, height
	return nil
}

// Present commits the backbuffer to the display.
func (s *SwapChain) Present() error {
	if err := s.guardMutate(); err != nil {
		return err
	}
	return s.impl.(SwapChainImplementation).Present()
}
