package graphics

// Texture2DImplementation is the backend payload for 2D textures.
type Texture2DImplementation interface {
	Implementation

	// SetData uploads a full mip level.
	SetData(level int, data []byte) error
	// GenerateMipmaps fills levels 1..n from level 0.
	GenerateMipmaps() error
	// Bind makes the texture current on the given unit.
	Bind(unit int) error
}

// Texture2D is a logical 2D texture.
type Texture2D struct {
	Resource
	width     int
	height    int
	mipLevels int
	format    TextureFormat
}

// Width returns the level-0 width in pixels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the level-0 height in pixels.
func (t *Texture2D) Height() int { return t.height }

// MipLevels returns the number of allocated mip levels.
func (t *Texture2D) MipLevels() int { return t.mipLevels }

// Format returns the pixel format.
func (t *Texture2D) Format() TextureFormat { return t.format }

// LevelSize returns the dimensions of the given mip level.
func (t *Texture2D) LevelSize(level int) (w, h int) {
	w, h = t.width>>level, t.height>>level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// SetData uploads a full mip level. The payload length must match the
// level's dimensions at the texture's format.
func (t *Texture2D) SetData(level int, data []byte) error {
	if err := t.guardMutate(); err != nil {
		return err
	}
	if level < 0 || level >= t.mipLevels {
		return ErrInvalidArgument
	}
	w, h := t.LevelSize(level)
	if len(data) != w*h*t.format.BytesPerPixel() {
		return ErrInvalidArgument
	}
	return t.impl.(Texture2DImplementation).SetData(level, data)
}

// GenerateMipmaps fills levels 1..n from level 0.
func (t *Texture2D) GenerateMipmaps() error {
	if err := t.guardMutate(); err != nil {
		return err
	}
	return t.impl.(Texture2DImplementation).GenerateMipmaps()
}
