package render

// Frame is what a Submitter draws; vertex slices alias the Batch and are only valid
// during Submit
type Frame struct {
	Sprites []Vertex
	Text    []Vertex
	Camera  Camera
}

// Submitter hands a finished frame to a device
type Submitter interface {
	Submit(f Frame) error
}

// Frame captures the batch's current contents
func (b *Batch) Frame(cam Camera) Frame {
	return Frame{Sprites: b.Sprites(), Text: b.Text(), Camera: cam}
}
