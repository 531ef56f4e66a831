package strike

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for materializing streamed input before decoding.
// We pool *bytes.Buffer because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// Instrument files are a few hundred bytes; 4KB covers nearly all of them.
		return bytes.NewBuffer(make([]byte, 0, BUFFER_SIZE))
	},
}
