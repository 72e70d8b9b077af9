package scorecrypt

import "io"

// ThCrypt is the windowed outer cipher Touhou 8 layers its score file body
// under, ahead of the inner rotate-XOR Decryptor that Touhou 7 uses on its
// own.
//
// It reads the wrapped source BlockSize bytes at a time, reverses each block
// in place, then XORs every byte with a key that advances by XORStep per
// byte and by InitByte once per completed block. Once TotalLimit source
// bytes have been consumed, the cipher passes the remainder of the stream
// through unmodified.
type ThCrypt struct {
	src        io.Reader
	initByte   byte
	xorStep    byte
	blockSize  int
	totalLimit int

	consumed    int
	key         byte
	buf         []byte
	bufPos      int
	passthrough bool
}

// NewThCrypt constructs a ThCrypt reader. For Touhou 8's score file body:
// initByte=0x59, xorStep=0x79, blockSize=0x0100, totalLimit=0x0C00.
func NewThCrypt(src io.Reader, initByte, xorStep byte, blockSize, totalLimit int) *ThCrypt {
	return &ThCrypt{
		src:        src,
		initByte:   initByte,
		xorStep:    xorStep,
		blockSize:  blockSize,
		totalLimit: totalLimit,
		key:        initByte,
	}
}

func (c *ThCrypt) fillBlock() error {
	remaining := c.totalLimit - c.consumed
	if remaining <= 0 {
		c.passthrough = true
		return nil
	}

	n := c.blockSize
	if n > remaining {
		n = remaining
	}

	block := make([]byte, n)
	read, err := io.ReadFull(c.src, block)
	if read == 0 {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return err
	}
	block = block[:read]
	c.consumed += read

	for i, j := 0, len(block)-1; i < j; i, j = i+1, j-1 {
		block[i], block[j] = block[j], block[i]
	}
	for i := range block {
		block[i] ^= c.key
		c.key += c.xorStep
	}
	c.key += c.initByte

	c.buf = block
	c.bufPos = 0

	if read < n {
		// Source ended before totalLimit was reached; remain in passthrough
		// once this final partial block is drained.
		c.passthrough = true
	}

	return nil
}

// Read implements io.Reader.
func (c *ThCrypt) Read(p []byte) (int, error) {
	if c.bufPos < len(c.buf) {
		n := copy(p, c.buf[c.bufPos:])
		c.bufPos += n
		return n, nil
	}

	if c.consumed >= c.totalLimit {
		return c.src.Read(p)
	}

	if err := c.fillBlock(); err != nil {
		return 0, err
	}

	if len(c.buf) == 0 {
		return 0, io.EOF
	}

	n := copy(p, c.buf)
	c.bufPos = n
	return n, nil
}
