package gcryrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNilBufferMessage(t *testing.T) {
	is := assert.New(t)
	is.EqualError(ErrNilBuffer, "gcryrand: buffer is nil")
}

func TestFatalfPanics(t *testing.T) {
	is := assert.New(t)
	is.Panics(func() {
		fatalf("boom: %d", 7)
	})
}
