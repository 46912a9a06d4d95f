package ui

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfPrintln(t *testing.T) {
	var out bytes.Buffer
	w := NewWriterTo(&out)

	_, err := w.Printf("gave %d %s\n", 5, "stone")
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "gave 5 stone\ndone\n", out.String())
}

func TestBuffer_Drain(t *testing.T) {
	var b Buffer
	_, _ = b.Println("first")

	require.Equal(t, "first\n", b.Drain())
	require.Empty(t, b.Drain())
}

func TestBuffer_ConcurrentWrites(t *testing.T) {
	var b Buffer
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.Printf("x")
		}()
	}
	wg.Wait()

	require.Len(t, b.Drain(), 20)
}
