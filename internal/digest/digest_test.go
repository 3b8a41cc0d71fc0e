package digest

import (
	"bytes"
	"crypto/sha256"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinish_abcMatchesStandardVector(t *testing.T) {
	s := Begin()
	require.NoError(t, s.Update([]byte("abc")))

	d, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", d.String())
}

func TestFinish_noUpdatesGivesEmptyInputDigest(t *testing.T) {
	d, err := Begin().Finish()
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", d.String())
}

func TestUpdate_chunkingDoesNotChangeDigest(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4099) // leaves a short final chunk for most sizes below
	want := Digest(sha256.Sum256(data))

	for _, chunk := range []int{1, 7, 64, 4096, 65537, len(data)} {
		s := Begin()
		for off := 0; off < len(data); off += chunk {
			end := min(off+chunk, len(data))
			require.NoError(t, s.Update(data[off:end]))
		}
		got, err := s.Finish()
		require.NoError(t, err)
		assert.Equal(t, want, got, "chunk size %d", chunk)
	}
}

func TestUpdate_emptyChunksAreNoOps(t *testing.T) {
	s := Begin()
	require.NoError(t, s.Update(nil))
	require.NoError(t, s.Update([]byte("abc")))
	require.NoError(t, s.Update([]byte{}))

	d, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, Digest(sha256.Sum256([]byte("abc"))), d)
}

func TestWrite_worksAsCopyTarget(t *testing.T) {
	data := bytes.Repeat([]byte{0xA5}, 100000)
	s := Begin()
	n, err := io.Copy(s, bytes.NewReader(data))
	require.NoError(t, err)
	assert.EqualValues(t, len(data), n)

	d, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, Digest(sha256.Sum256(data)), d)
}

func TestState_useAfterFinishIsRejected(t *testing.T) {
	s := Begin()
	_, err := s.Finish()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Update([]byte("x")), ErrFinalized)
	_, err = s.Finish()
	assert.ErrorIs(t, err, ErrFinalized)
	_, err = s.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrFinalized)
}
