package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
)

// Size is the length of a Digest in bytes.
const Size = sha256.Size

// ErrFinalized is returned when a State is used after Finish.
var ErrFinalized = errors.New("digest: state already finalized")

// Digest is a finished SHA-256 value.
type Digest [Size]byte

// String returns the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// State accumulates chunks until Finish. The result does not depend on how
// the input was split across Update calls.
type State struct {
	h    hash.Hash
	done bool
}

// Begin returns a fresh State.
func Begin() *State {
	return &State{h: sha256.New()}
}

// Update feeds chunk into the state. Chunks of any length are accepted,
// including a whole mapped file at once.
func (s *State) Update(chunk []byte) error {
	if s.done {
		return ErrFinalized
	}
	// hash.Hash.Write never returns an error.
	s.h.Write(chunk)
	return nil
}

// Write implements io.Writer so a State can be the target of io.Copy.
func (s *State) Write(p []byte) (int, error) {
	if err := s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finish consumes the state and returns the digest. Any later call to
// Update or Finish returns ErrFinalized.
func (s *State) Finish() (Digest, error) {
	var d Digest
	if s.done {
		return d, ErrFinalized
	}
	s.done = true
	s.h.Sum(d[:0])
	s.h = nil
	return d, nil
}
