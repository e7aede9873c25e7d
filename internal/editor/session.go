// Package editor implements editing sessions over a decrypted save document.
//
// A Session owns exactly one document. It is created by decrypting and
// parsing ciphertext, mutated in place by the batch editors, and turned back
// into ciphertext with Encode. Sessions are not safe for concurrent use; the
// whole pipeline is synchronous by design.
package editor

import (
	"fmt"

	"go.uber.org/zap"

	"vaultedit/internal/codec"
	"vaultedit/internal/document"
)

// Session is one open save document.
type Session struct {
	doc   *document.Node
	log   *zap.Logger
	dirty bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes operation logging through log instead of a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Open decrypts and parses ciphertext into a new Session. Decryption and
// parse failures abort the load; no session is created.
func Open(cipherText []byte, opts ...Option) (*Session, error) {
	plain, err := codec.Decrypt(cipherText)
	if err != nil {
		return nil, fmt.Errorf("decrypt save: %w", err)
	}
	doc, err := document.Parse(plain)
	if err != nil {
		return nil, fmt.Errorf("parse save: %w", err)
	}
	s := &Session{doc: doc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("session opened", zap.Int("ciphertext_bytes", len(cipherText)))
	return s, nil
}

// FromDocument wraps an already-parsed tree. Used by tests and by callers
// that handle plaintext directly.
func FromDocument(doc *document.Node, opts ...Option) *Session {
	s := &Session{doc: doc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document exposes the underlying tree.
func (s *Session) Document() *document.Node { return s.doc }

// Dirty reports whether any batch editor applied at least one change since
// Open or the last Encode.
func (s *Session) Dirty() bool { return s.dirty }

// Encode serializes the document and re-encrypts it. All-or-nothing: on
// error nothing is produced and the session stays open.
func (s *Session) Encode() ([]byte, error) {
	plain := document.Serialize(s.doc)
	out := codec.Encrypt(plain)
	s.dirty = false
	s.log.Debug("session encoded", zap.Int("plaintext_bytes", len(plain)))
	return out, nil
}

func (s *Session) markApplied(n int) {
	if n > 0 {
		s.dirty = true
	}
}
