// Package codec converts between the base64 ciphertext stored on disk and the
// UTF-8 JSON plaintext the rest of the editor works on.
//
// The save format is AES-256-CBC with PKCS7 padding under a fixed key and a
// fixed IV. The IV is a program constant shared by every save file, so
// encrypting the same plaintext twice yields byte-identical ciphertext. The
// game client depends on that, so it is reproduced here exactly.
package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Decrypt failure classes. Callers match with errors.Is.
var (
	ErrInvalidBase64  = errors.New("codec: input is not valid base64")
	ErrInvalidPadding = errors.New("codec: invalid padding")
	ErrInvalidUTF8    = errors.New("codec: plaintext is not valid UTF-8")
)

// keyWords are the eight big-endian words the game derives its AES key from.
var keyWords = [8]uint32{
	2815074099, 1725469378, 4039046167, 874293617,
	3063605751, 3133984764, 4097598161, 3620741625,
}

var saveIV = []byte("tu89geji340t89u2")

func saveKey() []byte {
	key := make([]byte, 32)
	for i, w := range keyWords {
		binary.BigEndian.PutUint32(key[i*4:], w)
	}
	return key
}

// Decrypt turns a full-file base64 ciphertext into UTF-8 plaintext.
// Trailing or embedded whitespace around the base64 text is tolerated since
// save files commonly end with a newline.
func Decrypt(cipherBase64 []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(cipherBase64)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	block, err := aes.NewCipher(saveKey())
	if err != nil {
		// Key is a 32-byte constant; this cannot happen.
		return "", err
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		// Truncated ciphertext surfaces the same way a wrong key would.
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrInvalidPadding, len(raw))
	}

	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, saveIV).CryptBlocks(plain, raw)

	plain, err = pkcs7Unpad(plain)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", ErrInvalidUTF8
	}
	return string(plain), nil
}

// Encrypt is the exact inverse of Decrypt for valid UTF-8 text: pad, encrypt,
// base64. It is a pure function; identical input yields identical output.
func Encrypt(plaintext string) []byte {
	block, err := aes.NewCipher(saveKey())
	if err != nil {
		panic(err) // 32-byte constant key
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	enc := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, saveIV).CryptBlocks(enc, padded)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(enc)))
	base64.StdEncoding.Encode(out, enc)
	return out
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrInvalidPadding)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}
