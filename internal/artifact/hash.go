package artifact

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// CodeHash returns the 0x-prefixed keccak-256 hash of the bytecode found in
// a .bin file. Surrounding whitespace and an optional 0x prefix are
// ignored. Bytecode with unlinked library placeholders is not valid hex and
// is hashed as text. Empty bytecode yields an empty hash.
func CodeHash(bin []byte) string {
	code := bytes.TrimSpace(bin)
	code = bytes.TrimPrefix(code, []byte("0x"))
	if len(code) == 0 {
		return ""
	}

	input := code
	raw := make([]byte, hex.DecodedLen(len(code)))
	if _, err := hex.Decode(raw, code); err == nil {
		input = raw
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(input)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
