package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher converts between a save container and its JSON plaintext.
//
// The container scheme uses a fixed, publicly known key. It only keeps casual
// editors out of the save and provides no confidentiality.
//
// Implementations hold no mutable state and are safe for concurrent use.
type Cipher interface {
	// Decrypt strips the container framing, base64-decodes the payload and
	// decrypts it with AES-256-ECB, removing PKCS#7 padding.
	//
	// Errors match exactly one of models.ErrFileTooSmall,
	// models.ErrInvalidEncoding or models.ErrDecryptionFailed.
	// raw is never modified.
	Decrypt(raw []byte) ([]byte, error)

	// Encrypt builds a container readable by Decrypt and by the game.
	Encrypt(plaintext []byte) []byte
}
