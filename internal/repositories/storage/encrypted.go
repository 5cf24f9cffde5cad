package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/stocktrack/internal/cryptox"
	"github.com/dmitrijs2005/stocktrack/internal/filex"
	"github.com/dmitrijs2005/stocktrack/internal/models"
	"github.com/dmitrijs2005/stocktrack/internal/shared"
)

// envelope is the on-disk format of an encrypted snapshot. Byte slices
// serialize as base64.
type envelope struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// EncryptedFileStorage is FileStorage with the blob sealed under a key
// derived from a passphrase (argon2id + AES-GCM). Each Save uses a fresh
// salt and nonce. A wrong passphrase surfaces as a decrypt error on Load.
type EncryptedFileStorage struct {
	path string
	key  func(salt []byte) []byte
}

// NewEncryptedFileStorage copies the passphrase; the caller may wipe its
// own copy afterwards.
func NewEncryptedFileStorage(path string, passphrase []byte) *EncryptedFileStorage {
	pass := make([]byte, len(passphrase))
	copy(pass, passphrase)
	return &EncryptedFileStorage{
		path: path,
		key:  func(salt []byte) []byte { return cryptox.DeriveKey(pass, salt) },
	}
}

func (e *EncryptedFileStorage) Load(ctx context.Context) ([]models.Record, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", e.path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	key := e.key(env.Salt)
	defer shared.WipeByteArray(key)

	plaintext, err := cryptox.Open(env.Ciphertext, env.Nonce, key)
	if err != nil {
		return nil, fmt.Errorf("unseal %s: %w", e.path, err)
	}

	return decodeRecords(plaintext)
}

func (e *EncryptedFileStorage) Save(ctx context.Context, records []models.Record) error {
	plaintext, err := encodeRecords(records)
	if err != nil {
		return err
	}

	salt, err := cryptox.MakeSalt()
	if err != nil {
		return err
	}
	key := e.key(salt)
	defer shared.WipeByteArray(key)

	ciphertext, nonce, err := cryptox.Seal(plaintext, key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(envelope{Salt: salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	if _, err := filex.EnsureParentDir(e.path); err != nil {
		return err
	}

	suffix, err := shared.MakeRandHexString(4)
	if err != nil {
		return err
	}
	tmp := e.path + "." + suffix + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, e.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
