// Package hdwallet derives a single secp256k1 child key from a BIP-39 seed
// phrase at the fixed Ethereum derivation path m/44'/60'/0'/0/0 and exposes
// the key in the encodings the ledger façade needs: raw hex and EVM address.
package hdwallet

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"
)

// DerivationPath is the fixed HD path used for every derivation.
const DerivationPath = "m/44'/60'/0'/0/0"

// path components of DerivationPath; the apostrophes mark hardened indexes.
var pathIndexes = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// Key is a derived secp256k1 private key.
type Key struct {
	priv *btcec.PrivateKey
}

// Derive derives the child key at DerivationPath from a seed phrase.
// The same phrase always yields the same key.
func Derive(mnemonic string) (*Key, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")
	node, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	for _, idx := range pathIndexes {
		node, err = node.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child %d: %w", idx, err)
		}
	}

	priv, err := node.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}
	return &Key{priv: priv}, nil
}

// PrivateKeyHex returns the 0x-prefixed raw private key hex.
func (k *Key) PrivateKeyHex() string {
	return "0x" + hex.EncodeToString(k.priv.Serialize())
}

// RawHex returns the private key hex without the 0x prefix, the form the
// ledger SDK accepts for ECDSA key parsing.
func (k *Key) RawHex() string {
	return hex.EncodeToString(k.priv.Serialize())
}

// EvmAddress returns the 0x-prefixed EVM address for the key's public key:
// the last 20 bytes of keccak256 over the uncompressed public key.
func (k *Key) EvmAddress() string {
	pub := k.priv.PubKey().SerializeUncompressed()

	h := sha3.NewLegacyKeccak256()
	h.Write(pub[1:]) // drop the 0x04 uncompressed marker
	digest := h.Sum(nil)

	return "0x" + hex.EncodeToString(digest[12:])
}
