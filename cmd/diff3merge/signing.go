package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// digestSignaturePrefix tags signatures produced here so verify can
// reject signatures from an unrelated format, the way the teacher
// tags commit signatures with "sshsig-v1" (cmd/got/signing_ssh.go).
const digestSignaturePrefix = "diff3merge-sig-v1"

// digestOf returns the lowercase hex SHA-256 digest of a merge's
// rendered output, the payload that gets signed and verified.
func digestOf(content string) []byte {
	sum := sha256.Sum256([]byte(content))
	return []byte(hex.EncodeToString(sum[:]))
}

// signDigest signs content's digest with the private key at keyPath
// and returns an opaque "prefix:format:pubkey:signature" string.
func signDigest(keyPath, content string) (string, error) {
	resolved, err := resolveSigningKeyPath(keyPath)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("read signing key %q: %w", resolved, err)
	}
	signer, err := ssh.ParsePrivateKey(raw)
	if err != nil {
		return "", fmt.Errorf("parse signing key %q: %w", resolved, err)
	}

	sig, err := signer.Sign(rand.Reader, digestOf(content))
	if err != nil {
		return "", fmt.Errorf("sign digest: %w", err)
	}

	pubB64 := base64.StdEncoding.EncodeToString(signer.PublicKey().Marshal())
	sigB64 := base64.StdEncoding.EncodeToString(sig.Blob)
	return fmt.Sprintf("%s:%s:%s:%s", digestSignaturePrefix, sig.Format, pubB64, sigB64), nil
}

// verifyDigest checks that signature was produced over content's
// digest by the holder of the embedded public key.
func verifyDigest(content, signature string) error {
	parts := strings.SplitN(signature, ":", 4)
	if len(parts) != 4 || parts[0] != digestSignaturePrefix {
		return fmt.Errorf("not a %s signature", digestSignaturePrefix)
	}
	format, pubB64, sigB64 := parts[1], parts[2], parts[3]

	pubBytes, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	pub, err := ssh.ParsePublicKey(pubBytes)
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}

	sigBytes, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	sig := &ssh.Signature{Format: format, Blob: sigBytes}
	if err := pub.Verify(digestOf(content), sig); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

func resolveSigningKeyPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return expandUserPath(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	candidates := []string{
		filepath.Join(home, ".ssh", "id_ed25519"),
		filepath.Join(home, ".ssh", "id_ecdsa"),
		filepath.Join(home, ".ssh", "id_rsa"),
	}
	for _, candidate := range candidates {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no default SSH private key found in ~/.ssh (id_ed25519, id_ecdsa, id_rsa)")
}

func expandUserPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}
