package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"os"
)

// EnsureHostKey generates an ed25519 PKCS8 PEM host key at path unless one exists
func EnsureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Printf("generating new host key at %s", path)
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	})
}
