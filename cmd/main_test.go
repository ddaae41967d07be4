package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLeadingFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{name: "none", args: []string{"serve"}, want: nil},
		{name: "short", args: []string{"-c", "a.yml", "serve"}, want: []string{"-c", "a.yml"}},
		{name: "after subcommand", args: []string{"serve", "--config", "a.yml", "--env", "a.env"},
			want: []string{"-c", "a.yml", "-e", "a.env"}},
		{name: "missing value", args: []string{"serve", "-e"}, want: nil},
		{name: "other flags", args: []string{"lint", "--addr", "x:1", "-"}, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, leadingFlags(tc.args))
		})
	}
}

func TestSignToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	subject := uuid.New()
	now := time.Now()
	signed, err := signToken(string(privPEM), subject, time.Hour, now)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	require.NoError(t, err)
	require.Equal(t, subject.String(), claims.Subject)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)

	_, err = signToken("not a key", subject, time.Hour, now)
	require.Error(t, err)
}

func TestReadSource(t *testing.T) {
	src, err := readSource("-", strings.NewReader("print(1)\n"))
	require.NoError(t, err)
	require.Equal(t, "print(1)\n", src)

	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))
	src, err = readSource(path, nil)
	require.NoError(t, err)
	require.Equal(t, "x = 1\n", src)

	_, err = readSource(filepath.Join(t.TempDir(), "missing.py"), nil)
	require.Error(t, err)
}
