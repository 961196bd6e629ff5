// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c32_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/c32check/c32"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

var checkEncodingTests = []struct {
	version byte
	in      string
	out     string
}{
	{0, "", "0A0DR2R"},
	{1, "ff", "1ZZYQX6YP"},
	{22, "751e76e8199196d454941c45d1b3a323f1433bd6", "P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM"},
	{22, "0000a46ff88886c2ef9762d970b4d2c63678835b", "P00193FZ248DGQFJXHDJW5MTB33CY43BD6J269T"},
	{22, "7680adec8eabcabac676be9e83854ade0bd22cdb", "P1V81BFCHTNWNEP6ETZ9X0W59BF0QMHCVDK8VBFF"},
	{31, "00000000", "Z00003A05Q74"},
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "5df6e0e2"},
		{"hello", "9595c9df"},
	}
	for _, test := range tests {
		cksum := c32.Checksum([]byte(test.in))
		require.Equal(t, test.want, hex.EncodeToString(cksum[:]))
	}
}

func TestC32Check(t *testing.T) {
	for x, test := range checkEncodingTests {
		payload, err := hex.DecodeString(test.in)
		if err != nil {
			t.Errorf("hex.DecodeString failed failed #%d: got: %s", x, test.in)
			continue
		}

		// test encoding
		res, err := c32.CheckEncode(test.version, payload)
		if err != nil {
			t.Errorf("CheckEncode test #%d failed with err: %v", x, err)
			continue
		}
		if res != test.out {
			t.Errorf("CheckEncode test #%d failed: got %s, want: %s", x,
				res, test.out)
			continue
		}

		// test decoding
		version, decoded, err := c32.CheckDecode(test.out)
		if err != nil {
			t.Errorf("CheckDecode test #%d failed with err: %v", x, err)
		} else if version != test.version {
			t.Errorf("CheckDecode test #%d failed: got version: %d want: %d",
				x, version, test.version)
		} else if !bytes.Equal(decoded, payload) {
			t.Errorf("CheckDecode test #%d failed: got: %s want: %s", x,
				spew.Sdump(decoded), spew.Sdump(payload))
		}
	}
}

func TestC32CheckRoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01},
		bytes.Repeat([]byte{0xff}, 32),
		bytes.Repeat([]byte{0x00}, 20),
	}
	for version := 0; version <= c32.MaxCheckVersion; version++ {
		for _, payload := range payloads {
			enc, err := c32.CheckEncode(byte(version), payload)
			require.NoError(t, err)

			gotVersion, gotPayload, err := c32.CheckDecode(enc)
			require.NoError(t, err)
			require.Equal(t, byte(version), gotVersion)
			require.Equal(t, payload, gotPayload)
		}
	}
}

func TestC32CheckErrors(t *testing.T) {
	t.Parallel()

	_, err := c32.CheckEncode(32, []byte{0x01})
	require.ErrorIs(t, err, c32.ErrInvalidVersion)

	_, err = c32.CheckEncode(255, nil)
	require.ErrorIs(t, err, c32.ErrInvalidVersion)

	tests := []struct {
		in   string
		want error
	}{
		{"", c32.ErrInvalidFormat},
		{"P1", c32.ErrInvalidFormat},
		{"P11", c32.ErrInvalidFormat},
		{"U1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM", c32.ErrInvalidVersion},
		{"P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPU", c32.ErrInvalidCharacter},
		{"P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPN", c32.ErrChecksumMismatch},
		{"Q1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM", c32.ErrChecksumMismatch},
	}
	for _, test := range tests {
		_, _, err := c32.CheckDecode(test.in)
		require.ErrorIsf(t, err, test.want, "input %q", test.in)
	}
}

// TestC32CheckCaseInsensitive ensures lower case and visually ambiguous
// letters decode to the same version and payload.
func TestC32CheckCaseInsensitive(t *testing.T) {
	t.Parallel()

	want, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	for _, in := range []string{
		"p1thwxq8368sdn2mjge4bmdkmchz2gsvts1x0bpm",
		"P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTSIXOBPM",
	} {
		version, payload, err := c32.CheckDecode(in)
		require.NoError(t, err)
		require.Equal(t, byte(22), version)
		require.Equal(t, want, payload)
	}
}

// TestC32CheckCorruption ensures changing any single symbol of a checked
// string is caught by the checksum.
func TestC32CheckCorruption(t *testing.T) {
	t.Parallel()

	const valid = "P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM"
	for i := 1; i < len(valid); i++ {
		corrupt := []byte(valid)
		idx := bytes.IndexByte([]byte(c32.Alphabet), corrupt[i])
		corrupt[i] = c32.Alphabet[(idx+1)%len(c32.Alphabet)]

		_, _, err := c32.CheckDecode(string(corrupt))
		require.ErrorIsf(t, err, c32.ErrChecksumMismatch, "position %d", i)
	}
}
