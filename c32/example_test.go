// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c32_test

import (
	"fmt"

	"github.com/btcsuite/c32check/c32"
)

// This example demonstrates how to decode c32 encoded data.
func ExampleDecode() {
	// Decode example c32 encoded data.
	encoded := "38CNP6RVS0EXQQ4V34"
	decoded, err := c32.Decode(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Show the decoded data.
	fmt.Println("Decoded Data:", string(decoded))

	// Output:
	// Decoded Data: hello world
}

// This example demonstrates how to encode data using the c32 encoding.
func ExampleEncode() {
	// Encode example data with the c32 encoding.
	data := []byte("hello world")
	encoded := c32.Encode(data)

	// Show the encoded data.
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: 38CNP6RVS0EXQQ4V34
}

// This example demonstrates how to decode c32check encoded data.
func ExampleCheckDecode() {
	// Decode an example c32check encoded string.
	encoded := "P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM"
	version, decoded, err := c32.CheckDecode(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Show the decoded data.
	fmt.Printf("Decoded data: %x\n", decoded)
	fmt.Println("Version:", version)

	// Output:
	// Decoded data: 751e76e8199196d454941c45d1b3a323f1433bd6
	// Version: 22
}

// This example demonstrates how to encode data using the c32check encoding.
func ExampleCheckEncode() {
	data, err := c32.ParseHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	if err != nil {
		fmt.Println(err)
		return
	}

	encoded, err := c32.CheckEncode(22, data)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Show the encoded data.
	fmt.Println("Encoded Data:", encoded)

	// Output:
	// Encoded Data: P1THWXQ8368SDN2MJGE4BMDKMCHZ2GSVTS1X0BPM
}
