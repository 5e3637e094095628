//go:build ignore

// decode_trace decodes a captured hex trace of adapter frames.
//
// The trace format is one frame per line, hex-encoded, optionally prefixed
// with a direction marker: ">" for host-to-device (request) or "<" for
// device-to-host (response). Lines without a marker alternate starting
// with a request. Blank lines and lines starting with "#" are skipped.
//
// Usage:
//
//	go run decode_trace.go capture.txt
//
// Example trace:
//
//	> 01 00
//	< 09 00 312e322e30000000
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/muurk/busbridge/protocol"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: decode_trace <trace-file>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var (
		lineNum  int
		frameNum int
		failures int
		request  = true
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		isRequest := request
		switch {
		case strings.HasPrefix(line, ">"):
			isRequest = true
			line = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "<"):
			isRequest = false
			line = strings.TrimSpace(line[1:])
		}

		raw, err := hex.DecodeString(strings.ReplaceAll(line, " ", ""))
		if err != nil {
			fmt.Printf("line %d: bad hex: %v\n", lineNum, err)
			failures++
			continue
		}

		frameNum++
		if err := printFrame(frameNum, isRequest, raw); err != nil {
			fmt.Printf("line %d: %v\n", lineNum, err)
			failures++
		}

		// Unmarked traces alternate request/response.
		request = !isRequest
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d frames, %d failures\n", frameNum, failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func printFrame(num int, isRequest bool, raw []byte) error {
	first, payload, err := protocol.DecodeFrame(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if isRequest {
		fmt.Printf("#%-4d > %-14s payload=% x\n", num, protocol.Command(first), payload)
	} else {
		fmt.Printf("#%-4d < %-14s payload=% x  %q\n", num, protocol.Status(first), payload, printable(payload))
	}
	return nil
}

// printable renders payload bytes with non-printables as dots.
func printable(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
