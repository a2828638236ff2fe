// Package snapshot reads and writes state vectors in the .lsv binary format.
//
// Layout, all little-endian:
//
//	offset 0x00  magic "LSVF" (4 bytes)
//	offset 0x04  format version (uint32)
//	offset 0x08  number of qubits (uint32)
//	offset 0x0c  reserved flags (uint32)
//	offset 0x10  SHA-256 checksum of the amplitude section (32 bytes)
//	offset 0x30  amplitudes: 2^n pairs of float64 (re, im)
package snapshot

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lumen-sim/lumen/internal/statevector"
)

// Format constants.
const (
	MagicBytes    = "LSVF"
	FormatVersion = 1
	headerSize    = 0x30
	checksumSize  = 32
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrTruncated          = errors.New("file truncated")
)

// Write saves sv to path in .lsv format.
func Write(path string, sv *statevector.StateVector) error {
	data := sv.Data()
	buf := make([]byte, headerSize+16*len(data))

	copy(buf[0x00:], MagicBytes)
	binary.LittleEndian.PutUint32(buf[0x04:], FormatVersion)
	binary.LittleEndian.PutUint32(buf[0x08:], uint32(sv.NumQubits()))
	binary.LittleEndian.PutUint32(buf[0x0c:], 0)

	amps := buf[headerSize:]
	for i, amp := range data {
		binary.LittleEndian.PutUint64(amps[16*i:], math.Float64bits(real(amp)))
		binary.LittleEndian.PutUint64(amps[16*i+8:], math.Float64bits(imag(amp)))
	}

	sum := sha256.Sum256(amps)
	copy(buf[0x10:0x10+checksumSize], sum[:])

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read loads a state vector from an .lsv file, verifying the checksum.
func Read(path string) (*statevector.StateVector, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%s: %w", path, ErrTruncated)
	}
	if string(buf[0x00:0x04]) != MagicBytes {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidMagic)
	}
	if v := binary.LittleEndian.Uint32(buf[0x04:]); v != FormatVersion {
		return nil, fmt.Errorf("%s: %w: got %d", path, ErrUnsupportedVersion, v)
	}

	numQubits := int(binary.LittleEndian.Uint32(buf[0x08:]))
	amps := buf[headerSize:]
	if len(amps) != 16<<numQubits {
		return nil, fmt.Errorf("%s: %w: %d amplitude bytes for %d qubits",
			path, ErrTruncated, len(amps), numQubits)
	}

	var stored [checksumSize]byte
	copy(stored[:], buf[0x10:0x10+checksumSize])
	if sha256.Sum256(amps) != stored {
		return nil, fmt.Errorf("%s: %w", path, ErrChecksumMismatch)
	}

	data := make([]complex128, 1<<numQubits)
	for i := range data {
		re := math.Float64frombits(binary.LittleEndian.Uint64(amps[16*i:]))
		im := math.Float64frombits(binary.LittleEndian.Uint64(amps[16*i+8:]))
		data[i] = complex(re, im)
	}
	return statevector.FromData(data)
}
