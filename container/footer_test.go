package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hpztools/hpzt/sink"
)

func TestFooter_EncodeLocateRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("payload"), 100)

	f := Footer{
		Method:         sink.MethodDeflate,
		OriginalSize:   12345,
		CompressedSize: uint64(len(payload)),
		CRC32:          0xdeadbeef,
	}

	archive := append(append([]byte("STUB"), payload...), f.EncodeHPZ2()...)

	got, payloadOff, err := Locate(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	if got.Variant != VariantHPZ2 || got.Method != sink.MethodDeflate ||
		got.OriginalSize != f.OriginalSize || got.CompressedSize != f.CompressedSize || got.CRC32 != f.CRC32 {
		t.Fatalf("Locate footer mismatch: got %+v, want %+v", got, f)
	}

	if payloadOff != int64(len("STUB")) {
		t.Fatalf("payloadOff = %d, want %d", payloadOff, len("STUB"))
	}
}

func TestLocate_PrefersHPZ2OverHPZ1(t *testing.T) {
	payload := []byte("x")

	f := Footer{Method: sink.MethodStore, OriginalSize: 1, CompressedSize: 1, CRC32: 7}
	footer := f.EncodeHPZ2()
	// Make the last 24 bytes open with the HPZ1 magic as well, so both
	// variants match and only the lookup order decides.
	copy(footer[4:8], "HPZ1")
	archive := append(append([]byte("STUB"), payload...), footer...)

	got, _, err := Locate(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	if got.Variant != VariantHPZ2 {
		t.Fatalf("Variant = %v, want VariantHPZ2", got.Variant)
	}
}

func TestLocate_AcceptsLegacyHPZ1(t *testing.T) {
	payload := bytes.Repeat([]byte("legacy"), 10)

	var footer [SizeHPZ1]byte
	copy(footer[0:4], "HPZ1")
	putU64 := func(b []byte, v uint64) {
		for i := 0; i < 8; i++ {
			b[i] = byte(v >> (8 * i))
		}
	}
	putU64(footer[4:12], 99)
	putU64(footer[12:20], uint64(len(payload)))
	footer[20], footer[21], footer[22], footer[23] = 0xef, 0xbe, 0xad, 0xde

	archive := append(append([]byte("STUB"), payload...), footer[:]...)

	got, payloadOff, err := Locate(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	if got.Variant != VariantHPZ1 || got.Method != sink.MethodDeflate {
		t.Fatalf("got variant=%v method=%v, want HPZ1/deflate", got.Variant, got.Method)
	}

	if payloadOff != int64(len("STUB")) {
		t.Fatalf("payloadOff = %d, want %d", payloadOff, len("STUB"))
	}
}

func TestLocate_FooterMissing(t *testing.T) {
	archive := []byte("no footer here at all, just plain bytes")

	if _, _, err := Locate(bytes.NewReader(archive), int64(len(archive))); !errors.Is(err, ErrFooterMissing) {
		t.Fatalf("Locate error = %v, want ErrFooterMissing", err)
	}
}

func TestLocate_BadPayloadOffset(t *testing.T) {
	f := Footer{Method: sink.MethodStore, OriginalSize: 1, CompressedSize: 1000, CRC32: 1}
	archive := f.EncodeHPZ2() // compressed_size claims more bytes than exist before the footer

	if _, _, err := Locate(bytes.NewReader(archive), int64(len(archive))); !errors.Is(err, ErrBadPayloadOffset) {
		t.Fatalf("Locate error = %v, want ErrBadPayloadOffset", err)
	}
}
