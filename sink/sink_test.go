package sink

import (
	"bytes"
	"io"
	"testing"
)

func TestStoreSink_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	s, method, fellBack, err := New(MethodStore, &buf, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if method != MethodStore || fellBack {
		t.Fatalf("method=%v fellBack=%v, want MethodStore/false", method, fellBack)
	}

	if _, err := s.Write([]byte("hello store")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if buf.String() != "hello store" {
		t.Fatalf("buf = %q, want unchanged passthrough", buf.String())
	}
}

func TestDeflateSink_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	s, method, fellBack, err := New(MethodDeflate, &buf, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if method != MethodDeflate || fellBack {
		t.Fatalf("method=%v fellBack=%v, want MethodDeflate/false", method, fellBack)
	}

	payload := bytes.Repeat([]byte("compress this please "), 200)
	if _, err := s.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	src, err := Source(MethodDeflate, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	defer src.Close()

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if !bytes.Equal(got, payload) {
		t.Fatal("deflate round-trip mismatch")
	}
}

func TestMethod_String(t *testing.T) {
	cases := map[Method]string{MethodStore: "store", MethodDeflate: "deflate"}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Fatalf("Method(%d).String() = %q, want %q", m, got, want)
		}
	}
}
