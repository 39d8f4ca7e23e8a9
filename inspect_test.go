package dxcode

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestTTLGoldenVector(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := New(WithClock(fixedClock(&now)))
	s, err := c.Encode([]byte("Hello"), WithTTL(3600), WithCompression(false))
	if err != nil {
		t.Fatal(err)
	}
	if want := "dx15kRQE7q00003Z18QFqcSp=="; s != want {
		t.Fatalf("got %q want %q", s, want)
	}
}

func TestHasTTLAndIsCompressed(t *testing.T) {
	long := bytes.Repeat([]byte("abc"), 50)
	cases := []struct {
		name       string
		data       []byte
		opts       []EncodeOption
		ttl        bool
		compressed bool
	}{
		{"plain", []byte("Hello"), nil, false, false},
		{"ttl", []byte("Hello"), []EncodeOption{WithTTL(10)}, true, false},
		{"compressed", long, nil, false, true},
		{"compressed ttl", long, []EncodeOption{WithTTL(10)}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Encode(tc.data, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			ttl, err := HasTTL(s)
			if err != nil || ttl != tc.ttl {
				t.Fatalf("HasTTL = %v, %v", ttl, err)
			}
			compressed, err := IsCompressed(s)
			if err != nil || compressed != tc.compressed {
				t.Fatalf("IsCompressed = %v, %v", compressed, err)
			}
		})
	}
}

func TestQueriesRejectMalformedText(t *testing.T) {
	bad := []struct {
		s    string
		want error
	}{
		{"", ErrInvalidInput},
		{"xx07ww", ErrInvalidPrefix},
		{"dx07w", ErrInvalidLength},
		// The fault sits past the bytes the query needs.
		{"dx05kRJdEcS!t=", ErrInvalidCharacter},
		{wrapEnvelope([]byte{0x40, 0, 0}), ErrInvalidFlags},
	}
	for _, tc := range bad {
		if _, err := HasTTL(tc.s); !errors.Is(err, tc.want) {
			t.Errorf("HasTTL(%q): expected %v, got %v", tc.s, tc.want, err)
		}
		if _, err := IsCompressed(tc.s); !errors.Is(err, tc.want) {
			t.Errorf("IsCompressed(%q): expected %v, got %v", tc.s, tc.want, err)
		}
		if _, err := TTL(tc.s); !errors.Is(err, tc.want) {
			t.Errorf("TTL(%q): expected %v, got %v", tc.s, tc.want, err)
		}
		if _, err := DecodedLen(tc.s); !errors.Is(err, tc.want) {
			t.Errorf("DecodedLen(%q): expected %v, got %v", tc.s, tc.want, err)
		}
	}
}

func TestTTLInfo(t *testing.T) {
	created := time.Unix(1_700_000_000, 0)
	now := created
	c := New(WithClock(fixedClock(&now)))

	plain, err := c.Encode([]byte("no ttl"))
	if err != nil {
		t.Fatal(err)
	}
	info, err := c.TTL(plain)
	if err != nil || info != nil {
		t.Fatalf("TTL without block = %+v, %v", info, err)
	}

	s, err := c.Encode([]byte("with ttl"), WithTTL(3600))
	if err != nil {
		t.Fatal(err)
	}
	info, err = c.TTL(s)
	if err != nil {
		t.Fatal(err)
	}
	if !info.CreatedAt.Equal(created) || info.TTL != time.Hour || !info.ExpiresAt.Equal(created.Add(time.Hour)) || info.Expired {
		t.Fatalf("unexpected info %+v", info)
	}

	now = created.Add(2 * time.Hour)
	expired, err := c.IsExpired(s)
	if err != nil || !expired {
		t.Fatalf("IsExpired = %v, %v", expired, err)
	}
	expired, err = c.IsExpired(plain)
	if err != nil || expired {
		t.Fatalf("IsExpired without TTL = %v, %v", expired, err)
	}

	zero, err := c.Encode([]byte("forever"), WithTTL(0))
	if err != nil {
		t.Fatal(err)
	}
	info, err = c.TTL(zero)
	if err != nil {
		t.Fatal(err)
	}
	if info.TTL != 0 || !info.ExpiresAt.IsZero() || info.Expired {
		t.Fatalf("zero TTL info %+v", info)
	}
}

func TestInspect(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := New(WithClock(fixedClock(&now)))
	data := bytes.Repeat([]byte("inspect "), 30)
	s, err := c.Encode(data, WithTTL(120))
	if err != nil {
		t.Fatal(err)
	}
	e, err := c.Inspect(s)
	if err != nil {
		t.Fatal(err)
	}
	if e.Flags != FlagCompressed|FlagAlgoDeflate|FlagHasTTL {
		t.Fatalf("flags = %s", e.Flags)
	}
	if e.Checksum != Checksum(data) || e.CreatedAt != 1_700_000_000 || e.TTLSeconds != 120 {
		t.Fatalf("unexpected envelope %+v", e)
	}
	if e.OriginalSize != len(data) || e.StoredSize >= len(data) {
		t.Fatalf("sizes: original %d stored %d", e.OriginalSize, e.StoredSize)
	}
	if !bytes.Equal(e.Payload, data) {
		t.Fatal("payload mismatch")
	}

	// Expired data is still inspectable.
	now = now.Add(time.Hour)
	if _, err := c.Inspect(s); err != nil {
		t.Fatal(err)
	}
}

func TestInspectChecksumMismatch(t *testing.T) {
	s := wrapEnvelope(rawEnvelope(0, 0x1234, []byte("Hi")))

	e, err := Inspect(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(e.Payload) != "Hi" || e.StoredSize != 2 || e.OriginalSize != 0 {
		t.Fatalf("unexpected envelope %+v", e)
	}

	info, err := GetChecksumInfo(s)
	if err != nil {
		t.Fatal(err)
	}
	if info.Stored != 0x1234 || info.Computed != Checksum([]byte("Hi")) || info.Match {
		t.Fatalf("unexpected checksum info %+v", info)
	}

	ok, err := Verify(s)
	if err != nil || ok {
		t.Fatalf("Verify = %v, %v", ok, err)
	}
}

func TestVerify(t *testing.T) {
	created := time.Unix(1_700_000_000, 0)
	now := created
	c := New(WithClock(fixedClock(&now)))
	s, err := c.Encode([]byte("verify me"), WithTTL(1))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := c.Verify(s)
	if err != nil || !ok {
		t.Fatalf("Verify = %v, %v", ok, err)
	}

	now = created.Add(time.Minute)
	ok, err = c.Verify(s)
	if err != nil || !ok {
		t.Fatalf("Verify ignores TTL: %v, %v", ok, err)
	}

	info, err := c.GetChecksumInfo(s)
	if err != nil || !info.Match {
		t.Fatalf("GetChecksumInfo = %+v, %v", info, err)
	}

	for _, bad := range []string{"", "dx07w", "dx05k!JdEcSdt=", wrapEnvelope([]byte{0x08, 0, 0})} {
		if ok, err := c.Verify(bad); err == nil || ok {
			t.Fatalf("Verify(%q) = %v, %v", bad, ok, err)
		}
	}
}

func TestDecodedLen(t *testing.T) {
	long := bytes.Repeat([]byte("length "), 40)
	cases := []struct {
		name string
		data []byte
		opts []EncodeOption
	}{
		{"empty", nil, nil},
		{"raw", []byte("Hello"), nil},
		{"raw ttl", []byte("Hello"), []EncodeOption{WithTTL(5)}},
		{"compressed", long, nil},
		{"compressed ttl", long, []EncodeOption{WithTTL(5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Encode(tc.data, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			n, err := DecodedLen(s)
			if err != nil {
				t.Fatal(err)
			}
			if n != len(tc.data) {
				t.Fatalf("DecodedLen = %d, want %d", n, len(tc.data))
			}
		})
	}

	if _, err := DecodedLen(wrapEnvelope([]byte{byte(FlagCompressed | FlagAlgoDeflate), 0, 0, 1})); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}
