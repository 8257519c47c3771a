package utils

import (
	"testing"
)

func TestGenerateOrderSn(t *testing.T) {
	sn := GenerateOrderSn(12345)
	// 14 位时间 + 8 位雪花段 + 4 位客户尾号
	if len(sn) != 26 {
		t.Fatalf("expected 26 chars, got %d (%s)", len(sn), sn)
	}
	if sn[len(sn)-4:] != "2345" {
		t.Fatalf("expected customer suffix 2345, got %s", sn[len(sn)-4:])
	}
}

func TestGenerateOrderSn_Unique(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		sn := GenerateOrderSn(uint64(i))
		if _, ok := seen[sn]; ok {
			t.Fatalf("duplicate order sn: %s", sn)
		}
		seen[sn] = struct{}{}
	}
}

func TestGenHashID(t *testing.T) {
	a := GenHashID("secret", 42)
	b := GenHashID("secret", 42)
	if a != b {
		t.Fatalf("same salt and id should encode identically: %s vs %s", a, b)
	}
	if len(a) < 12 {
		t.Fatalf("expected min length 12, got %d", len(a))
	}
	if GenHashID("other", 42) == a {
		t.Fatal("different salt should produce different code")
	}
}
