package runtime

import (
	"strconv"
	"testing"
)

func TestCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 1000, 1_000_000} {
		if got := Count(n); got != n {
			t.Fatalf("Count(%d) = %d", n, got)
		}
	}
}

func TestFib(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		if got := Fib(n); !got.IsInt64() || got.Int64() != w {
			t.Fatalf("Fib(%d) = %s, want %d", n, got, w)
		}
	}
}

func TestFibPastInt64(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{92, "7540113804746346429"},
		{93, "12200160415121876738"},
		{100, "354224848179261915075"},
	}
	for _, tt := range tests {
		if got := Fib(tt.n).String(); got != tt.want {
			t.Fatalf("Fib(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
	if got := Fib(MaxFibIndex); got.Sign() <= 0 {
		t.Fatalf("Fib(%d) is not positive: %s", MaxFibIndex, got)
	}
}

func TestParseCount(t *testing.T) {
	if n, err := ParseCount("12"); err != nil || n != 12 {
		t.Fatalf("ParseCount(12) = %d, %v", n, err)
	}
	if n, err := ParseCount(strconv.Itoa(MaxCount)); err != nil || n != MaxCount {
		t.Fatalf("ParseCount(MaxCount) = %d, %v", n, err)
	}
	bad := []string{"", "x", "-1", "1.5", strconv.Itoa(MaxCount + 1), "99999999999999999", "999999999999999999999"}
	for _, s := range bad {
		_, err := ParseCount(s)
		if err == nil {
			t.Fatalf("ParseCount(%q) should fail", s)
		}
		if IsUnknown(err) {
			t.Fatalf("ParseCount(%q) should be an argument error, got %v", s, err)
		}
	}
}

func TestParseFibIndex(t *testing.T) {
	if n, err := ParseFibIndex("93"); err != nil || n != 93 {
		t.Fatalf("ParseFibIndex(93) = %d, %v", n, err)
	}
	for _, s := range []string{"-2", strconv.Itoa(MaxFibIndex + 1), "99999999999999999"} {
		if _, err := ParseFibIndex(s); err == nil || IsUnknown(err) {
			t.Fatalf("ParseFibIndex(%q) = %v, want an argument error", s, err)
		}
	}
}
