package hasher

import "testing"

func TestSum_Deterministic(t *testing.T) {
	in := "same input"
	h1 := SumBytes([]byte(in))
	h2 := SumBytes([]byte(in))
	if h1 != h2 {
		t.Fatalf("hash must be deterministic, got %s vs %s", h1, h2)
	}
}

func TestSum_DifferentInputs(t *testing.T) {
	if SumBytes([]byte("a")) == SumBytes([]byte("b")) {
		t.Fatalf("different inputs should not produce the same hash")
	}
}

func TestSum_KnownVector(t *testing.T) {
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := SumBytes([]byte("hello")); got != want {
		t.Fatalf("unexpected bytes hash: got %s want %s", got, want)
	}
}

func TestETag(t *testing.T) {
	etag := ETag([]byte("hello"))
	want := `"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"`
	if etag != want {
		t.Fatalf("unexpected etag: got %s want %s", etag, want)
	}

	cases := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{"W/" + etag, true},
		{`"other"`, false},
		{`"other", ` + etag, true},
	}
	for _, c := range cases {
		if got := MatchETag(c.header, etag); got != c.want {
			t.Fatalf("MatchETag(%q) = %v, want %v", c.header, got, c.want)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	in := "some reasonably sized input"

	for b.Loop() {
		_ = SumBytes([]byte(in))
	}
}
