package bip32

import "testing"

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		text    string
		want    DerivationPath
		wantErr bool
	}{
		{"", DerivationPath{}, false},
		{"m", DerivationPath{}, false},
		{"m/44'/60/0", DerivationPath{ChildNumber(HardenedBit + 44), 60, 0}, false},
		{"m/0/2147483647'/1/2147483646'/2", DerivationPath{
			0, ChildNumber(HardenedBit + 2147483647), 1, ChildNumber(HardenedBit + 2147483646), 2,
		}, false},
		{"44/60", nil, true}, // missing leading m
		{"m//0", nil, true},  // empty token
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDerivationPath(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.text, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDerivationPathString(t *testing.T) {
	p, err := ParseDerivationPath("m/44'/60/0")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "m/44'/60/0" {
		t.Fatalf("got %q", got)
	}
}
