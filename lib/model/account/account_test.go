package account

import (
	"testing"

	"github.com/sledger/sledger/lib/model/commodity"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		code    string
		want    Type
		wantErr bool
	}{
		{code: "A", want: ASSETS},
		{code: "L", want: LIABILITIES},
		{code: "E", want: EQUITY},
		{code: "X", wantErr: true},
		{code: "", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			got, err := ParseType(test.code)
			if test.wantErr {
				if err == nil {
					t.Fatalf("ParseType(%q): expected error, got %v", test.code, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q): unexpected error: %v", test.code, err)
			}
			if got != test.want {
				t.Fatalf("ParseType(%q) = %v, want %v", test.code, got, test.want)
			}
		})
	}
}

func TestAccepts(t *testing.T) {
	reg := commodity.NewRegistry()
	usd, _ := reg.Get("USD")
	eur, _ := reg.Get("EUR")
	chf, _ := reg.Get("CHF")

	tests := []struct {
		desc string
		spec string
		want map[*commodity.Commodity]bool
	}{
		{
			desc: "no restriction accepts any",
			spec: "",
			want: map[*commodity.Commodity]bool{usd: true, eur: true, chf: true},
		},
		{
			desc: "single commodity",
			spec: "USD",
			want: map[*commodity.Commodity]bool{usd: true, eur: false, chf: false},
		},
		{
			desc: "list with spaces",
			spec: " USD , EUR ",
			want: map[*commodity.Commodity]bool{usd: true, eur: true, chf: false},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			a, err := Create(&Record{AccountID: "Cash", Type: "A", Commodity: test.spec}, reg)
			if err != nil {
				t.Fatalf("Create(): unexpected error: %v", err)
			}
			for com, want := range test.want {
				if got := a.Accepts(com); got != want {
					t.Errorf("Accepts(%s) = %t, want %t", com, got, want)
				}
			}
		})
	}
}

func TestSingleCommodity(t *testing.T) {
	reg := commodity.NewRegistry()
	usd, _ := reg.Get("USD")

	tests := []struct {
		desc    string
		spec    string
		wantErr bool
	}{
		{desc: "single", spec: "USD"},
		{desc: "none configured", spec: "", wantErr: true},
		{desc: "ambiguous list", spec: "USD,EUR", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			a, err := Create(&Record{AccountID: "Cash", Type: "A", Commodity: test.spec}, reg)
			if err != nil {
				t.Fatalf("Create(): unexpected error: %v", err)
			}
			got, err := a.SingleCommodity()
			if test.wantErr {
				if err == nil {
					t.Fatalf("SingleCommodity(): expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SingleCommodity(): unexpected error: %v", err)
			}
			if got != usd {
				t.Fatalf("SingleCommodity() = %v, want %v", got, usd)
			}
		})
	}
}

func TestCreateInvalid(t *testing.T) {
	reg := commodity.NewRegistry()
	if _, err := Create(&Record{AccountID: "Cash", Type: "Q"}, reg); err == nil {
		t.Error("Create() with unsupported type: expected error")
	}
	if _, err := Create(&Record{AccountID: "Cash", Type: "A", Commodity: "U S D"}, reg); err == nil {
		t.Error("Create() with invalid commodity code: expected error")
	}
}

func TestRegistry(t *testing.T) {
	coms := commodity.NewRegistry()
	reg := NewRegistry()
	a, err := Create(&Record{AccountID: "Cash", Type: "A"}, coms)
	if err != nil {
		t.Fatalf("Create(): unexpected error: %v", err)
	}
	if err := reg.Add(a); err != nil {
		t.Fatalf("Add(): unexpected error: %v", err)
	}
	if err := reg.Add(a); err == nil {
		t.Error("Add() duplicate: expected error")
	}
	got, err := reg.Get("Cash")
	if err != nil {
		t.Fatalf("Get(): unexpected error: %v", err)
	}
	if got != a {
		t.Errorf("Get() = %v, want %v", got, a)
	}
	if _, err := reg.Get("Missing"); err == nil {
		t.Error("Get() unknown account: expected error")
	}
}
