package clients

import "testing"

func TestParamsEncode(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		expect string
	}{
		{
			name:   "nil map",
			params: nil,
			expect: "",
		},
		{
			name:   "empty map",
			params: Params{},
			expect: "",
		},
		{
			name:   "drops nil and empty string",
			params: Params{"page": 1, "q": "", "tag": nil},
			expect: "page=1",
		},
		{
			name:   "all dropped",
			params: Params{"a": "", "b": nil},
			expect: "",
		},
		{
			name:   "keeps zero and false",
			params: Params{"page": 0, "sparkline": false},
			expect: "page=0&sparkline=false",
		},
		{
			name:   "percent encodes values",
			params: Params{"query": "bit coin&more"},
			expect: "query=bit+coin%26more",
		},
		{
			name:   "sorted keys",
			params: Params{"vs_currency": "usd", "order": "market_cap_desc", "per_page": 50},
			expect: "order=market_cap_desc&per_page=50&vs_currency=usd",
		},
		{
			name:   "floats use shortest form",
			params: Params{"precision": 2.5},
			expect: "precision=2.5",
		},
		{
			name:   "int64 value",
			params: Params{"from": int64(1700000000)},
			expect: "from=1700000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Encode(); got != tt.expect {
				t.Errorf("Encode() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestParamsEncodeDeterministic(t *testing.T) {
	params := Params{"b": 2, "a": 1, "c": "three"}

	first := params.Encode()
	for i := 0; i < 10; i++ {
		if got := params.Encode(); got != first {
			t.Fatalf("Encode() not deterministic: %q vs %q", got, first)
		}
	}
}
