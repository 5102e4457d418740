package main

import (
	"reflect"
	"testing"
)

func TestParseEdges(t *testing.T) {
	tests := []struct {
		in      string
		want    [][]int
		wantErr bool
	}{
		{"0-1,1-2", [][]int{{0, 1}, {1, 2}}, false},
		{"0-1:4, 2-3:1", [][]int{{0, 1, 4}, {2, 3, 1}}, false},
		{"", nil, false},
		{"0:1", nil, true},
		{"a-b", nil, true},
		{"0-1:x", nil, true},
	}

	for _, tt := range tests {
		got, err := parseEdges(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEdges(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseEdges(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
