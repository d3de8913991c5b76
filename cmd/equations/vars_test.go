package main

import (
	"maps"
	"testing"
)

func TestParseCSVVars(t *testing.T) {
	m, err := parseCSVVars([]byte("x,1\ny, 2.5\nrate,0.07\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"x": "1", "y": "2.5", "rate": "0.07"}
	if !maps.Equal(m, want) {
		t.Errorf("got %v, want %v", m, want)
	}
}

func TestParseCSVVarsMalformed(t *testing.T) {
	if _, err := parseCSVVars([]byte("lonely\n")); err == nil {
		t.Error("no error for a record without a value")
	}
}

func TestParseYAMLVars(t *testing.T) {
	m, err := parseYAMLVars([]byte("x: 1\nrate: 0.07\nname: width*2\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"x": "1", "rate": "0.07", "name": "width*2"}
	if !maps.Equal(m, want) {
		t.Errorf("got %v, want %v", m, want)
	}
}
