// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package placekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vyletran/atlastrip/pkg/placekey"
)

/*
TestFrom verifies that spelling variants of the same destination collapse
into one cache key.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Paris", "paris"},
		{"whitespace", "  Paris ", "paris"},
		{"accents", "São Paulo", "sao-paulo"},
		{"mixed_case", "NEW york CITY", "new-york-city"},
		{"punctuation", "St. John's, Newfoundland", "st-john-s-newfoundland"},
		{"multi_space", "Rio   de   Janeiro", "rio-de-janeiro"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, placekey.From(tt.input))
		})
	}
}

func TestFrom_VariantsShareKey(t *testing.T) {
	variants := []string{"São Paulo", "sao paulo", "  SAO PAULO ", "Sao-Paulo"}
	for _, variant := range variants {
		assert.Equal(t, "sao-paulo", placekey.From(variant))
	}
}
