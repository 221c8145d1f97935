package util

import "testing"

func TestRandString(t *testing.T) {
	s := RandString(16)
	AssertLen(t, 16, len(s))
	for i := 0; i < len(s); i++ {
		AssertTrue(t, (s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z'))
	}
}

func TestRandStrings(t *testing.T) {
	keys := RandStrings(1000, 8)
	AssertLen(t, 1000, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		AssertExpected(t, false, seen[k])
		seen[k] = true
	}
}
