package util

import (
	"reflect"
	"testing"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertLen(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertNil(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, nil, got)
}

func AssertNotNil(t *testing.T, got interface{}) bool {
	t.Helper()
	if got == nil {
		t.Errorf("error, expected non nil value\n")
		return false
	}
	return true
}
