// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import (
	"math/big"
	"net/url"
	"testing"
)

func TestConvertIntAcceptsDecimalHexAndOctal(t *testing.T) {
	reg := NewConverterRegistry()
	cases := map[string]int{
		"42":   42,
		"0x2A": 42,
		"052":  42, // octal
		"-7":   -7,
		"+7":   7,
	}
	for token, want := range cases {
		got, err := reg.Convert(TypeInt, token)
		if err != nil {
			t.Errorf("Convert(int, %q) error = %v", token, err)
			continue
		}
		if got != want {
			t.Errorf("Convert(int, %q) = %v, want %v", token, got, want)
		}
	}
}

func TestConvertIntOverflowErrors(t *testing.T) {
	reg := NewConverterRegistry()
	_, err := reg.Convert(TypeInt, "99999999999")
	if err == nil {
		t.Errorf("Convert(int, huge) expected overflow error, got nil")
	}
}

func TestConvertInt64(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeInt64, "9223372036854775807")
	if err != nil {
		t.Fatalf("Convert(int64) error = %v", err)
	}
	if got != int64(9223372036854775807) {
		t.Errorf("Convert(int64) = %v, want max int64", got)
	}
}

func TestConvertUintRejectsNegative(t *testing.T) {
	reg := NewConverterRegistry()
	if _, err := reg.Convert(TypeUint, "-1"); err == nil {
		t.Errorf("Convert(uint, -1) expected error, got nil")
	}
}

func TestConvertBigInt(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeBigInt, "123456789012345678901234567890")
	if err != nil {
		t.Fatalf("Convert(bigint) error = %v", err)
	}
	if got.(*big.Int).String()[0:3] != "123" {
		t.Errorf("Convert(bigint) = %v", got)
	}
}

func TestConvertBigIntHexAndOctal(t *testing.T) {
	reg := NewConverterRegistry()
	hex, err := reg.Convert(TypeBigInt, "0xFF")
	if err != nil || hex.(*big.Int).String() != "255" {
		t.Errorf("Convert(bigint, 0xFF) = %v, err = %v, want 255", hex, err)
	}
	oct, err := reg.Convert(TypeBigInt, "0377")
	if err != nil || oct.(*big.Int).String() != "255" {
		t.Errorf("Convert(bigint, 0377) = %v, err = %v, want 255", oct, err)
	}
}

func TestConvertFloat64(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeFloat64, "3.14")
	if err != nil {
		t.Fatalf("Convert(float64) error = %v", err)
	}
	if got != 3.14 {
		t.Errorf("Convert(float64) = %v, want 3.14", got)
	}
}

func TestConvertFloat64RejectsGarbage(t *testing.T) {
	reg := NewConverterRegistry()
	if _, err := reg.Convert(TypeFloat64, "not-a-number"); err == nil {
		t.Errorf("expected error, got nil")
	}
}

func TestConvertBool(t *testing.T) {
	reg := NewConverterRegistry()
	for _, tok := range []string{"true", "True", "TRUE", "false", "False"} {
		if _, err := reg.Convert(TypeBool, tok); err != nil {
			t.Errorf("Convert(bool, %q) error = %v", tok, err)
		}
	}
	if _, err := reg.Convert(TypeBool, "yes"); err == nil {
		t.Errorf("Convert(bool, 'yes') expected error, got nil")
	}
}

func TestConvertChar(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeChar, "x")
	if err != nil {
		t.Fatalf("Convert(char) error = %v", err)
	}
	if got != rune('x') {
		t.Errorf("Convert(char) = %v, want 'x'", got)
	}
	if _, err := reg.Convert(TypeChar, "xy"); err == nil {
		t.Errorf("Convert(char, 'xy') expected error, got nil")
	}
}

func TestConvertString(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeString, "hello world")
	if err != nil || got != "hello world" {
		t.Errorf("Convert(string) = %v, err = %v", got, err)
	}
}

func TestConvertURLAndURI(t *testing.T) {
	reg := NewConverterRegistry()
	for _, typ := range []Type{TypeURL, TypeURI} {
		got, err := reg.Convert(typ, "https://example.com/path")
		if err != nil {
			t.Fatalf("Convert(%v) error = %v", typ, err)
		}
		u, ok := got.(*url.URL)
		if !ok || u.Host != "example.com" {
			t.Errorf("Convert(%v) = %v, want host example.com", typ, got)
		}
	}
}

func TestConvertFilePathCleansPath(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypeFilePath, "a/b/../c")
	if err != nil {
		t.Fatalf("Convert(filepath) error = %v", err)
	}
	if got != "a/c" {
		t.Errorf("Convert(filepath) = %v, want a/c", got)
	}
}

func TestConvertDate(t *testing.T) {
	reg := NewConverterRegistry()
	if _, err := reg.Convert(TypeDate, "2024-03-15"); err != nil {
		t.Errorf("Convert(date) error = %v", err)
	}
	if _, err := reg.Convert(TypeDate, "03/15/2024"); err == nil {
		t.Errorf("Convert(date, wrong format) expected error, got nil")
	}
}

func TestConvertTimePrecedence(t *testing.T) {
	reg := NewConverterRegistry()
	cases := []string{"13:45", "13:45:30", "13:45:30.123", "13:45:30,123"}
	for _, tok := range cases {
		if _, err := reg.Convert(TypeTime, tok); err != nil {
			t.Errorf("Convert(time, %q) error = %v", tok, err)
		}
	}
}

func TestConvertTimeErrorMessage(t *testing.T) {
	reg := NewConverterRegistry()
	_, err := reg.Convert(TypeTime, "not-a-time")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	want := "'not-a-time' is not a HH:mm[:ss[.SSS]] time"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestConvertCharsetAcceptsNonEmptyIdentifier(t *testing.T) {
	reg := NewConverterRegistry()
	if _, err := reg.Convert(TypeCharset, "UTF-8"); err != nil {
		t.Errorf("Convert(charset) error = %v", err)
	}
	if _, err := reg.Convert(TypeCharset, "   "); err == nil {
		t.Errorf("Convert(charset, blank) expected error, got nil")
	}
}

func TestConvertInetAddrAcceptsLiteralIP(t *testing.T) {
	reg := NewConverterRegistry()
	for _, tok := range []string{"127.0.0.1", "::1"} {
		if _, err := reg.Convert(TypeInetAddr, tok); err != nil {
			t.Errorf("Convert(inetaddr, %q) error = %v", tok, err)
		}
	}
}

func TestConvertPatternCompilesRegexp(t *testing.T) {
	reg := NewConverterRegistry()
	got, err := reg.Convert(TypePattern, `^a+b*$`)
	if err != nil {
		t.Fatalf("Convert(pattern) error = %v", err)
	}
	re := got.(interface{ MatchString(string) bool })
	if !re.MatchString("aaab") {
		t.Errorf("compiled pattern did not match 'aaab'")
	}
	if _, err := reg.Convert(TypePattern, `(unclosed`); err == nil {
		t.Errorf("Convert(pattern, invalid) expected error, got nil")
	}
}

func TestConvertUUID(t *testing.T) {
	reg := NewConverterRegistry()
	if _, err := reg.Convert(TypeUUID, "550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("Convert(uuid) error = %v", err)
	}
	if _, err := reg.Convert(TypeUUID, "not-a-uuid"); err == nil {
		t.Errorf("Convert(uuid, bad) expected error, got nil")
	}
}

func TestRegisterEnumExactCase(t *testing.T) {
	reg := NewConverterRegistry()
	reg.RegisterEnum(Type("level"), []string{"LOW", "MEDIUM", "HIGH"}, false)

	if _, err := reg.Convert(Type("level"), "LOW"); err != nil {
		t.Errorf("Convert(level, LOW) error = %v", err)
	}
	if _, err := reg.Convert(Type("level"), "low"); err == nil {
		t.Errorf("Convert(level, low) expected error (exact case), got nil")
	}
}

func TestRegisterEnumCaseInsensitive(t *testing.T) {
	reg := NewConverterRegistry()
	reg.RegisterEnum(Type("level"), []string{"LOW", "MEDIUM", "HIGH"}, true)

	got, err := reg.Convert(Type("level"), "low")
	if err != nil {
		t.Fatalf("Convert(level, low) error = %v", err)
	}
	if got != "LOW" {
		t.Errorf("Convert(level, low) = %v, want canonical 'LOW'", got)
	}
}

func TestMissingTypeConverterOnLookupMiss(t *testing.T) {
	reg := NewConverterRegistry()
	_, err := reg.Convert(Type("nonexistent"), "x")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := err.(*MissingTypeConverterError); !ok {
		t.Errorf("error = %T, want *MissingTypeConverterError", err)
	}
}

func TestHasReportsRegisteredTypes(t *testing.T) {
	reg := NewConverterRegistry()
	if !reg.Has(TypeInt) {
		t.Errorf("Has(int) = false, want true")
	}
	if reg.Has(Type("nonexistent")) {
		t.Errorf("Has(nonexistent) = true, want false")
	}
}

func TestRegisterOverwritesExistingEntry(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(TypeInt, func(token string) (any, error) { return 999, nil })
	got, err := reg.Convert(TypeInt, "1")
	if err != nil || got != 999 {
		t.Errorf("Convert(int) = %v, err = %v, want overridden 999", got, err)
	}
}
