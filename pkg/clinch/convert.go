// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinch

import (
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// errConversionFailed is returned by the converters that have no custom
// wording of their own (everything but boolean, char, date, and time).
// TypeConversionError.Error() treats its empty message as a signal to
// fall back to the generic "Could not convert ... to <type> ..."
// template for these types.
var errConversionFailed = errors.New("")

// ConvertFunc turns a single unquoted token into a value of the registered
// type, or returns an error whose message becomes the inner message of a
// TypeConversionError (the outer wrapper adds "for option '<name>'" or
// "for parameter[<index>]").
type ConvertFunc func(token string) (any, error)

// ConverterRegistry maps a Type identifier to the ConvertFunc responsible
// for it. The zero value is not usable; use NewConverterRegistry.
type ConverterRegistry struct {
	byType map[Type]ConvertFunc
}

// NewConverterRegistry returns a registry pre-populated with the built-in
// converters for the standard scalar types.
func NewConverterRegistry() *ConverterRegistry {
	r := &ConverterRegistry{byType: make(map[Type]ConvertFunc)}
	r.Register(TypeString, convertString)
	r.Register(TypeBool, convertBool)
	r.Register(TypeChar, convertChar)
	r.Register(TypeInt, convertInt)
	r.Register(TypeInt64, convertInt64)
	r.Register(TypeUint, convertUint)
	r.Register(TypeUint64, convertUint64)
	r.Register(TypeBigInt, convertBigInt)
	r.Register(TypeFloat64, convertFloat64)
	r.Register(TypeBigFloat, convertBigFloat)
	r.Register(TypeURL, convertURL)
	r.Register(TypeURI, convertURL)
	r.Register(TypeFilePath, convertFilePath)
	r.Register(TypeDate, convertDate)
	r.Register(TypeTime, convertTime)
	r.Register(TypeCharset, convertCharset)
	r.Register(TypeInetAddr, convertInetAddr)
	r.Register(TypePattern, convertPattern)
	r.Register(TypeUUID, convertUUID)
	return r
}

// Register installs fn for t, overwriting any previous entry — this is
// the extension point callers use to support types outside the built-in
// table.
func (r *ConverterRegistry) Register(t Type, fn ConvertFunc) {
	r.byType[t] = fn
}

// RegisterEnum installs an exact-case (or, if caseInsensitive, case-folded)
// membership converter for t against names.
func (r *ConverterRegistry) RegisterEnum(t Type, names []string, caseInsensitive bool) {
	r.Register(t, func(token string) (any, error) {
		for _, n := range names {
			if n == token || (caseInsensitive && strings.EqualFold(n, token)) {
				return n, nil
			}
		}
		return nil, errConversionFailed
	})
}

// Convert looks up t and applies it to token. MissingTypeConverterError is
// returned on a lookup miss.
func (r *ConverterRegistry) Convert(t Type, token string) (any, error) {
	fn, ok := r.byType[t]
	if !ok {
		return nil, &MissingTypeConverterError{TypeName: t}
	}
	return fn(token)
}

// Has reports whether t has a registered converter, without converting
// anything. The parser does not call it; a missing converter surfaces as
// MissingTypeConverterError from Convert when a value is converted.
func (r *ConverterRegistry) Has(t Type) bool {
	_, ok := r.byType[t]
	return ok
}

func convertString(token string) (any, error) { return token, nil }

func convertBool(token string) (any, error) {
	b, err := strconv.ParseBool(strings.ToLower(token))
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a boolean", token)
	}
	return b, nil
}

func convertChar(token string) (any, error) {
	runes := []rune(token)
	if len(runes) != 1 {
		return nil, fmt.Errorf("'%s' is not a single character", token)
	}
	return runes[0], nil
}

// parseIntBase0 accepts decimal, 0x-prefixed hex, and leading-zero octal.
// A leading "+" isn't part of Go's base-0 grammar so it's stripped first.
func parseIntBase0(token string) string {
	if strings.HasPrefix(token, "+") {
		return token[1:]
	}
	return token
}

func convertInt(token string) (any, error) {
	n, err := strconv.ParseInt(parseIntBase0(token), 0, 64)
	if err != nil {
		return nil, errConversionFailed
	}
	if n < -1<<31 || n > 1<<31-1 {
		return nil, errConversionFailed
	}
	return int(n), nil
}

func convertInt64(token string) (any, error) {
	n, err := strconv.ParseInt(parseIntBase0(token), 0, 64)
	if err != nil {
		return nil, errConversionFailed
	}
	return n, nil
}

func convertUint(token string) (any, error) {
	n, err := strconv.ParseUint(parseIntBase0(token), 0, 64)
	if err != nil {
		return nil, errConversionFailed
	}
	if n > 1<<32-1 {
		return nil, errConversionFailed
	}
	return uint(n), nil
}

func convertUint64(token string) (any, error) {
	n, err := strconv.ParseUint(parseIntBase0(token), 0, 64)
	if err != nil {
		return nil, errConversionFailed
	}
	return n, nil
}

func convertBigInt(token string) (any, error) {
	n := new(big.Int)
	base := 10
	t := parseIntBase0(token)
	switch {
	case strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X"):
		base, t = 16, t[2:]
	case len(t) > 1 && t[0] == '0':
		base, t = 8, t[1:]
	}
	if _, ok := n.SetString(t, base); !ok {
		return nil, errConversionFailed
	}
	return n, nil
}

func convertFloat64(token string) (any, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, errConversionFailed
	}
	return f, nil
}

func convertBigFloat(token string) (any, error) {
	f, _, err := big.ParseFloat(token, 10, 200, big.ToNearestEven)
	if err != nil {
		return nil, errConversionFailed
	}
	return f, nil
}

func convertURL(token string) (any, error) {
	u, err := url.Parse(token)
	if err != nil {
		return nil, errConversionFailed
	}
	return u, nil
}

func convertFilePath(token string) (any, error) {
	return filepath.Clean(token), nil
}

func convertDate(token string) (any, error) {
	t, err := time.Parse("2006-01-02", token)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a yyyy-MM-dd date", token)
	}
	return t, nil
}

// timeLayouts is tried in priority order: HH:mm, HH:mm:ss, HH:mm:ss.SSS,
// HH:mm:ss,SSS.
var timeLayouts = []string{"15:04", "15:04:05", "15:04:05.000", "15:04:05,000"}

func convertTime(token string) (any, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("'%s' is not a HH:mm[:ss[.SSS]] time", token)
}

// convertCharset accepts any non-empty identifier and lets downstream I/O
// reject it if it's unusable, rather than validating against a fixed
// charset registry.
func convertCharset(token string) (any, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errConversionFailed
	}
	return token, nil
}

func convertInetAddr(token string) (any, error) {
	if ip := net.ParseIP(token); ip != nil {
		return ip, nil
	}
	if _, err := net.LookupHost(token); err == nil {
		return token, nil
	}
	return nil, errConversionFailed
}

func convertPattern(token string) (any, error) {
	re, err := regexp.Compile(token)
	if err != nil {
		return nil, errConversionFailed
	}
	return re, nil
}

func convertUUID(token string) (any, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, errConversionFailed
	}
	return id, nil
}
