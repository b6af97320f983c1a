// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzw

package lzw

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrEmptyInput     = errors.New("input is empty")
	ErrNegativeOutLen = errors.New("output length must be non-negative")
	ErrBitCount       = errors.New("bit count does not fit the input buffer")
	ErrUnexpectedEOS  = errors.New("unexpected end of bit stream")
	ErrCorrupt        = errors.New("corrupt code stream")
	ErrDictOverflow   = errors.New("dictionary overflowed")
	ErrDstFull        = errors.New("destination buffer is full")
	ErrBitString      = errors.New("bit string must contain only '0' and '1'")
)
