// Package decfloat encodes IEEE 754-2008 decimal floating point numbers in
// the densely packed decimal interchange formats.
//
// Two formats are supported: DECFLOAT16 (decimal64, 8 bytes, 16 digits)
// and DECFLOAT34 (decimal128, 16 bytes, 34 digits). The equation for a
// finite number is:
//
//  number = (-1)^sign * coefficient * 10^exponent
//
// Encoding
//
// Bytes are big-endian. The first bit is the sign, followed by a 5 bit
// combination field, the exponent continuation and the coefficient
// continuation.
//
//  | Format     | Sign | Combination | Exponent | Coefficient       |
//  |------------|------|-------------|----------|-------------------|
//  | DECFLOAT16 | 1    | 5           | 8        | 50 (5 declets)    |
//  | DECFLOAT34 | 1    | 5           | 12       | 110 (11 declets)  |
//  |------------|------|-------------|----------|-------------------|
//
// The combination field carries the top two bits of the biased exponent
// (e) and the most significant digit of the coefficient (d):
//
//  | 0 | 1 | 2 | 3 | 4 | Meaning                                  |
//  |-------|-----------|------------------------------------------|
//  | e . e | d . d . d | Most significant digit 0 through 7.      |
//  | 1 . 1 | e . e | d | Most significant digit 8 + d.            |
//  | 1 . 1 . 1 . 1 | 0 | Infinity.                                |
//  | 1 . 1 . 1 . 1 | 1 | NaN, signaling if the next bit is set.   |
//  |-------|-----------|------------------------------------------|
//
// The exponent is biased by 398 (DECFLOAT16) or 6176 (DECFLOAT34). The
// remaining digits of the coefficient are packed three at a time into 10
// bit declets (see package declet). In DECFLOAT34 the fifth declet crosses
// the boundary between the two 64 bit halves: 6 bits end the high word and
// 4 bits start the low word.
//
// Examples
//
// 1.23 as DECFLOAT16 (coefficient 123, exponent -2, biased 396)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|-------------------|-------|
//  | 0 | 0 . 1 . 0 . 0 . 0 | 1 . 0 | 0x22: sign, combination (e=01 d=000), exponent
//  | 0 . 0 . 1 . 1 . 0 . 0 | 0 . 0 | 0x30: exponent continued, coefficient
//  |-------------------------------|
//  | ... four zero bytes ...       |
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 | 0 . 0 | 0x00
//  | 1 . 0 . 1 . 0 . 0 . 0 . 1 . 1 | 0xA3: last declet (123)
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Special Values
//
// The decoder reports NaN and Infinity bit patterns as a SpecialValueError
// rather than returning them. Use Classify to inspect a buffer first when
// special values must be told apart.
package decfloat
