// Package declet packs three decimal digits into ten bits.
//
// A declet is the densely packed decimal (DPD) unit used by IEEE 754-2008
// decimal floating point. The three digits are hundreds (abcd), tens (efgh)
// and units (ijkm). Digits 0 through 7 need three bits, digits 8 and 9 need
// one bit (the low bit) once their top bit is known, which leaves room to
// signal which of the digits are large.
//
// Encoding
//
// The encoding case is picked by the top bit of each digit (a, e, i). Bits
// are written pqr s t u v wxy, bit 9 first.
//
//  | a e i | p q r | s t u | v | w x y | Case            |
//  |-------|-------|-------|---|-------|-----------------|
//  | 0 0 0 | b c d | f g h | 0 | j k m | all small       |
//  | 0 0 1 | b c d | f g h | 1 | 0 0 m | units large     |
//  | 0 1 0 | b c d | j k h | 1 | 0 1 m | tens large      |
//  | 1 0 0 | j k d | f g h | 1 | 1 0 m | hundreds large  |
//  | 1 1 0 | j k d | 0 0 h | 1 | 1 1 m | units small     |
//  | 1 0 1 | f g d | 0 1 h | 1 | 1 1 m | tens small      |
//  | 0 1 1 | b c d | 1 0 h | 1 | 1 1 m | hundreds small  |
//  | 1 1 1 | 0 0 d | 1 1 h | 1 | 1 1 m | all large       |
//  |-------|-------|-------|---|-------|-----------------|
//
// Decoding
//
// Decoding looks at v, w, x and, when all three are set, at s and t. In the
// all large case p and q carry no information and are ignored, so 24 of the
// 1024 possible declets are non-canonical aliases.
//
//  | v w x | s t | hundreds | tens     | units    |
//  |-------|-----|----------|----------|----------|
//  | 0 . . | . . | 0 p q r  | 0 s t u  | 0 w x y  |
//  | 1 0 0 | . . | 0 p q r  | 0 s t u  | 1 0 0 y  |
//  | 1 0 1 | . . | 0 p q r  | 1 0 0 u  | 0 s t y  |
//  | 1 1 0 | . . | 1 0 0 r  | 0 s t u  | 0 p q y  |
//  | 1 1 1 | 0 0 | 1 0 0 r  | 1 0 0 u  | 0 p q y  |
//  | 1 1 1 | 0 1 | 1 0 0 r  | 0 p q u  | 1 0 0 y  |
//  | 1 1 1 | 1 0 | 0 p q r  | 1 0 0 u  | 1 0 0 y  |
//  | 1 1 1 | 1 1 | 1 0 0 r  | 1 0 0 u  | 1 0 0 y  |
//  |-------|-----|----------|----------|----------|
package declet
