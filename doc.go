// Package hostdata converts host data between its interchange forms.
//
// The decfloat package encodes decimal floating point values in the
// DECFLOAT16 and DECFLOAT34 interchange formats. The bidi and arabic
// packages reorder bidirectional text and shape Arabic letters. Transform
// combines the two text packages so a buffer can be converted in a single
// call:
//
//	src        dst        steps
//	---------  ---------  ------------------------
//	implicit   implicit   order
//	implicit   visual     order, shape
//	visual     implicit   deshape, order
//	visual     visual     order, shape
//
// Shaping and deshaping are skipped when the flags of the side they apply
// to select bidi.ShapingNone.
package hostdata
