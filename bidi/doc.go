// Package bidi reorders mixed direction text between logical (implicit) and
// display (visual) order.
//
// Order runs four passes over a level map holding one 64 bit entry per
// character:
//
//  | Bits  | Content                                               |
//  |-------|-------------------------------------------------------|
//  | 0-31  | position: destination after pass 2, source after 3    |
//  | 32-36 | embedding level                                       |
//  | 40    | swap: mirror the character on output                  |
//  | 41    | Arabic context: the character follows Arabic letters  |
//  | 42    | mark: directional mark or embedding control           |
//  | 63    | processed: used while inverting the permutation       |
//  |-------|-------------------------------------------------------|
//
//  1. Classify each character and resolve levels with the implicit level
//     table. Neutrals and terminators whose level depends on what follows
//     are left pending until a later character resolves them.
//  2. Reverse runs of characters at each level from the highest down to 1,
//     then the whole line if the destination is right to left.
//  3. Invert the permutation in place.
//  4. Write the destination: marks become a placeholder, mirrored
//     characters at odd levels are swapped and digits are shaped.
//
// Levels
//
// Only base levels 0 and 1 are produced; embedding controls are treated as
// neutrals. Within a paragraph:
//
//  | Character                     | Base 0 | Base 1 |
//  |-------------------------------|--------|--------|
//  | L                             | 0      | 2      |
//  | R, AL                         | 1      | 1      |
//  | AN, EN after R                | 2      | 2      |
//  | EN after L                    | 0      | 2      |
//  | separators, trailing spaces   | 0      | 1      |
//  |-------------------------------|--------|--------|
//
// Classification uses a small table covering Latin, Hebrew, Arabic and the
// common punctuation blocks rather than the full Unicode character
// database.
package bidi
