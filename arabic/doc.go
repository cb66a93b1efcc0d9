// Package arabic converts Arabic text between nominal letters and the
// contextual presentation forms used by visual (pre-shaped) storage.
//
// Shaping works in logical order. Each letter's form is looked up by the
// link values of the letter and its nearest neighbors that are not
// diacritics:
//
//  | Link | Meaning                          | Example        |
//  |------|----------------------------------|----------------|
//  | 0    | does not join                    | Hamza, spaces  |
//  | 1    | joins the previous letter only   | Alef, Dal, Waw |
//  | 3    | joins both neighbors             | Beh, Seen, Lam |
//  |------|----------------------------------|----------------|
//
// Lam followed by an Alef variant becomes a single ligature. The freed cell
// is placed according to Options.LamAlef; deshaping needs a cell back and
// looks for it in the same place.
package arabic
