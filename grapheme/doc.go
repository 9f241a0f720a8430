// Package grapheme models user-perceived characters.
//
// A Grapheme is a string holding exactly one extended grapheme cluster. Its
// terminal column width depends on an AmbiguityPolicy: Standard counts East
// Asian ambiguous characters as one column, Wide counts them as two.
//
// Static is a fixed-size copy of a Grapheme for storage that must not
// allocate. Clusters longer than StaticCapacity bytes decode to Replacement.
package grapheme
