// Package tree holds courses in a binary tree whose shape follows
// prerequisite relationships first and course numbers second.
//
// A new course is placed next to the nearest existing course it is related
// to: to the right of a prerequisite it needs, to the left of a course that
// needs it. Only when nothing in the tree is related does placement fall back
// to comparing course numbers. The result is an ordering index, not a search
// tree: lookups traverse the whole tree, and an in-order walk usually but not
// always lists prerequisites before the courses that need them. Use package
// graph when a schedule must be valid.
package tree
