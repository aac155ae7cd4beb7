// Package obj3 builds printable fasteners, bolts and nuts, on top of the
// threads made by package thread.
package obj3
